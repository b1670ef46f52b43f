package prompt

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var toneDescriptions = map[string]string{
	"profesional": "Formal, técnico y autorizado - usando terminología especializada y estructura clara",
	"casual":      "Conversacional, accesible y amigable - evitando jerga excesiva y siendo directo",
	"creativo":    "Innovador, inspirador y original - pensando fuera de la caja con enfoques únicos",
	"académico":   "Riguroso, metodológico y bien fundamentado - con referencias y análisis profundo",
	"técnico":     "Preciso, específico y detallado - con terminología exacta y especificaciones claras",
	"amigable":    "Cálido, comprensivo y accesible - priorizando la claridad y el entendimiento",
	"formal":      "Estructurado, respetuoso y elegante - manteniendo protocolo y seriedad apropiada",
	"persuasivo":  "Convincente, estratégico y orientado a resultados - enfocado en motivar acción",
	"educativo":   "Didáctico, progresivo y comprensible - diseñado para facilitar el aprendizaje",
	"inspirador":  "Motivacional, visionario y energizante - despertando entusiasmo y creatividad",
	"analítico":   "Lógico, sistemático y basado en datos - privilegiando evidencia y razonamiento",
}

var formatInstructions = map[string]string{
	"párrafo":           "Estructura la respuesta en párrafos fluidos y coherentes, con transiciones naturales entre ideas",
	"lista con viñetas": "Organiza la información en puntos claros y concisos usando viñetas (•)",
	"lista numerada":    "Presenta el contenido en pasos ordenados y secuenciales usando números (1., 2., 3.)",
	"diálogo":           "Estructura como conversación o intercambio de preguntas y respuestas",
	"código":            "Incluye bloques de código bien comentados y ejemplos prácticos de implementación",
	"tabla":             "Organiza la información en formato tabular con columnas y filas claramente definidas",
	"esquema":           "Presenta una estructura jerárquica con títulos, subtítulos y elementos anidados",
	"informe":           "Estructura como documento formal con resumen ejecutivo, desarrollo y conclusiones",
	"guión":             "Organiza como secuencia de acciones o instrucciones paso a paso",
	"email":             "Formato de correo electrónico con asunto, saludo, cuerpo y cierre apropiados",
}

var detailDescriptions = map[int]string{
	1: "Breve y conciso (respuesta directa al punto)",
	2: "Moderado (explicación clara con puntos principales)",
	3: "Detallado (análisis profundo con ejemplos y contexto)",
	4: "Extenso (cobertura exhaustiva con múltiples perspectivas y casos de uso)",
}

// ToneDescription returns the prose description of a tone, defaulting to "profesional".
func ToneDescription(tone string) string {
	if d, ok := toneDescriptions[tone]; ok {
		return d
	}
	return toneDescriptions[DefaultTone]
}

// FormatInstruction returns the layout instruction for a format, defaulting to "párrafo".
func FormatInstruction(format string) string {
	if i, ok := formatInstructions[format]; ok {
		return i
	}
	return formatInstructions[DefaultFormat]
}

// DetailDescription returns the description of a detail level, defaulting to level 2.
func DetailDescription(level int) string {
	if d, ok := detailDescriptions[level]; ok {
		return d
	}
	return detailDescriptions[DefaultDetailLevel]
}

// A cases.Caser is stateful, so each call builds its own.
func upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Spanish).String(s)
}
