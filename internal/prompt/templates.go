package prompt

import (
	"bytes"
	"strings"
	"text/template"
)

// templateData holds the values a category template interpolates.
type templateData struct {
	Objective       string
	Tone            string
	ToneDescription string
	TonePhrase      string
	Format          string
	FormatPhrase    string
	Detail          string
	Language        string
	Extras          string
	Closing         string

	// Persona fields for the shared template.
	Persona       string
	Section       string
	Method        string
	Bullets       []string
	ExtrasHeading string
}

var programmingTemplate = template.Must(template.New("programming").Parse(`Actúa como un experto desarrollador de software con amplia experiencia en múltiples lenguajes y frameworks.

TAREA DE DESARROLLO:
{{.Objective}}

REQUISITOS TÉCNICOS:
- Proporciona código limpio, bien documentado y siguiendo las mejores prácticas
- Incluye explicaciones paso a paso cuando sea necesario
- Considera aspectos de rendimiento, seguridad y mantenibilidad
- Estructura la respuesta de manera {{.FormatPhrase}}

ESPECIFICACIONES DE ENTREGA:
- Tono de comunicación: {{.ToneDescription}}
- Nivel de complejidad: {{.Detail}}
- Idioma de respuesta: {{.Language}}

{{if .Extras}}CONSIDERACIONES ESPECIALES:
{{.Extras}}
{{end}}
RESULTADO ESPERADO:
Genera una solución completa que demuestre expertise técnico y sea {{.Closing}}.`))

var designTemplate = template.Must(template.New("design").Parse(`Actúa como un diseñador creativo y estratega visual con experiencia en UX/UI, branding y comunicación visual.

BRIEF CREATIVO:
{{.Objective}}

METODOLOGÍA DE DISEÑO:
- Aplicar principios fundamentales de diseño y psicología visual
- Considerar la experiencia del usuario y journey mapping
- Proporcionar soluciones {{.TonePhrase}}
- Justificar decisiones creativas con base conceptual sólida

ESPECIFICACIONES DE ENTREGA:
- Enfoque comunicacional: {{.ToneDescription}}
- Nivel de desarrollo: {{.Detail}}
- Formato de presentación: {{.FormatPhrase}}
- Idioma de respuesta: {{.Language}}

{{if .Extras}}CONSIDERACIONES ESPECIALES DEL PROYECTO:
{{.Extras}}
{{end}}
RESULTADO ESPERADO:
Desarrolla una propuesta creativa integral que combine estética, funcionalidad y estrategia, siendo {{.Closing}}.`))

var genericTemplate = template.Must(template.New("generic").Parse(`Actúa como un experto profesional en el área relevante al siguiente objetivo.

OBJETIVO Y CONTEXTO:
{{.Objective}}

METODOLOGÍA PROFESIONAL:
- Proporciona información precisa, actualizada y bien fundamentada
- Aplica las mejores prácticas y estándares del campo relevante
- Incluye perspectivas prácticas y recomendaciones aplicables
- Estructura la respuesta de manera {{.FormatPhrase}}

ESPECIFICACIONES DE ENTREGA:
- Estilo comunicacional: {{.ToneDescription}}
- Profundidad del análisis: {{.Detail}}
- Formato de presentación: {{.Format}}
- Idioma de respuesta: {{.Language}}

{{if .Extras}}CONSIDERACIONES ESPECÍFICAS:
{{.Extras}}
{{end}}
RESULTADO ESPERADO:
Desarrolla una respuesta {{.Closing}} que aborde comprehensivamente el objetivo planteado.`))

// personaTemplate is shared by writing, research, marketing and education.
var personaTemplate = template.Must(template.New("persona").Parse(`Actúa como {{.Persona}}.

{{.Section}}:
{{.Objective}}

{{.Method}}:
{{- range .Bullets}}
- {{.}}
{{- end}}

ESPECIFICACIONES:
- Tono: {{.Tone}}
- Formato de respuesta: {{.Format}}
- Nivel de detalle: {{.Detail}}
- Idioma: {{.Language}}

{{if .Extras}}{{.ExtrasHeading}}:
{{.Extras}}
{{end}}
{{.Closing}}`))

func renderCategory(cfg Configuration, category Category) string {
	data := templateData{
		Objective:       strings.TrimSpace(cfg.Objective),
		Tone:            cfg.Tone,
		ToneDescription: ToneDescription(cfg.Tone),
		Format:          cfg.Format,
		Detail:          DetailDescription(cfg.DetailLevel),
		Language:        cfg.Language,
	}
	if strings.TrimSpace(cfg.AdditionalInstructions) != "" {
		data.Extras = cfg.AdditionalInstructions
	}

	var tmpl *template.Template
	switch category {
	case Programming:
		tmpl = programmingTemplate
		data.Objective = Enhance(cfg.Objective, category, cfg.DetailLevel)
		data.FormatPhrase = pick(cfg.Format, "organizada en puntos", "narrativa y fluida", "estructurada y detallada")
		switch cfg.Tone {
		case "creativo":
			data.Closing = "innovadora y original"
		case "casual":
			data.Closing = "accesible y práctica"
		default:
			data.Closing = "profesional y robusta"
		}
	case Design:
		tmpl = designTemplate
		data.Objective = Enhance(cfg.Objective, category, cfg.DetailLevel)
		data.FormatPhrase = pick(cfg.Format, "Puntos estructurados y organizados", "Narrativa fluida y descriptiva", "Estructura detallada con secciones")
		switch cfg.Tone {
		case "creativo":
			data.TonePhrase = "innovadoras y experimentales"
		case "profesional":
			data.TonePhrase = "elegantes y funcionales"
		default:
			data.TonePhrase = "intuitivas y accesibles"
		}
		if cfg.DetailLevel >= 3 {
			data.Closing = "exhaustiva en análisis y alternativas"
		} else {
			data.Closing = "clara y directa en su enfoque"
		}
	case Writing:
		tmpl = personaTemplate
		data.Persona = "un redactor profesional y estratega de contenidos con experiencia en comunicación efectiva"
		data.Section = "OBJETIVO DE COMUNICACIÓN"
		data.Method = "ESTRATEGIA EDITORIAL"
		data.Bullets = []string{
			"Crea contenido persuasivo, claro y engaging",
			"Considera la audiencia objetivo y el contexto de uso",
			"Aplica técnicas de copywriting y storytelling cuando sea apropiado",
		}
		data.ExtrasHeading = "DIRECTRICES ADICIONALES"
		data.Closing = "Produce un contenido que conecte efectivamente con la audiencia y logre el objetivo planteado."
	case Research:
		tmpl = personaTemplate
		data.Persona = "un investigador académico y analista con metodología rigurosa y pensamiento crítico"
		data.Section = "PREGUNTA DE INVESTIGACIÓN"
		data.Method = "METODOLOGÍA"
		data.Bullets = []string{
			"Proporciona análisis basado en evidencia y fuentes confiables",
			"Presenta múltiples perspectivas cuando sea relevante",
			"Estructura la información de manera lógica y sistemática",
		}
		data.ExtrasHeading = "PARÁMETROS ADICIONALES"
		data.Closing = "Desarrolla una respuesta fundamentada que aporte valor académico y práctico al tema planteado."
	case Marketing:
		tmpl = personaTemplate
		data.Persona = "un estratega de marketing digital y especialista en growth con experiencia en conversión"
		data.Section = "DESAFÍO COMERCIAL"
		data.Method = "ENFOQUE ESTRATÉGICO"
		data.Bullets = []string{
			"Considera el customer journey y puntos de conversión",
			"Aplica principios de psicología del consumidor",
			"Proporciona estrategias medibles y escalables",
		}
		data.ExtrasHeading = "CONSIDERACIONES DEL MERCADO"
		data.Closing = "Elabora una estrategia comercial que sea práctica, innovadora y orientada a resultados."
	case Education:
		tmpl = personaTemplate
		data.Persona = "un educador experto y diseñador instruccional con enfoque en aprendizaje efectivo"
		data.Section = "OBJETIVO EDUCATIVO"
		data.Method = "METODOLOGÍA PEDAGÓGICA"
		data.Bullets = []string{
			"Estructura el contenido de manera progresiva y comprensible",
			"Incluye ejemplos prácticos y aplicaciones reales",
			"Considera diferentes estilos de aprendizaje",
		}
		data.ExtrasHeading = "CONTEXTO EDUCATIVO"
		data.Closing = "Crea contenido educativo que facilite el aprendizaje y la retención del conocimiento."
	case Generic:
		tmpl = genericTemplate
		data.Objective = Enhance(cfg.Objective, category, cfg.DetailLevel)
		data.FormatPhrase = pick(cfg.Format, "organizada en puntos claros", "narrativa y coherente", "estructurada y detallada")
		switch cfg.Tone {
		case "académico":
			data.Closing = "rigurosa y bien documentada"
		case "creativo":
			data.Closing = "innovadora y original"
		default:
			data.Closing = "profesional y práctica"
		}
	}

	if tmpl == nil {
		return renderIntegrated(cfg, category)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are static and data is plain strings; fall back to the integrated layout.
		return renderIntegrated(cfg, category)
	}
	return buf.String()
}

// pick chooses a phrase for list formats, for paragraphs, or for anything else.
func pick(format, list, paragraph, other string) string {
	switch {
	case strings.HasPrefix(format, "lista"):
		return list
	case format == "párrafo":
		return paragraph
	default:
		return other
	}
}
