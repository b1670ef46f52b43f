package prompt

import (
	"strings"
	"unicode/utf8"
)

// structuredLength is the rune count at which an objective is treated as already structured.
const structuredLength = 100

// ladder is the cumulative bullet list appended for one category.
// Level 2 adds the header and the first block, level 3 the second, level 4 the third.
type ladder struct {
	header string
	blocks [3][]string
}

var (
	programmingLadder = ladder{
		header: "Referencias técnicas a considerar:",
		blocks: [3][]string{
			{
				"Mejores prácticas de desarrollo y patrones de diseño apropiados",
				"Optimización de rendimiento y escalabilidad",
				"Seguridad y validación de datos",
			},
			{
				"Manejo de errores y casos edge",
				"Testing y documentación del código",
				"Consideraciones de mantenibilidad a largo plazo",
			},
			{
				"Arquitectura robusta y principios SOLID",
				"Integración con sistemas existentes",
				"Métricas de calidad y monitoreo",
			},
		},
	}

	designLadder = ladder{
		header: "Consideraciones de diseño:",
		blocks: [3][]string{
			{
				"Principios de usabilidad y experiencia del usuario",
				"Coherencia visual y identidad de marca",
				"Accesibilidad y responsive design",
			},
			{
				"Psicología del color y tipografía efectiva",
				"Investigación de usuarios y testing de usabilidad",
				"Tendencias actuales y diferenciación competitiva",
			},
			{
				"Estrategia de diseño a largo plazo",
				"Sistemas de diseño escalables",
				"ROI del diseño y métricas de conversión",
			},
		},
	}

	genericLadder = ladder{
		header: "Contexto y consideraciones importantes:",
		blocks: [3][]string{
			{
				"Enfoque profesional y metodología apropiada",
				"Factores relevantes del área de especialización",
			},
			{
				"Mejores prácticas de la industria",
				"Análisis de alternativas y justificación de decisiones",
			},
			{
				"Perspectiva estratégica a largo plazo",
				"Consideraciones de implementación y seguimiento",
			},
		},
	}
)

func ladderFor(c Category) ladder {
	switch c {
	case Programming:
		return programmingLadder
	case Design:
		return designLadder
	case Writing, Research, Marketing, Education, Generic:
		return genericLadder
	default:
		return genericLadder
	}
}

// IsStructured reports whether an objective is long or multi-line enough to be
// left as written.
func IsStructured(objective string) bool {
	trimmed := strings.TrimSpace(objective)
	return utf8.RuneCountInString(trimmed) >= structuredLength || strings.Contains(trimmed, "\n")
}

// Enhance expands a short objective with the category's considerations, gated by
// detailLevel. Structured objectives are returned trimmed but otherwise unchanged.
func Enhance(objective string, category Category, detailLevel int) string {
	base := strings.TrimSpace(objective)
	if IsStructured(base) {
		return base
	}

	l := ladderFor(category)

	var b strings.Builder
	b.WriteString(base)
	if detailLevel >= 2 {
		b.WriteString("\n\n")
		b.WriteString(l.header)
		writeBullets(&b, l.blocks[0])
	}
	if detailLevel >= 3 {
		writeBullets(&b, l.blocks[1])
	}
	if detailLevel == 4 {
		writeBullets(&b, l.blocks[2])
	}
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("\n- ")
		b.WriteString(item)
	}
}
