package prompt

import "strings"

// Category is a coarse topic classification that drives enhancement and templates.
type Category int

const (
	Generic Category = iota
	Programming
	Design
	Writing
	Research
	Marketing
	Education
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Programming:
		return "programming"
	case Design:
		return "design"
	case Writing:
		return "writing"
	case Research:
		return "research"
	case Marketing:
		return "marketing"
	case Education:
		return "education"
	default:
		return "generic"
	}
}

// themeCategories maps theme labels to categories. Only six of the ten themes are
// mapped; the rest fall through to keyword detection.
var themeCategories = map[string]Category{
	"Programación y desarrollo": Programming,
	"Diseño y creatividad":      Design,
	"Redacción y comunicación":  Writing,
	"Investigación y análisis":  Research,
	"Marketing y ventas":        Marketing,
	"Educación y formación":     Education,
}

// categoryKeywords is scanned in order; the first list with a match wins.
var categoryKeywords = []struct {
	category Category
	words    []string
}{
	{Programming, []string{"código", "programar", "desarrollo", "software", "app", "web", "api", "función", "algoritmo", "base de datos", "frontend", "backend", "javascript", "python", "react", "framework"}},
	{Design, []string{"diseño", "ui", "ux", "interfaz", "visual", "logo", "branding", "color", "tipografía", "layout", "mockup", "prototipo", "estética", "imagen"}},
	{Writing, []string{"escribir", "redactar", "contenido", "artículo", "blog", "copy", "texto", "comunicación", "mensaje", "narrativa", "historia", "guión"}},
	{Research, []string{"investigar", "analizar", "estudio", "datos", "análisis", "estadística", "investigación", "evidencia", "fuentes", "metodología", "hipótesis"}},
	{Marketing, []string{"marketing", "ventas", "campaña", "publicidad", "conversion", "lead", "customer", "mercado", "brand", "promoción", "estrategia comercial"}},
	{Education, []string{"enseñar", "explicar", "tutorial", "curso", "lección", "aprender", "educativo", "didáctico", "instrucción", "formación", "conocimiento"}},
}

// Classify returns the category for an explicit theme selection, or detects one
// from the objective text when the theme is empty or unmapped.
func Classify(theme, objective string) Category {
	if theme != "" {
		if c, ok := themeCategories[theme]; ok {
			return c
		}
	}
	return DetectCategory(objective)
}

// DetectCategory scans objective for category keywords using substring matching.
func DetectCategory(objective string) Category {
	lower := strings.ToLower(objective)
	for _, entry := range categoryKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.category
			}
		}
	}
	return Generic
}
