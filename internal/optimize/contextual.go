package optimize

import (
	"regexp"
	"strings"
)

var (
	programmingContext = []string{"programacion", "desarrollo"}
	designContext      = []string{"diseño", "visual", "ui"}
	writingContext     = []string{"redaccion", "contenido", "marketing"}
)

var programmingRewrites = []rewrite{
	rw(`(?i)^Función para\s+`, "Desarrollar función que "),
	rw(`(?i)^(una?\s+)?función\s+(para\s+)?`, "Crear función que "),
	rw(`(?i)\bexportar datos a\s+excel`, "exportar datos a formato Excel (.xlsx)"),
	rw(`(?i)\bexportar\s+(a\s+)?excel`, "exportar a archivo Excel"),
	rw(`(?i)\bponer\s+en\s+excel`, "volcar en hoja de cálculo Excel"),
}

var (
	excelMention  = regexp.MustCompile(`(?i)\bexcel\b`)
	fileKindNamed = regexp.MustCompile(`(?i)\b(archivo|formato|documento|hoja)\b`)
	bareExcel     = rw(`(?i)excel`, "archivo Excel")
)

var (
	designOpening  = rw(`(?i)^Función para\s+`, "Diseñar interfaz para ")
	designVerbs    = rw(`(?i)\b(mejorar|optimizar)\s+`, "rediseñar para mejorar ")
	writingOpening = rw(`(?i)^Función para\s+`, "Redactar contenido que ")
	writingVerbs   = rw(`(?i)\b(escribir|redactar)\s+`, "crear contenido para ")
)

// contextual applies the rule groups whose keywords appear in context. Several
// groups may apply; they run in a fixed order.
func contextual(text, context string) string {
	if context == "" {
		return text
	}
	hint := strings.ToLower(context)

	if containsAny(hint, programmingContext) {
		for _, r := range programmingRewrites {
			text = r.first(text)
		}
		if excelMention.MatchString(text) && !fileKindNamed.MatchString(text) {
			text = bareExcel.first(text)
		}
	}

	if containsAny(hint, designContext) {
		text = designOpening.first(text)
		text = designVerbs.all(text)
	}

	if containsAny(hint, writingContext) {
		// Folding verbs first keeps the inserted "Redactar" from being folded again.
		text = writingVerbs.all(text)
		text = writingOpening.first(text)
	}

	return text
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
