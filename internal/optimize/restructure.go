package optimize

import "regexp"

// openings turn a leading noun phrase into a "<Noun> para" opening.
var openings = []rewrite{
	rw(`(?i)^(una?\s+)?función\s+(que\s+)?`, "Función para "),
	rw(`(?i)^(un\s+)?sistema\s+(que\s+)?`, "Sistema para "),
	rw(`(?i)^(un\s+)?programa\s+(que\s+)?`, "Programa para "),
	rw(`(?i)^(un\s+)?script\s+(que\s+)?`, "Script para "),
	rw(`(?i)^(una?\s+)?aplicación\s+(que\s+)?`, "Aplicación para "),
}

// technicalMarker disables the vague-verb table; technical text already names its action.
var technicalMarker = regexp.MustCompile(`(?i)\b(función|método|clase|API|sistema)\b`)

// vagueVerbs replace the first occurrence of each verb.
var vagueVerbs = []rewrite{
	rw(`(?i)\bexportar\b`, "exportar datos a"),
	rw(`(?i)\bimportar\b`, "importar datos desde"),
	rw(`(?i)\bguardar\b`, "guardar información en"),
	rw(`(?i)\bcargar\b`, "cargar datos de"),
	rw(`(?i)\bmostrar\b`, "visualizar"),
	rw(`(?i)\benseñar\b`, "presentar"),
	rw(`(?i)\bhacer\b`, "generar"),
	rw(`(?i)\bcrear\b`, "crear"),
	rw(`(?i)\bponer\b`, "insertar"),
	rw(`(?i)\bsacar\b`, "extraer"),
}

// vagueNouns replace every occurrence.
var vagueNouns = []rewrite{
	rw(`(?i)\bcosa\b`, "elemento"),
	rw(`(?i)\bcosas\b`, "elementos"),
	rw(`(?i)\balgo\b`, "componente"),
	rw(`(?i)\btodo\b`, "toda la información"),
	rw(`(?i)\bparte\b`, "sección"),
	rw(`(?i)\baspecto\b`, "característica"),
}

// restructure names the deliverable up front and sharpens vague vocabulary.
func restructure(text, _ string) string {
	for _, o := range openings {
		text = o.first(text)
	}

	if !technicalMarker.MatchString(text) {
		for _, v := range vagueVerbs {
			text = v.first(text)
		}
	}

	for _, n := range vagueNouns {
		text = n.all(text)
	}
	return text
}
