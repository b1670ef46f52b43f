package optimize

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimize_ProgrammingExample(t *testing.T) {
	got := Optimize("quiero que me hagas una función que pueda validar emails", "programacion")

	assert.Equal(t, "Desarrollar función que para validar emails.", got)
}

func TestOptimize_WithoutContext(t *testing.T) {
	got := Optimize("quiero que me hagas una función que pueda validar emails", "")

	assert.Equal(t, "Función para validar emails.", got)
}

func TestOptimize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Optimize("", ""))
	assert.Equal(t, "   ", Optimize("   ", "programacion"))
	assert.Equal(t, "\n\t", Optimize("\n\t", "diseño"))
}

func TestOptimize_Converges(t *testing.T) {
	once := Optimize("quiero que me hagas una función que pueda validar emails", "programacion")
	assert.Equal(t, once, Optimize(once, "programacion"))
}

func TestOptimize_NeverReintroducesFiller(t *testing.T) {
	inputs := []struct {
		text    string
		context string
	}{
		{"quiero que me hagas una función que pueda validar emails", "programacion"},
		{"Necesito que me crees una aplicación que permita guardar cosas", ""},
		{"por favor, un sistema que sea capaz de o sea gestionar todo", "Programación y desarrollo"},
		{"me gustaría que hacer este tipo de cosas pero sin embargo rápido", "Diseño y creatividad"},
	}
	fillers := []string{"quiero que", "necesito que", "me gustaría que", "por favor", "me hagas", "me crees", "que pueda", "que permita", "que sea capaz de", "o sea", "este tipo de"}

	for _, in := range inputs {
		t.Run(in.text, func(t *testing.T) {
			once := Optimize(in.text, in.context)
			twice := Optimize(once, in.context)

			for _, f := range fillers {
				assert.NotContains(t, strings.ToLower(once), f)
				assert.NotContains(t, strings.ToLower(twice), f)
			}
			assert.Regexp(t, `[.!?]$`, twice)
		})
	}
}

func TestStages_Order(t *testing.T) {
	var names []string
	for _, s := range Stages() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"normalize", "restructure", "contextual", "deredundancy", "comprehension", "finish"}, names)
}

func TestTrace(t *testing.T) {
	input := "quiero que me hagas una función que pueda validar emails"

	results := Trace(input, "programacion")
	require.Len(t, results, 6)

	assert.Equal(t, "normalize", results[0].Stage)
	assert.Equal(t, "una función para validar emails", results[0].Output)
	assert.Equal(t, "Función para para validar emails", results[1].Output)
	assert.Equal(t, "Desarrollar función que para validar emails", results[2].Output)
	assert.Equal(t, Optimize(input, "programacion"), results[5].Output)

	assert.Nil(t, Trace("  ", ""))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses whitespace", "  crear   un\n\tinforme  ", "crear un informe"},
		{"request and capability", "quiero que me hagas una función que pueda validar emails", "una función para validar emails"},
		{"politeness then greeting", "Por favor, hola, crea un informe", "crea un informe"},
		{"fillers strip in fixed order", "hola, por favor crea un informe", "por favor crea un informe"},
		{"request keeps article", "Necesito que me programes un script que permita leer CSV", "un script para leer CSV"},
		{"first capability only", "leer que pueda abrir y que pueda escribir", "leer para abrir y que pueda escribir"},
		{"case insensitive", "QUIERO QUE Me Hagas Un informe", "Un informe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.input, ""))
		})
	}
}

func TestRestructure(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"function opening", "una función para validar emails", "Función para para validar emails"},
		{"system opening keeps verbs", "un sistema que gestione todo", "Sistema para gestione toda la información"},
		{"vague verbs without marker", "hacer un informe y mostrar algo", "generar un informe y visualizar componente"},
		{"verbs replace first occurrence", "hacer esto y hacer aquello", "generar esto y hacer aquello"},
		{"nouns replace every occurrence", "una cosa y otra cosa y las cosas", "una elemento y otra elemento y las elementos"},
		{"marker word blocks verbs", "una clase para exportar", "una clase para exportar"},
		{"marker is case insensitive", "usar la api para mostrar", "usar la api para mostrar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, restructure(tt.input, ""))
		})
	}
}

func TestContextual(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		context string
		want    string
	}{
		{"empty context is identity", "Función para validar", "", "Función para validar"},
		{"programming opening", "Función para para validar emails", "programacion", "Desarrollar función que para validar emails"},
		{"bare function opening", "una función para leer", "desarrollo", "Crear función que leer"},
		{"excel export", "Crear un informe y exportar a Excel", "desarrollo web", "Crear un informe y exportar a archivo Excel"},
		{"excel data export", "exportar datos a Excel", "programacion", "exportar datos a formato Excel (.xlsx)"},
		{"excel without file kind", "generar tabla en excel", "Programación y desarrollo", "generar tabla en archivo Excel"},
		{"excel with file kind", "abrir la hoja excel", "programacion", "abrir la hoja excel"},
		{"put in excel", "poner en excel los totales", "programacion", "volcar en hoja de cálculo Excel los totales"},
		{"design", "Función para mejorar la web y optimizar cargas", "Diseño y creatividad", "Diseñar interfaz para rediseñar para mejorar la web y rediseñar para mejorar cargas"},
		{"writing", "Función para escribir un post", "marketing", "Redactar contenido que crear contenido para un post"},
		{"groups stack in order", "Función para escribir docs", "desarrollo de contenido", "Desarrollar función que crear contenido para docs"},
		{"unrelated context", "Función para escribir", "Salud y bienestar", "Función para escribir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contextual(tt.input, tt.context))
		})
	}
}

func TestDeredundancy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"intensifier", "es muy muy rápido", "es muy rápido"},
		{"keeps first word casing", "Que que hacer", "Que hacer"},
		{"gerund pair", "crear y hacer una web", "crear una web"},
		{"connector y además", "rápido y además barato", "rápido , además barato"},
		{"connector sin embargo", "lo hizo pero sin embargo falló", "lo hizo , sin embargo falló"},
		{"connector is whole word", "pero aunque llueva", "aunque llueva"},
		{"connector case insensitive", "Porque ya que sí", "ya que sí"},
		{"fillers", "este tipo de cosas o sea todo pues", "cosas todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collapseWhitespace(deredundancy(tt.input, "")))
		})
	}
}

func TestComprehension(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"specific verbs", "mejorar el rendimiento y cambiar el color", "optimizar el rendimiento y modificar el color"},
		{"hacer", "hacer un informe", "Desarrollar un informe"},
		{"poner", "poner un botón", "Implementar un botón"},
		{"dar", "dar formato", "Proporcionar formato"},
		{"tener has no rewrite", "tener un plan", "tener un plan"},
		{"leading verb only", "quiero hacer algo", "quiero hacer algo"},
		{"leftover doubles", "lista para para todos que que en en casa", "lista para todos que en casa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, comprehension(tt.input, ""))
		})
	}
}

func TestFinish(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"capitalizes and terminates", "función para validar", "Función para validar."},
		{"keeps question mark", "¿dónde?", "¿dónde?"},
		{"space before comma", "hola ,  mundo", "Hola, mundo."},
		{"space after period", "fin.siguiente", "Fin. siguiente."},
		{"doubled comma", "a,,b", "A, b."},
		{"doubled period", "listo..", "Listo."},
		{"file extension stays joined", "exportar a formato Excel (.xlsx)", "Exportar a formato Excel (.xlsx)."},
		{"accented first letter", "ñandú", "Ñandú."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finish(tt.input, ""))
		})
	}
}

func TestReplaceFirst(t *testing.T) {
	re := regexp.MustCompile(`(a)(b)`)

	assert.Equal(t, "baab", replaceFirst(re, "abab", "${2}${1}"))
	assert.Equal(t, "xyz", replaceFirst(re, "xyz", "${1}"))
}
