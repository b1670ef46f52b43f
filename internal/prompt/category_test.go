package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_ByTheme(t *testing.T) {
	tests := []struct {
		theme string
		want  Category
	}{
		{"Programación y desarrollo", Programming},
		{"Diseño y creatividad", Design},
		{"Redacción y comunicación", Writing},
		{"Investigación y análisis", Research},
		{"Marketing y ventas", Marketing},
		{"Educación y formación", Education},
	}

	for _, tt := range tests {
		t.Run(tt.theme, func(t *testing.T) {
			// The theme wins even when the objective points elsewhere.
			assert.Equal(t, tt.want, Classify(tt.theme, "escribir un artículo de blog"))
		})
	}
}

func TestClassify_UnmappedThemeFallsThrough(t *testing.T) {
	unmapped := []string{
		"Ciencia y tecnología",
		"Arte y cultura",
		"Negocios y estrategia",
		"Salud y bienestar",
	}

	for _, theme := range unmapped {
		t.Run(theme, func(t *testing.T) {
			assert.Equal(t, Programming, Classify(theme, "Crear una API en Python"))
			assert.Equal(t, Generic, Classify(theme, "Planificar un viaje"))
		})
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name      string
		objective string
		want      Category
	}{
		{"programming", "Necesito un script en Python", Programming},
		{"design", "Un logo para mi marca", Design},
		{"writing", "Escribir un artículo sobre viajes", Writing},
		{"research", "Investigar tendencias de consumo", Research},
		{"marketing", "Aumentar las ventas del trimestre", Marketing},
		{"education", "Enseñar fracciones a niños", Education},
		{"generic", "Planificar un viaje a Japón", Generic},
		{"empty", "", Generic},
		{"case insensitive", "MEJORAR EL BACKEND", Programming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCategory(tt.objective))
		})
	}
}

func TestDetectCategory_FirstMatchWins(t *testing.T) {
	// "api" (programming) and "marketing" both match; list order decides.
	assert.Equal(t, Programming, DetectCategory("campaña de marketing para nuestra api"))

	// "diseño" (design) beats "contenido" (writing).
	assert.Equal(t, Design, DetectCategory("contenido con buen diseño"))
}

func TestDetectCategory_Deterministic(t *testing.T) {
	objective := "estrategia comercial con datos y una web"
	first := DetectCategory(objective)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectCategory(objective))
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "programming", Programming.String())
	assert.Equal(t, "education", Education.String())
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "generic", Category(99).String())
}
