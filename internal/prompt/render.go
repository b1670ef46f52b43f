package prompt

import (
	"fmt"
	"strings"
)

const rule = "═══════════════════════════════════════════════════════════════"

const closingSentence = "Por favor responde de manera directa y estructurada."

// Style selects which document layout Render produces for a non-empty objective.
type Style int

const (
	// StyleIntegrated is the single document that folds every setting into one layout.
	StyleIntegrated Style = iota
	// StyleCategory uses the persona template of the detected category.
	StyleCategory
)

// String returns the style name used on the command line.
func (s Style) String() string {
	switch s {
	case StyleCategory:
		return "category"
	default:
		return "integrated"
	}
}

// ParseStyle parses a style name. The empty string selects StyleIntegrated.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "integrated":
		return StyleIntegrated, nil
	case "category":
		return StyleCategory, nil
	default:
		return StyleIntegrated, fmt.Errorf("unknown style %q (use integrated or category)", name)
	}
}

// Render builds the prompt document for cfg using StyleIntegrated.
func Render(cfg Configuration) string {
	return RenderStyle(cfg, StyleIntegrated)
}

// RenderStyle builds the prompt document for cfg. An empty objective always yields
// the awaiting-objective preview regardless of style.
func RenderStyle(cfg Configuration, style Style) string {
	if strings.TrimSpace(cfg.Objective) == "" {
		return renderPreview(cfg)
	}

	category := Classify(cfg.Theme, cfg.Objective)
	if style == StyleCategory {
		return renderCategory(cfg, category)
	}
	return renderIntegrated(cfg, category)
}

func renderPreview(cfg Configuration) string {
	return fmt.Sprintf(`PROMPT ARQUITECTO - CONFIGURACIÓN ACTIVA

%s
ESTADO: Esperando objetivo específico...
%s
%s

CONFIGURACIÓN ACTUAL:

TONO CONFIGURADO: %s
   → %s

FORMATO ESTABLECIDO: %s
   → %s

NIVEL DE DETALLE: %s

IDIOMA: %s

%s

%s`,
		rule,
		rule,
		previewThemeContext(cfg),
		upper(cfg.Tone),
		ToneDescription(cfg.Tone),
		upper(cfg.Format),
		FormatInstruction(cfg.Format),
		DetailDescription(cfg.DetailLevel),
		upper(cfg.Language),
		extrasBlock(cfg.AdditionalInstructions),
		closingSentence,
	)
}

func renderIntegrated(cfg Configuration, category Category) string {
	enhanced := Enhance(cfg.Objective, category, cfg.DetailLevel)

	return fmt.Sprintf(`PROMPT ARQUITECTO - CONFIGURACIÓN PROFESIONAL

%s
OBJETIVO PRINCIPAL:
%s
%s
%s

CONFIGURACIÓN DE RESPUESTA:

ESTILO DE COMUNICACIÓN: %s
   → %s

FORMATO DE PRESENTACIÓN: %s
   → %s

NIVEL DE PROFUNDIDAD: %s

IDIOMA DE RESPUESTA: %s

%s

%s
INSTRUCCIONES DE EJECUCIÓN:

1. INTEGRA todas las configuraciones especificadas arriba
2. RESPETA el tono %s en cada párrafo o elemento
3. ESTRUCTURA usando el formato %s consistentemente
4. AJUSTA la profundidad al nivel %d/4 solicitado

RESULTADO ESPERADO:
Una respuesta que demuestre la perfecta integración de todas las configuraciones, siendo %s en el tono, %s en la estructura, y %s en el desarrollo.

%s`,
		rule,
		enhanced,
		rule,
		integratedThemeContext(cfg),
		upper(cfg.Tone),
		ToneDescription(cfg.Tone),
		upper(cfg.Format),
		FormatInstruction(cfg.Format),
		DetailDescription(cfg.DetailLevel),
		upper(cfg.Language),
		extrasBlock(cfg.AdditionalInstructions),
		rule,
		cfg.Tone,
		cfg.Format,
		cfg.DetailLevel,
		cfg.Tone,
		cfg.Format,
		depthClause(cfg.DetailLevel),
		closingSentence,
	)
}

// previewThemeContext frames the area and role while no objective exists yet.
func previewThemeContext(cfg Configuration) string {
	if cfg.Theme == "" {
		return ""
	}
	area := lower(cfg.Theme)
	framing := "\nÁREA DE ESPECIALIZACIÓN: " + cfg.Theme
	if cfg.Role != "" {
		framing += fmt.Sprintf("\nROL PROFESIONAL: %s\nActúa como %s especializado en %s con amplia experiencia práctica.", cfg.Role, cfg.Role, area)
	} else {
		framing += fmt.Sprintf("\nExperto profesional especializado en %s con amplia experiencia práctica.", area)
	}
	return framing
}

// integratedThemeContext frames the area and role and asks for the field's practices.
func integratedThemeContext(cfg Configuration) string {
	if cfg.Theme == "" {
		return ""
	}
	area := lower(cfg.Theme)
	framing := "\nCONTEXTO TEMÁTICO: " + cfg.Theme
	if cfg.Role != "" {
		framing += fmt.Sprintf("\nROL PROFESIONAL: %s\n\nActúa como %s especializado en %s con amplia experiencia práctica. Adapta tu enfoque a las mejores prácticas, terminología y estándares de este campo desde la perspectiva de este rol profesional.", cfg.Role, cfg.Role, area)
	} else {
		framing += fmt.Sprintf("\nEsta tarea se enmarca específicamente en el área de %s. Adapta tu enfoque a las mejores prácticas, terminología y estándares de este campo.", area)
	}
	return framing
}

func extrasBlock(extras string) string {
	if strings.TrimSpace(extras) == "" {
		return ""
	}
	return "\nINSTRUCCIONES ESPECÍFICAS:\n" + extras + "\n"
}

func depthClause(level int) string {
	switch level {
	case 4:
		return "exhaustivamente detallada"
	case 3:
		return "profundamente analizada"
	case 2:
		return "claramente explicada"
	default:
		return "concisamente presentada"
	}
}
