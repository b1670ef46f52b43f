// Package prompt classifies objectives, enriches them and renders the final
// instruction document from a Configuration.
package prompt

// Default values for a fresh configuration.
const (
	DefaultTone        = "profesional"
	DefaultFormat      = "párrafo"
	DefaultDetailLevel = 2
	DefaultLanguage    = "español"
	DefaultEngine      = "groq"

	MinDetailLevel = 1
	MaxDetailLevel = 4
)

// Configuration is the full set of user-chosen fields a prompt is rendered from.
type Configuration struct {
	Theme                  string `json:"theme"`
	Role                   string `json:"role"`
	Objective              string `json:"objective"`
	Tone                   string `json:"tone"`
	Format                 string `json:"format"`
	DetailLevel            int    `json:"detailLevel"`
	Language               string `json:"language"`
	AdditionalInstructions string `json:"additionalInstructions"`
	AIEngine               string `json:"aiEngine"`
}

// DefaultConfiguration returns the configuration a new session starts with.
func DefaultConfiguration() Configuration {
	return Configuration{
		Tone:        DefaultTone,
		Format:      DefaultFormat,
		DetailLevel: DefaultDetailLevel,
		Language:    DefaultLanguage,
		AIEngine:    DefaultEngine,
	}
}

// ClampDetailLevel forces level into [MinDetailLevel, MaxDetailLevel].
func ClampDetailLevel(level int) int {
	if level < MinDetailLevel {
		return MinDetailLevel
	}
	if level > MaxDetailLevel {
		return MaxDetailLevel
	}
	return level
}
