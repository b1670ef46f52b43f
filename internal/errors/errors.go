// Package errors provides typed errors for promptarchitect.
package errors

import "fmt"

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid     ErrorCode = "CONFIG_INVALID"
	ErrInvalidField      ErrorCode = "INVALID_FIELD"
	ErrGenerationFailed  ErrorCode = "GENERATION_FAILED"
	ErrAINotConfigured   ErrorCode = "AI_NOT_CONFIGURED"
	ErrAIRequestFailed   ErrorCode = "AI_REQUEST_FAILED"
	ErrAITimeout         ErrorCode = "AI_TIMEOUT"
	ErrAIInvalidResponse ErrorCode = "AI_INVALID_RESPONSE"
	ErrStaleResult       ErrorCode = "STALE_RESULT"
	ErrExportFailed      ErrorCode = "EXPORT_FAILED"
	ErrClipboardFailed   ErrorCode = "CLIPBOARD_FAILED"
	ErrUnknownEngine     ErrorCode = "UNKNOWN_ENGINE"
)

// User-facing messages surfaced by the session store.
const (
	GenerationFailedMessage = "Error al generar el prompt. Por favor, verifica la configuración."
	AIFailedMessage         = "Error al conectar con la IA. Intenta nuevamente."
)

// ArchitectError represents a typed error with user-friendly hints.
type ArchitectError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *ArchitectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ArchitectError) Unwrap() error {
	return e.Cause
}

// HintText returns the hint shown below the error message.
func (e *ArchitectError) HintText() string {
	return e.Hint
}

// New creates a new ArchitectError.
func New(code ErrorCode, message, hint string) *ArchitectError {
	return &ArchitectError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new ArchitectError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *ArchitectError {
	return &ArchitectError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// Is reports whether err is an ArchitectError with the given code.
func Is(err error, code ErrorCode) bool {
	for err != nil {
		if ae, ok := err.(*ArchitectError); ok && ae.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// ConfigNotFound returns an error for missing config file.
func ConfigNotFound(path string) *ArchitectError {
	return &ArchitectError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Run `promptarchitect config init` to create a configuration",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *ArchitectError {
	return &ArchitectError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/promptarchitect/config.yaml",
	}
}

// InvalidField returns an error for an unknown field or an unparseable value.
func InvalidField(field, reason string) *ArchitectError {
	return &ArchitectError{
		Code:    ErrInvalidField,
		Message: fmt.Sprintf("invalid field %q: %s", field, reason),
		Hint:    "Fields: theme, role, objective, tone, format, detailLevel, language, additionalInstructions, aiEngine",
	}
}

// GenerationFailed returns an error for a render that could not complete.
func GenerationFailed(cause error) *ArchitectError {
	return &ArchitectError{
		Code:    ErrGenerationFailed,
		Message: GenerationFailedMessage,
		Cause:   cause,
	}
}

// AINotConfigured returns an error when no API key is available.
func AINotConfigured() *ArchitectError {
	return &ArchitectError{
		Code:    ErrAINotConfigured,
		Message: "API key no configurada",
		Hint:    "Set GROQ_API_KEY in your environment or in a .env file",
	}
}

// AIRequestFailed returns an error for a failed improvement request.
func AIRequestFailed(reason string, cause error) *ArchitectError {
	return &ArchitectError{
		Code:    ErrAIRequestFailed,
		Message: fmt.Sprintf("AI request failed: %s", reason),
		Hint:    "Check your network connection and API key",
		Cause:   cause,
	}
}

// AITimeout returns an error for a request that exceeded its deadline.
func AITimeout(cause error) *ArchitectError {
	return &ArchitectError{
		Code:    ErrAITimeout,
		Message: "La petición tardó demasiado tiempo",
		Hint:    "Increase improve.timeout in your config or try again",
		Cause:   cause,
	}
}

// AIInvalidResponse returns an error for a response without usable content.
func AIInvalidResponse() *ArchitectError {
	return &ArchitectError{
		Code:    ErrAIInvalidResponse,
		Message: "Respuesta inválida de la API",
	}
}

// StaleResult returns an error for an improvement discarded after a config change.
func StaleResult() *ArchitectError {
	return &ArchitectError{
		Code:    ErrStaleResult,
		Message: "configuration changed while the AI request was running; result discarded",
		Hint:    "Run the improvement again",
	}
}

// ExportFailed returns an error for export write failures.
func ExportFailed(path string, cause error) *ArchitectError {
	return &ArchitectError{
		Code:    ErrExportFailed,
		Message: fmt.Sprintf("failed to export to %s", path),
		Cause:   cause,
	}
}

// ClipboardFailed returns an error when the clipboard cannot be written.
func ClipboardFailed(cause error) *ArchitectError {
	return &ArchitectError{
		Code:    ErrClipboardFailed,
		Message: "failed to copy prompt to clipboard",
		Hint:    "On Linux, install xclip or xsel",
		Cause:   cause,
	}
}

// UnknownEngine returns an error for an AI engine id missing from the catalog.
func UnknownEngine(id string) *ArchitectError {
	return &ArchitectError{
		Code:    ErrUnknownEngine,
		Message: fmt.Sprintf("unknown AI engine: %s", id),
		Hint:    "Run `promptarchitect options engines` to list available engines",
	}
}
