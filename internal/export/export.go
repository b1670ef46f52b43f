// Package export turns a rendered prompt into shareable JSON and Markdown
// documents and writes them to disk or the clipboard.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/HartBrook/promptarchitect/internal/errors"
	"github.com/HartBrook/promptarchitect/internal/prompt"
)

// AppName is stamped into every export.
const AppName = "Prompt Architect v1.0"

const notSpecified = "No especificado"

// Format selects the export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts "json", "markdown" or "md".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown export format %q (use json or markdown)", name)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return "json"
}

// Document is the JSON export payload.
type Document struct {
	ID            string               `json:"id"`
	Prompt        string               `json:"prompt"`
	Configuration prompt.Configuration `json:"configuration"`
	Timestamp     time.Time            `json:"timestamp"`
	App           string               `json:"app"`
}

// NewDocument stamps a prompt and its configuration with a fresh id.
func NewDocument(text string, cfg prompt.Configuration, now time.Time) Document {
	return Document{
		ID:            uuid.New().String(),
		Prompt:        text,
		Configuration: cfg,
		Timestamp:     now.UTC(),
		App:           AppName,
	}
}

// JSON encodes the document with two-space indentation.
func JSON(text string, cfg prompt.Configuration, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(text, cfg, now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return append(data, '\n'), nil
}

// Markdown renders the prompt inside a fenced document with its configuration.
func Markdown(text string, cfg prompt.Configuration, now time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Prompt Architect Export\n\n")
	b.WriteString("## Configuración\n\n")
	fmt.Fprintf(&b, "- **Tema**: %s\n", orNotSpecified(cfg.Theme))
	fmt.Fprintf(&b, "- **Objetivo**: %s\n", orNotSpecified(cfg.Objective))
	fmt.Fprintf(&b, "- **Tono**: %s\n", cfg.Tone)
	fmt.Fprintf(&b, "- **Formato**: %s\n", cfg.Format)
	fmt.Fprintf(&b, "- **Nivel de detalle**: %d/4\n", cfg.DetailLevel)
	fmt.Fprintf(&b, "- **Idioma**: %s\n\n", cfg.Language)

	if cfg.AdditionalInstructions != "" {
		fmt.Fprintf(&b, "## Instrucciones Adicionales\n\n%s\n\n", cfg.AdditionalInstructions)
	}

	fmt.Fprintf(&b, "## Prompt Generado\n\n```\n%s\n```\n\n", text)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Generado con Prompt Architect el %d/%d/%d*\n", now.Day(), int(now.Month()), now.Year())

	return []byte(b.String())
}

// Render encodes text in the given format.
func Render(format Format, text string, cfg prompt.Configuration, now time.Time) ([]byte, error) {
	if format == FormatMarkdown {
		return Markdown(text, cfg, now), nil
	}
	return JSON(text, cfg, now)
}

// Filename returns the default export file name, prompt-architect-<unix millis>.<ext>.
func Filename(format Format, now time.Time) string {
	return fmt.Sprintf("prompt-architect-%d.%s", now.UnixMilli(), format.Extension())
}

// WriteFile writes data to dir/name, creating dir if needed, and returns the path.
func WriteFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", errors.ExportFailed(path, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.ExportFailed(path, err)
	}
	return path, nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
