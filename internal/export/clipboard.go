package export

import (
	stderrors "errors"

	"github.com/atotto/clipboard"

	"github.com/HartBrook/promptarchitect/internal/errors"
)

// Clipboard receives copied prompts.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return stderrors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text to cb.
func Copy(cb Clipboard, text string) error {
	if err := cb.WriteAll(text); err != nil {
		return errors.ClipboardFailed(err)
	}
	return nil
}
