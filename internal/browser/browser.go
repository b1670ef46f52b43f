// Package browser opens AI chat engines in the user's web browser.
package browser

import (
	"io"

	ghbrowser "github.com/cli/go-gh/v2/pkg/browser"

	"github.com/HartBrook/promptarchitect/internal/catalog"
	"github.com/HartBrook/promptarchitect/internal/errors"
)

// Opener opens a URL.
type Opener interface {
	Browse(url string) error
}

// New returns an Opener backed by the system browser. The BROWSER environment
// variable, when set, overrides the default launcher.
func New(stdout, stderr io.Writer) Opener {
	return ghbrowser.New("", stdout, stderr)
}

// OpenEngine looks up the engine by id and opens its URL. It returns the engine
// that was opened.
func OpenEngine(opener Opener, cat *catalog.Catalog, id string) (catalog.Engine, error) {
	engine, ok := cat.Engine(id)
	if !ok || engine.URL == "" {
		return catalog.Engine{}, errors.UnknownEngine(id)
	}
	if err := opener.Browse(engine.URL); err != nil {
		return engine, err
	}
	return engine, nil
}
