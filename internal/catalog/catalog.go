// Package catalog provides the embedded option lists that ship with promptarchitect:
// themes and their roles, tones, formats, languages and AI engines.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Theme is a topic label with its ordered list of professional roles.
type Theme struct {
	Name  string   `yaml:"name"`
	Roles []string `yaml:"roles"`
}

// Engine is a submission destination for the generated prompt.
type Engine struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// Catalog holds every enumerated option.
type Catalog struct {
	Themes    []Theme  `yaml:"themes"`
	Tones     []string `yaml:"tones"`
	Formats   []string `yaml:"formats"`
	Languages []string `yaml:"languages"`
	Engines   []Engine `yaml:"engines"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog. It is parsed once and never mutated.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	if defaultErr != nil {
		// The embedded file is part of the binary; a parse failure is a build defect.
		panic(fmt.Sprintf("catalog: invalid embedded catalog: %v", defaultErr))
	}
	return defaultCatalog
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return &c, nil
}

// ThemeNames returns the theme labels in display order.
func (c *Catalog) ThemeNames() []string {
	names := make([]string, 0, len(c.Themes))
	for _, t := range c.Themes {
		names = append(names, t.Name)
	}
	return names
}

// RolesFor returns the roles for a theme, or nil for an unknown or empty theme.
func (c *Catalog) RolesFor(theme string) []string {
	for _, t := range c.Themes {
		if t.Name == theme {
			return t.Roles
		}
	}
	return nil
}

// HasTheme reports whether theme is a known theme label.
func (c *Catalog) HasTheme(theme string) bool {
	return c.RolesFor(theme) != nil
}

// HasRole reports whether role belongs to theme's role list.
func (c *Catalog) HasRole(theme, role string) bool {
	return contains(c.RolesFor(theme), role)
}

// HasTone reports whether tone is a known tone.
func (c *Catalog) HasTone(tone string) bool {
	return contains(c.Tones, tone)
}

// HasFormat reports whether format is a known format.
func (c *Catalog) HasFormat(format string) bool {
	return contains(c.Formats, format)
}

// HasLanguage reports whether language is a known language.
func (c *Catalog) HasLanguage(language string) bool {
	return contains(c.Languages, language)
}

// Engine looks up an engine by id.
func (c *Catalog) Engine(id string) (Engine, bool) {
	for _, e := range c.Engines {
		if e.ID == id {
			return e, true
		}
	}
	return Engine{}, false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
