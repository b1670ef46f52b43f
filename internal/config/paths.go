package config

import (
	"os"
	"path/filepath"
)

// Paths provides all promptarchitect-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/promptarchitect
	ConfigFile string // ~/.config/promptarchitect/config.yaml
	EnvFile    string // ~/.config/promptarchitect/.env
}

// NewPaths creates Paths under ~/.config, on every platform.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(filepath.Join(home, ".config", "promptarchitect"))
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		EnvFile:    filepath.Join(configDir, ".env"),
	}
}

// ExportDir resolves the directory exports are written to. An empty dir means
// the working directory; a leading ~ expands to HOME.
func ExportDir(dir string) string {
	if dir == "" {
		return "."
	}
	if dir == "~" || len(dir) > 1 && dir[:2] == "~/" {
		return filepath.Join(os.Getenv("HOME"), dir[1:])
	}
	return dir
}
