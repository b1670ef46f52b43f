package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/catalog"
	"github.com/HartBrook/promptarchitect/internal/prompt"
	"github.com/HartBrook/promptarchitect/internal/session"
)

// fieldFlags binds the configuration fields to command flags.
type fieldFlags struct {
	theme        string
	role         string
	objective    string
	tone         string
	format       string
	detail       int
	language     string
	instructions string
	engine       string
	style        string
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.theme, "theme", "t", "", "Theme, e.g. \"Programación\"")
	flags.StringVarP(&f.role, "role", "r", "", "Role within the theme")
	flags.StringVar(&f.objective, "objective", "", "What the prompt should achieve")
	flags.StringVar(&f.tone, "tone", "", "Tone (see `options tones`)")
	flags.StringVar(&f.format, "format", "", "Response format (see `options formats`)")
	flags.IntVarP(&f.detail, "detail", "d", prompt.DefaultDetailLevel, "Detail level from 1 to 4")
	flags.StringVarP(&f.language, "language", "l", "", "Response language")
	flags.StringVar(&f.instructions, "instructions", "", "Additional instructions")
	flags.StringVar(&f.engine, "engine", "", "AI engine id (see `options engines`)")
	flags.StringVar(&f.style, "style", "", "Layout: integrated or category")
}

// apply pushes every flag the user set into store. Theme goes first because
// changing it clears the role. Positional args, when given, form the objective.
func (f *fieldFlags) apply(cmd *cobra.Command, args []string, store *session.Store, cat *catalog.Catalog, warn io.Writer) error {
	if cmd.Flags().Changed("style") {
		style, err := prompt.ParseStyle(f.style)
		if err != nil {
			return err
		}
		store.SetStyle(style)
	}

	objective := f.objective
	objectiveSet := cmd.Flags().Changed("objective")
	if !objectiveSet && len(args) > 0 {
		objective = strings.Join(args, " ")
		objectiveSet = true
	}

	settings := []struct {
		flag  string
		field string
		value string
		set   bool
	}{
		{"theme", session.FieldTheme, f.theme, cmd.Flags().Changed("theme")},
		{"role", session.FieldRole, f.role, cmd.Flags().Changed("role")},
		{"objective", session.FieldObjective, objective, objectiveSet},
		{"tone", session.FieldTone, f.tone, cmd.Flags().Changed("tone")},
		{"format", session.FieldFormat, f.format, cmd.Flags().Changed("format")},
		{"detail", session.FieldDetailLevel, strconv.Itoa(f.detail), cmd.Flags().Changed("detail")},
		{"language", session.FieldLanguage, f.language, cmd.Flags().Changed("language")},
		{"instructions", session.FieldAdditionalInstructions, f.instructions, cmd.Flags().Changed("instructions")},
		{"engine", session.FieldAIEngine, f.engine, cmd.Flags().Changed("engine")},
	}

	for _, s := range settings {
		if !s.set {
			continue
		}
		if err := store.Set(s.field, s.value); err != nil {
			return err
		}
	}

	warnUnknown(warn, cat, store.Config())
	return nil
}

// warnUnknown flags values outside the catalog. They still render.
func warnUnknown(w io.Writer, cat *catalog.Catalog, cfg prompt.Configuration) {
	if cfg.Theme != "" && !cat.HasTheme(cfg.Theme) {
		printWarning(w, "Theme %q is not in the catalog; it will be used as written", cfg.Theme)
	}
	if cfg.Role != "" && cat.HasTheme(cfg.Theme) && !cat.HasRole(cfg.Theme, cfg.Role) {
		printWarning(w, "Role %q is not listed for %q", cfg.Role, cfg.Theme)
	}
	if !cat.HasTone(cfg.Tone) {
		printWarning(w, "Tone %q is not in the catalog", cfg.Tone)
	}
	if !cat.HasFormat(cfg.Format) {
		printWarning(w, "Format %q is not in the catalog", cfg.Format)
	}
	if !cat.HasLanguage(cfg.Language) {
		printWarning(w, "Language %q is not in the catalog", cfg.Language)
	}
	if _, ok := cat.Engine(cfg.AIEngine); !ok {
		printWarning(w, "Engine %q is not in the catalog", cfg.AIEngine)
	}
}
