package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/browser"
	"github.com/HartBrook/promptarchitect/internal/config"
	"github.com/HartBrook/promptarchitect/internal/errors"
	"github.com/HartBrook/promptarchitect/internal/export"
	"github.com/HartBrook/promptarchitect/internal/optimize"
	"github.com/HartBrook/promptarchitect/internal/session"
)

type generateOptions struct {
	fields   fieldFlags
	optimize bool
	copy     bool
	export   string
	output   string
	stats    bool
	open     bool
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [objective...]",
		Short: "Render a prompt from the given settings",
		Long: `Renders the structured prompt for the given settings and prints it.

Settings not given on the command line come from the defaults section of the
config file. The objective can be passed with --objective or as arguments.`,
		Example: `  promptarchitect generate --theme "Programación" crear una función para validar emails
  promptarchitect generate -t "Marketing y ventas" --tone persuasivo --optimize "quiero vender más"
  promptarchitect generate --style category --export md "analizar ventas trimestrales"
  promptarchitect generate --copy --open "resumir este artículo"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, a, opts)
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().BoolVar(&opts.optimize, "optimize", false, "Optimize the objective before rendering")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the prompt to the clipboard")
	cmd.Flags().StringVar(&opts.export, "export", "", "Export as json or markdown instead of printing")
	cmd.Flags().StringVarP(&opts.output, "output", "O", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Show prompt statistics")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Open the selected AI engine in the browser")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, a *app, opts *generateOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	store := a.newStore(cfg)
	if err := opts.fields.apply(cmd, args, store, a.catalog, a.errOut); err != nil {
		return err
	}

	if opts.optimize {
		before := store.Config().Objective
		if store.OptimizeObjective() {
			printOptimizeSummary(a.errOut, optimize.Measure(before, store.Config().Objective))
		} else {
			printWarning(a.errOut, "No objective to optimize")
		}
	}

	if err := store.Err(); err != nil {
		return err
	}
	text := store.CurrentPrompt()

	if err := writePrompt(a, cfg, store, text, opts.export, opts.output); err != nil {
		return err
	}

	if opts.copy {
		if err := export.Copy(a.clipboard, text); err != nil {
			return err
		}
		printSuccess(a.errOut, "Copied to clipboard")
	}

	if opts.stats {
		printStats(a.errOut, export.Measure(text))
	}

	if opts.open {
		engine, err := browser.OpenEngine(a.opener, a.catalog, store.Config().AIEngine)
		if err != nil {
			return err
		}
		printSuccess(a.errOut, "Opened %s", engine.Name)
	}

	return nil
}

// writePrompt prints text, writes it to output, or exports it.
func writePrompt(a *app, cfg *config.Config, store *session.Store, text, format, output string) error {
	if format == "" {
		if output == "" {
			fmt.Fprintln(a.out, text)
			return nil
		}
		if err := os.WriteFile(output, []byte(text+"\n"), 0644); err != nil {
			return errors.ExportFailed(output, err)
		}
		printSuccess(a.errOut, "Wrote %s", output)
		return nil
	}

	path, err := exportPrompt(a, cfg, store, text, format, output)
	if err != nil {
		return err
	}
	printSuccess(a.errOut, "Exported to %s", path)
	return nil
}

// exportPrompt encodes text in format and writes it to output, or to a
// timestamped file in the configured export directory.
func exportPrompt(a *app, cfg *config.Config, store *session.Store, text, format, output string) (string, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return "", err
	}

	now := a.now()
	data, err := export.Render(f, text, store.Config(), now)
	if err != nil {
		return "", err
	}

	dir, name := config.ExportDir(cfg.Export.Dir), export.Filename(f, now)
	if output != "" {
		dir, name = filepath.Split(output)
	}
	return export.WriteFile(dir, name, data)
}

func printStats(w io.Writer, s export.Stats) {
	fmt.Fprintln(w, bold("Statistics"))
	printInfo(w, "Characters", fmt.Sprint(s.Characters))
	printInfo(w, "Words", fmt.Sprint(s.Words))
	printInfo(w, "Lines", fmt.Sprint(s.Lines))
	printInfo(w, "Sections", fmt.Sprint(s.Sections))
	printInfo(w, "Estimated tokens", fmt.Sprint(s.EstimatedTokens))
}
