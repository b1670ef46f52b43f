package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/export"
)

type improveOptions struct {
	fields fieldFlags
	copy   bool
}

func newImproveCmd(a *app) *cobra.Command {
	opts := &improveOptions{}

	cmd := &cobra.Command{
		Use:   "improve [objective...]",
		Short: "Render a prompt and ask a language model to improve it",
		Long: `Renders the prompt like generate, then sends it to an OpenAI-compatible
chat completions API (Groq by default) and prints the improved version.

Requires GROQ_API_KEY (or PROMPTARCHITECT_API_KEY) in the environment or in a
.env file in the working directory or ~/.config/promptarchitect.`,
		Example: `  promptarchitect improve --theme "Educación" "explicar fracciones a niños"
  promptarchitect improve --copy -t "Salud y bienestar" "rutina de ejercicio en casa"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImprove(cmd, args, a, opts)
		},
	}

	opts.fields.register(cmd)
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the improved prompt to the clipboard")

	return cmd
}

func runImprove(cmd *cobra.Command, args []string, a *app, opts *improveOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	store := a.newStore(cfg)
	if err := opts.fields.apply(cmd, args, store, a.catalog, a.errOut); err != nil {
		return err
	}

	client, err := a.newAIClient(cfg, a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.errOut, dim("Improving prompt..."))
	improved, err := store.Improve(contextOrBackground(cmd), client, cfg.Improve.TimeoutDuration())
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, improved)

	if opts.copy {
		if err := export.Copy(a.clipboard, improved); err != nil {
			return err
		}
		printSuccess(a.errOut, "Copied to clipboard")
	}
	return nil
}

type suggestOptions struct {
	theme     string
	objective string
}

func newSuggestCmd(a *app) *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest [objective...]",
		Short: "Ask a language model for ways to sharpen an objective",
		Example: `  promptarchitect suggest --theme "Marketing y ventas" "lanzar un producto"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("objective") && len(args) > 0 {
				opts.objective = strings.Join(args, " ")
			}
			return runSuggest(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme of the prompt")
	cmd.Flags().StringVar(&opts.objective, "objective", "", "Objective to get suggestions for")

	return cmd
}

func runSuggest(cmd *cobra.Command, a *app, opts *suggestOptions) error {
	if strings.TrimSpace(opts.theme) == "" && strings.TrimSpace(opts.objective) == "" {
		return fmt.Errorf("give a theme or an objective to get suggestions for")
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	client, err := a.newAIClient(cfg, a.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(contextOrBackground(cmd), cfg.Improve.TimeoutDuration())
	defer cancel()

	suggestions, err := client.Suggest(ctx, opts.theme, opts.objective)
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		printWarning(a.errOut, "No suggestions returned")
		return nil
	}
	for i, s := range suggestions {
		fmt.Fprintf(a.out, "%s %s\n", info(fmt.Sprintf("%d.", i+1)), s)
	}
	return nil
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
