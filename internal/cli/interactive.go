package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/browser"
	"github.com/HartBrook/promptarchitect/internal/config"
	"github.com/HartBrook/promptarchitect/internal/export"
	"github.com/HartBrook/promptarchitect/internal/optimize"
	"github.com/HartBrook/promptarchitect/internal/prompt"
	"github.com/HartBrook/promptarchitect/internal/session"
)

const shellHelp = `Commands:
  set <field> <value>   Set theme, role, objective, tone, format, detail,
                        language, instructions or engine
  unset <field>         Clear a field
  show                  Show the current settings
  prompt                Print the current prompt
  style <name>          Switch layout: integrated or category
  optimize              Optimize the objective
  revert                Restore the objective from before optimizing
  edit                  Edit the prompt in $EDITOR
  discard               Drop hand edits and show the generated prompt
  reset                 Restore the default settings
  improve               Ask the AI to improve the prompt
  suggest               Ask the AI for suggestions on the objective
  copy                  Copy the prompt to the clipboard
  export [json|md] [path]
                        Export the prompt
  stats                 Show prompt statistics
  open                  Open the selected AI engine
  options [kind]        List catalog values
  help                  Show this help
  quit                  Leave the shell`

func newInteractiveCmd(a *app) *cobra.Command {
	fields := &fieldFlags{}

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"shell"},
		Short:   "Build a prompt step by step in an interactive shell",
		Long: `Starts a line-oriented shell over a single prompt session. Settings can be
changed one at a time and the prompt is regenerated after every change.

Flags seed the session before the shell starts.`,
		Example: `  promptarchitect interactive
  promptarchitect interactive --theme "Programación" --detail 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			sh := &shell{a: a, cfg: cfg, store: a.newStore(cfg)}
			if err := fields.apply(cmd, args, sh.store, a.catalog, a.errOut); err != nil {
				return err
			}
			a.logger.Debug("session started", "session", sh.store.ID())
			return sh.run(contextOrBackground(cmd))
		},
	}

	fields.register(cmd)

	return cmd
}

// shell is the interactive loop over one session store.
type shell struct {
	a      *app
	cfg    *config.Config
	store  *session.Store
	client aiClient
}

func (s *shell) run(ctx context.Context) error {
	out := s.a.out
	fmt.Fprintln(out, bold("Prompt Architect"))
	fmt.Fprintln(out, dim("Type \"help\" for commands, \"quit\" to leave."))

	scanner := bufio.NewScanner(s.a.in)
	for {
		fmt.Fprint(out, info("prompt> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := s.exec(ctx, line)
		if err != nil {
			printErr(out, err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec runs one shell command. It reports true when the shell should exit.
func (s *shell) exec(ctx context.Context, line string) (bool, error) {
	name, rest := splitWord(line)
	out := s.a.out

	switch strings.ToLower(name) {
	case "help", "?":
		fmt.Fprintln(out, shellHelp)

	case "quit", "exit", "q":
		return true, nil

	case "set":
		field, value := splitWord(rest)
		if field == "" {
			return false, fmt.Errorf("usage: set <field> <value>")
		}
		if err := s.store.Set(field, value); err != nil {
			return false, err
		}
		printSuccess(out, "%s = %q", field, value)
		warnUnknown(out, s.a.catalog, s.store.Config())
		return false, s.store.Err()

	case "unset":
		if rest == "" {
			return false, fmt.Errorf("usage: unset <field>")
		}
		if err := s.store.Set(rest, ""); err != nil {
			return false, err
		}
		printSuccess(out, "%s cleared", rest)
		return false, s.store.Err()

	case "show":
		s.printSettings()

	case "prompt", "p":
		snap := s.store.Snapshot()
		if snap.IsEditing {
			fmt.Fprintln(out, dim("(edited)"))
		}
		fmt.Fprintln(out, snap.CurrentPrompt())

	case "style":
		style, err := prompt.ParseStyle(rest)
		if err != nil {
			return false, err
		}
		s.store.SetStyle(style)
		printSuccess(out, "Style set to %s", style)

	case "optimize":
		before := s.store.Config().Objective
		if !s.store.OptimizeObjective() {
			printWarning(out, "Set an objective first")
			return false, nil
		}
		after := s.store.Config().Objective
		printOptimizeSummary(out, optimize.Measure(before, after))
		printInfo(out, "Objective", after)

	case "revert":
		if !s.store.RevertObjectiveOptimization() {
			printWarning(out, "Nothing to revert")
			return false, nil
		}
		printSuccess(out, "Objective restored: %s", s.store.Config().Objective)

	case "edit":
		edited, err := editText(s.a, s.store.CurrentPrompt())
		if err != nil {
			return false, err
		}
		s.store.UpdateEditedPrompt(edited)
		printSuccess(out, "Prompt updated")

	case "discard":
		s.store.ResetToGenerated()
		printSuccess(out, "Showing the generated prompt")

	case "reset":
		s.store.Reset()
		printSuccess(out, "Settings restored to defaults")

	case "improve":
		client, err := s.aiClient()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, dim("Improving prompt..."))
		improved, err := s.store.Improve(ctx, client, s.cfg.Improve.TimeoutDuration())
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, improved)

	case "suggest":
		return false, s.suggest(ctx)

	case "copy":
		if err := export.Copy(s.a.clipboard, s.store.CurrentPrompt()); err != nil {
			return false, err
		}
		printSuccess(out, "Copied to clipboard")

	case "export":
		format, path := splitWord(rest)
		if format == "" {
			format = string(export.FormatJSON)
		}
		written, err := exportPrompt(s.a, s.cfg, s.store, s.store.CurrentPrompt(), format, path)
		if err != nil {
			return false, err
		}
		printSuccess(out, "Exported to %s", written)

	case "stats":
		printStats(out, export.Measure(s.store.CurrentPrompt()))

	case "open":
		engine, err := browser.OpenEngine(s.a.opener, s.a.catalog, s.store.Config().AIEngine)
		if err != nil {
			return false, err
		}
		printSuccess(out, "Opened %s", engine.Name)

	case "options":
		if rest == "" {
			printOptionSummary(s.a)
			return false, nil
		}
		return false, printOptions(s.a, rest, s.store.Config().Theme)

	default:
		return false, fmt.Errorf("unknown command %q, type \"help\" for a list", name)
	}

	return false, nil
}

func (s *shell) printSettings() {
	snap := s.store.Snapshot()
	cfg := snap.Config
	out := s.a.out

	fmt.Fprintln(out, bold("Settings"))
	printInfo(out, "Theme", orDash(cfg.Theme))
	printInfo(out, "Role", orDash(cfg.Role))
	printInfo(out, "Objective", orDash(cfg.Objective))
	printInfo(out, "Tone", cfg.Tone)
	printInfo(out, "Format", cfg.Format)
	printInfo(out, "Detail", fmt.Sprintf("%d/%d", cfg.DetailLevel, prompt.MaxDetailLevel))
	printInfo(out, "Language", cfg.Language)
	printInfo(out, "Instructions", orDash(cfg.AdditionalInstructions))
	printInfo(out, "Engine", cfg.AIEngine)
	printInfo(out, "Style", snap.Style.String())
	if snap.IsObjectiveOptimized {
		printInfo(out, "Original objective", snap.OriginalObjective)
	}
	if snap.Error != "" {
		printWarning(out, "%s", snap.Error)
	}
}

func (s *shell) suggest(ctx context.Context) error {
	cfg := s.store.Config()
	if cfg.Theme == "" && cfg.Objective == "" {
		return fmt.Errorf("set a theme or an objective first")
	}

	client, err := s.aiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Improve.TimeoutDuration())
	defer cancel()

	suggestions, err := client.Suggest(ctx, cfg.Theme, cfg.Objective)
	if err != nil {
		return err
	}
	for i, sug := range suggestions {
		fmt.Fprintf(s.a.out, "%s %s\n", info(fmt.Sprintf("%d.", i+1)), sug)
	}
	return nil
}

// aiClient creates the AI client on first use so the shell works without a key.
func (s *shell) aiClient() (aiClient, error) {
	if s.client != nil {
		return s.client, nil
	}
	client, err := s.a.newAIClient(s.cfg, s.a.logger)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

// splitWord splits off the first whitespace-separated word.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
