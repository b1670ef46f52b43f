package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/optimize"
)

type optimizeOptions struct {
	context string
	trace   bool
}

func newOptimizeCmd(a *app) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize [text...]",
		Short: "Rewrite an objective into a tighter instruction",
		Long: `Runs the rule-based objective optimizer and prints the result.

The optimizer strips filler, replaces vague verbs with specific ones, applies
theme-specific rewrites, removes redundancy and fixes capitalization and
punctuation. It never calls a language model.

With no arguments the text is read from stdin.`,
		Example: `  promptarchitect optimize "por favor quiero que me ayudes a crear una función para validar emails"
  promptarchitect optimize --context Programación "hacer una función que valide emails"
  echo "mejorar el diseño de mi web" | promptarchitect optimize -c Diseño --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				read, err := readAll(a.in)
				if err != nil {
					return err
				}
				text = read
			}
			return runOptimize(a, text, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.context, "context", "c", "", "Theme used for contextual rewrites")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Show the text after each stage")

	return cmd
}

func runOptimize(a *app, text string, opts *optimizeOptions) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to optimize")
	}

	if opts.trace {
		for _, step := range optimize.Trace(text, opts.context) {
			fmt.Fprintf(a.errOut, "  %s %s\n", dim(fmt.Sprintf("%-14s", step.Stage)), step.Output)
		}
	}

	result := optimize.Optimize(text, opts.context)
	fmt.Fprintln(a.out, result)
	printOptimizeSummary(a.errOut, optimize.Measure(text, result))
	return nil
}

// printOptimizeSummary reports how many words the optimizer removed.
func printOptimizeSummary(w io.Writer, s optimize.WordStats) {
	change := fmt.Sprintf("%.1f%% reduction", s.PercentReduction())
	if s.Saved() < 0 {
		change = warning(fmt.Sprintf("%.1f%% longer", -s.PercentReduction()))
	} else if s.Saved() > 0 {
		change = success(change)
	}
	printSuccess(w, "Objective optimized: %d → %d words (%s)", s.Before, s.After, change)
}

func readAll(r io.Reader) (string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.Join(lines, "\n"), nil
}
