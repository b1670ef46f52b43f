package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file",
		Long: `Writes a config file with every default filled in, ready to edit.

The file lives at ~/.config/promptarchitect/config.yaml unless --config is given.
Put GROQ_API_KEY in a .env file next to it to enable the improve command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(a, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config without asking")

	return cmd
}

func runInit(a *app, force bool) error {
	paths := a.paths()

	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		fmt.Fprintln(a.out, "Prompt Architect is already configured.")
		fmt.Fprintf(a.out, "Config file: %s\n\n", paths.ConfigFile)

		if !promptYesNo(a.in, a.out, "Do you want to overwrite it with defaults?") {
			return nil
		}
		fmt.Fprintln(a.out)
	}

	cfg := config.NewDefaultConfig()
	if err := config.SaveTo(cfg, paths.ConfigFile); err != nil {
		return err
	}

	printSuccess(a.out, "Created %s", paths.ConfigFile)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "To enable AI improvement, add your key to:")
	fmt.Fprintln(a.out, "  "+info(paths.EnvFile))
	fmt.Fprintln(a.out, "  "+dim("GROQ_API_KEY=<your-api-key>"))
	return nil
}

// promptYesNo asks a yes/no question, defaulting to no.
func promptYesNo(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
