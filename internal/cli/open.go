package cli

import (
	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/browser"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open [engine]",
		Short: "Open an AI chat engine in the browser",
		Long: `Opens the web interface of an AI engine from the catalog. Without an
argument the default engine from the config file is used.`,
		Example: `  promptarchitect open
  promptarchitect open claude`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			id := cfg.Defaults.AIEngine
			if len(args) == 1 {
				id = args[0]
			}

			engine, err := browser.OpenEngine(a.opener, a.catalog, id)
			if err != nil {
				return err
			}
			printSuccess(a.errOut, "Opened %s (%s)", engine.Name, engine.URL)
			return nil
		},
	}
}
