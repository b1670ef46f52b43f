package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/config"
	"github.com/HartBrook/promptarchitect/internal/improve"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the active configuration",
		Long: `Displays the config file location, session defaults, AI client settings
and whether an API key is available.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(a)
		},
	}
}

func runInfo(a *app) error {
	paths := a.paths()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	out := a.out
	fmt.Fprintln(out, bold("Config"))
	if _, err := os.Stat(paths.ConfigFile); err == nil {
		printInfo(out, "File", paths.ConfigFile)
	} else {
		printInfo(out, "File", paths.ConfigFile+" "+dim("(not found, using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, bold("Defaults"))
	printInfo(out, "Tone", cfg.Defaults.Tone)
	printInfo(out, "Format", cfg.Defaults.Format)
	printInfo(out, "Detail level", fmt.Sprint(cfg.Defaults.DetailLevel))
	printInfo(out, "Language", cfg.Defaults.Language)
	printInfo(out, "Engine", cfg.Defaults.AIEngine)
	printInfo(out, "Style", cfg.Defaults.Style)
	fmt.Fprintln(out)

	fmt.Fprintln(out, bold("Improve"))
	printInfo(out, "Base URL", cfg.Improve.BaseURL)
	printInfo(out, "Model", cfg.Improve.Model)
	printInfo(out, "Timeout", cfg.Improve.TimeoutDuration().String())
	printInfo(out, "Requests/minute", fmt.Sprint(cfg.Improve.RequestsPerMinute))
	printInfo(out, "API key", apiKeyStatus())
	fmt.Fprintln(out)

	fmt.Fprintln(out, bold("Export"))
	printInfo(out, "Directory", config.ExportDir(cfg.Export.Dir))

	return nil
}

func apiKeyStatus() string {
	key := improve.APIKeyFromEnv()
	if key == "" {
		return warning("not set") + dim(fmt.Sprintf(" (set %s)", improve.APIKeyEnv))
	}
	return success("set") + dim(" ("+maskKey(key)+")")
}

// maskKey keeps the last four characters of key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
