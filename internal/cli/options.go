package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/catalog"
)

var optionKinds = []string{"themes", "roles", "tones", "formats", "languages", "engines"}

func newOptionsCmd(a *app) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:       "options [themes|roles|tones|formats|languages|engines]",
		Short:     "List the catalog of selectable values",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: optionKinds,
		Example: `  promptarchitect options
  promptarchitect options tones
  promptarchitect options roles --theme "Programación"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				printOptionSummary(a)
				return nil
			}
			return printOptions(a, args[0], theme)
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "", "Theme whose roles to list")

	return cmd
}

func printOptionSummary(a *app) {
	c := a.catalog
	fmt.Fprintln(a.out, bold("Catalog"))
	printInfo(a.out, "Themes", fmt.Sprint(len(c.Themes)))
	printInfo(a.out, "Tones", fmt.Sprint(len(c.Tones)))
	printInfo(a.out, "Formats", fmt.Sprint(len(c.Formats)))
	printInfo(a.out, "Languages", fmt.Sprint(len(c.Languages)))
	printInfo(a.out, "Engines", fmt.Sprint(len(c.Engines)))
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Run %s to list one of: %s\n", info("promptarchitect options <kind>"), strings.Join(optionKinds, ", "))
}

func printOptions(a *app, kind, theme string) error {
	c := a.catalog
	switch strings.ToLower(kind) {
	case "themes":
		printList(a, c.ThemeNames())
	case "roles":
		if theme == "" {
			for _, t := range c.Themes {
				fmt.Fprintln(a.out, bold(t.Name))
				for _, r := range t.Roles {
					fmt.Fprintf(a.out, "  %s\n", r)
				}
			}
			return nil
		}
		if !c.HasTheme(theme) {
			return fmt.Errorf("unknown theme %q", theme)
		}
		printList(a, c.RolesFor(theme))
	case "tones":
		printList(a, c.Tones)
	case "formats":
		printList(a, c.Formats)
	case "languages":
		printList(a, c.Languages)
	case "engines":
		printEngines(a, c.Engines)
	default:
		return fmt.Errorf("unknown option kind %q (use %s)", kind, strings.Join(optionKinds, ", "))
	}
	return nil
}

func printList(a *app, values []string) {
	for _, v := range values {
		fmt.Fprintln(a.out, v)
	}
}

func printEngines(a *app, engines []catalog.Engine) {
	for _, e := range engines {
		fmt.Fprintf(a.out, "%s  %s %s\n", info(fmt.Sprintf("%-10s", e.ID)), e.Name, dim(e.Description))
	}
}
