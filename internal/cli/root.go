// Package cli implements the promptarchitect command-line interface.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/HartBrook/promptarchitect/internal/browser"
	"github.com/HartBrook/promptarchitect/internal/catalog"
	"github.com/HartBrook/promptarchitect/internal/config"
	"github.com/HartBrook/promptarchitect/internal/export"
	"github.com/HartBrook/promptarchitect/internal/improve"
	"github.com/HartBrook/promptarchitect/internal/session"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
)

// aiClient is what the improve, suggest and interactive commands need from a model.
type aiClient interface {
	session.Improver
	Suggest(ctx context.Context, theme, objective string) ([]string, error)
}

// app carries the collaborators every command shares. Tests swap them out.
type app struct {
	configPath string
	verbose    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger

	catalog   *catalog.Catalog
	clipboard export.Clipboard
	opener    browser.Opener
	editor    func(path string) error
	now       func() time.Time

	newAIClient func(cfg *config.Config, logger *slog.Logger) (aiClient, error)
}

func newApp() *app {
	return &app{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog:   catalog.Default(),
		clipboard: export.SystemClipboard{},
		opener:    browser.New(os.Stdout, os.Stderr),
		editor:    openEditor,
		now:       time.Now,
		newAIClient: func(cfg *config.Config, logger *slog.Logger) (aiClient, error) {
			opts := append(cfg.Improve.ClientOptions(), improve.WithLogger(logger))
			client, err := improve.NewClient(opts...)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptarchitect",
		Short: "Build structured prompts for AI chat assistants",
		Long: `Prompt Architect assembles a theme, role, tone, format, detail level and
objective into a structured Spanish prompt ready to paste into an AI chat.

It can tighten a casual objective with a rule-based optimizer, ask a language
model to improve the finished prompt, and export it as JSON or Markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger()
		},
	}

	rootCmd.SetIn(a.in)
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/promptarchitect/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	// Add subcommands
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newOptimizeCmd(a))
	rootCmd.AddCommand(newImproveCmd(a))
	rootCmd.AddCommand(newSuggestCmd(a))
	rootCmd.AddCommand(newOptionsCmd(a))
	rootCmd.AddCommand(newOpenCmd(a))
	rootCmd.AddCommand(newInteractiveCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.out, "promptarchitect %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printErr(os.Stderr, err)
		return err
	}
	return nil
}

// printErr prints err with its hint if it carries one.
func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", errorIcon, err.Error())
	var hinted interface{ HintText() string }
	if stderrors.As(err, &hinted) {
		if hint := hinted.HintText(); hint != "" {
			fmt.Fprintf(w, "  %s\n", dim(hint))
		}
	}
}

func (a *app) setupLogger() {
	if !a.verbose {
		return
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// paths returns the config paths, honoring --config.
func (a *app) paths() *config.Paths {
	if a.configPath == "" {
		return config.NewPaths()
	}
	paths := config.NewPathsWithOverrides(filepath.Dir(a.configPath))
	paths.ConfigFile = a.configPath
	return paths
}

// loadConfig reads the config file (defaults when absent) and any .env secrets.
func (a *app) loadConfig() (*config.Config, error) {
	paths := a.paths()

	cfg, err := config.LoadOrDefault(paths.ConfigFile)
	if err != nil {
		return nil, err
	}

	loaded, err := config.LoadSecrets(paths)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "path", paths.ConfigFile, "env_files", loaded)

	return cfg, nil
}

// newStore creates a session seeded from cfg.
func (a *app) newStore(cfg *config.Config) *session.Store {
	return session.New(
		session.WithLogger(a.logger),
		session.WithDefaults(cfg.Configuration()),
		session.WithStyle(cfg.Style()),
	)
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: %s\n", dim(label), value)
}
