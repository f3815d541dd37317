// Giteadm is a terminal administration console for Gitea instances.
//
// It browses and manages repositories, users and organizations over the
// Gitea REST API from a full-screen terminal interface. Credentials come
// from the config file, the environment, or an existing tea CLI login;
// when none are found the console prompts for them on first run.
//
// Usage:
//
//	giteadm [flags]
//
// See 'giteadm --help' for available flags.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"giteadm/internal/config"
	"giteadm/internal/controller"
	"giteadm/internal/gitea"
	"giteadm/internal/logging"
	"giteadm/internal/telemetry"
	"giteadm/internal/ui"
	"giteadm/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	flagURL   string
	flagToken string
	flagTheme string
)

var rootCmd = &cobra.Command{
	Use:   "giteadm",
	Short: "Gitea Admin Console",
	Long: `A full-screen terminal console for administering a Gitea instance.

Browse repositories, users and organizations, create and delete
repositories, add users, and run bulk branch and milestone operations
across many repositories at once.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&flagURL, "url", "", "Gitea instance URL (overrides config)")
	rootCmd.Flags().StringVar(&flagToken, "token", "", "Gitea API token (overrides config)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme for this session")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("giteadm %s\n", version.Full())
	},
}

func run(ctx context.Context) error {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logging.Sync()

	tp, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tracing disabled: %v\n", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagURL != "" {
		cfg.URL = config.NormalizeURL(flagURL)
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}

	theme, err := ui.LookupTheme(cfg.Theme)
	if err != nil {
		theme, _ = ui.LookupTheme("dark")
	}

	prog := tea.NewProgram(ui.NewComposer(theme), tea.WithAltScreen())

	// The controllers run on their own goroutine and drive the screen
	// through the blocking session facade.
	go func() {
		sess := ui.NewSession(prog)

		cfg, err := controller.Bootstrap(sess, cfg)
		if err != nil {
			prog.Quit()
			return
		}

		client := gitea.NewClient(cfg.URL, cfg.Token, gitea.WithTracer(tp.Tracer()))
		app := controller.NewApp(sess, client, func(name string) error {
			cfg.Theme = name
			return config.Save(cfg)
		})
		app.Run(ctx)
		prog.Quit()
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
