package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/skyline/internal/cmd"
	"github.com/gravitrone/skyline/internal/store"
	"github.com/gravitrone/skyline/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skyline",
		Short: "Skyline - property showcase in your terminal",
		Long:  "Skyline: browse projects, the gallery and the blog, send an enquiry and track it.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTUI(c.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.SeedCmd())
	root.AddCommand(cmd.EnquireCmd())
	root.AddCommand(cmd.TrackCmd())
	root.AddCommand(cmd.ThemeCmd())
	return root
}

func runTUI(ctx context.Context) error {
	env, err := cmd.Open(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	watcher, err := store.NewWatcher(env.Store.Path(), env.Store.Bus(), env.Logger)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("watch store: %w", err)
	}
	defer watcher.Stop()

	app := ui.NewApp(env.Repo, env.Store.Bus(), env.Config, env.Logger)
	env.Logger.Info("starting tui", zap.String("store", env.Config.StorePath))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if m, ok := final.(ui.App); ok {
		m.Close()
	} else {
		app.Close()
	}
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
