package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/reszplay/internal/clipboard"
	"github.com/alexisbeaulieu97/reszplay/internal/preview"
	"github.com/alexisbeaulieu97/reszplay/internal/tui"
)

type playOptions struct {
	ConfigPath string
	NoPreview  bool
	FPS        int
}

var playCmdRunner = runPlay

func bindPlayFlags(cmd *cobra.Command, opts *playOptions) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Start from a playground document")
	cmd.Flags().BoolVar(&opts.NoPreview, "no-preview", false, "Use the mock preview instead of the live one")
	cmd.Flags().IntVar(&opts.FPS, "fps", 60, "Animation frame rate of the live preview")
}

func newPlayCmd(flags *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Launch the interactive playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playCmdRunner(cmd, flags, opts)
		},
	}
	bindPlayFlags(cmd, opts)

	return cmd
}

func runPlay(cmd *cobra.Command, flags *rootFlags, opts *playOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("play", "starting the playground", fmt.Errorf("stdout is not a terminal"),
			"Run reszplay from an interactive terminal, or use 'reszplay export' in scripts.")
	}

	// the screen belongs to the TUI, so logs only go to --log-file
	app, err := newAppContext(flags, nil)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	ctx, log := app.CommandContext(cmd, "play")
	cfg, err := loadPlaygroundConfig(ctx, log, opts.ConfigPath)
	if err != nil {
		return err
	}

	disabled := opts.NoPreview || previewDisabledByEnv()
	log.Info(ctx, "launching playground", "preview_disabled", disabled, "panel_kind", string(cfg.PanelKind))

	model := tui.NewModel(ctx, tui.Options{
		Initial:   &cfg,
		Loader:    preview.DefaultLoader(preview.LoaderOptions{Disabled: disabled, FPS: opts.FPS}),
		Logger:    log,
		Publisher: app.Publisher,
		Copier:    clipboard.NewCopier(nil, log),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(ctx, "playground execution failed", "error", err)
		return fmt.Errorf("failed to run playground: %w", err)
	}

	log.Info(ctx, "playground closed")
	return nil
}
