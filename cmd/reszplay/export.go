package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reszplay/internal/analytics"
	"github.com/alexisbeaulieu97/reszplay/internal/clipboard"
	"github.com/alexisbeaulieu97/reszplay/internal/events"
	"github.com/alexisbeaulieu97/reszplay/internal/export"
	"github.com/alexisbeaulieu97/reszplay/internal/ports"
)

type exportOptions struct {
	ConfigPath string
	Copy       bool
	Highlight  bool
	Width      int
}

// clipboardWriter is swapped in tests; nil means the system clipboard.
var clipboardWriter clipboard.Writer

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the resz snippet for a playground document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Playground document to export (defaults when omitted)")
	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Also copy the snippet to the clipboard")
	cmd.Flags().BoolVar(&opts.Highlight, "highlight", false, "Syntax highlight the snippet")
	cmd.Flags().IntVar(&opts.Width, "width", 100, "Wrap width used with --highlight")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	ctx, log := app.CommandContext(cmd, "export")

	cfg, err := loadPlaygroundConfig(ctx, log, opts.ConfigPath)
	if err != nil {
		log.Error(ctx, "loading playground document failed", "error", err, "path", opts.ConfigPath)
		return err
	}

	snippet := export.Serialize(cfg)
	_ = app.Publisher.Publish(ctx, events.New(ports.EventExportOpened, map[string]interface{}{
		"panel_kind": string(cfg.PanelKind),
		"source":     "cli",
	}))

	out := snippet
	if opts.Highlight {
		out = export.HighlightOrPlain(snippet, opts.Width)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if !opts.Copy {
		return nil
	}

	copier := clipboard.NewCopier(clipboardWriter, log)
	if err := copier.CopyErr(ctx, snippet); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "snippet not copied: %v\n", err)
		return nil
	}
	analytics.NewBeacon(app.Publisher, "cli").CopyCode(ctx)
	fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	return nil
}
