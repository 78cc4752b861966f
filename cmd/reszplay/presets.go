package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
)

type presetsOptions struct {
	jsonOutput bool
}

type presetRow struct {
	Name     string  `json:"name"`
	Tension  float64 `json:"tension"`
	Friction float64 `json:"friction"`
	Mass     float64 `json:"mass"`
	Default  bool    `json:"default"`
}

func newPresetsCmd() *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the spring presets and panel kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func presetRows() []presetRow {
	defaults := playground.Default()
	rows := make([]presetRow, 0, len(playground.SpringSelections))
	for _, sel := range playground.SpringSelections {
		params, ok := playground.PresetParams(sel)
		if !ok {
			continue
		}
		rows = append(rows, presetRow{
			Name:     string(sel),
			Tension:  params.Tension,
			Friction: params.Friction,
			Mass:     params.Mass,
			Default:  sel == defaults.SpringSelection,
		})
	}
	return rows
}

func runPresets(cmd *cobra.Command, opts *presetsOptions) error {
	rows := presetRows()

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PRESET\tTENSION\tFRICTION\tMASS")
	for _, r := range rows {
		name := r.Name
		if r.Default {
			name += " (default)"
		}
		fmt.Fprintf(writer, "%s\t%g\t%g\t%g\n", name, r.Tension, r.Friction, r.Mass)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	writer = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PANEL\tLABEL\tHANDLES")
	for _, kind := range playground.PanelKinds {
		handles := ""
		for i, d := range kind.DefaultHandles() {
			if i > 0 {
				handles += ","
			}
			handles += string(d)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", kind, kind.Label(), handles)
	}
	return writer.Flush()
}
