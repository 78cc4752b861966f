package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	play := &playOptions{}

	cmd := &cobra.Command{
		Use:           "reszplay",
		Short:         "reszplay is an interactive playground for resz resizable panels",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand launches the playground
			return playCmdRunner(cmd, flags, play)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	bindPlayFlags(cmd, play)

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPresetsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
