/*
Copyright © 2026 volfade authors
*/
package main

import (
	"github.com/spf13/cobra"

	"github.com/volfade/volfade/cmd"
	"github.com/volfade/volfade/internal/fader"
	"github.com/volfade/volfade/internal/sink"
)

// NewUnmuteCmd creates the unmute command with explicit dependencies.
func NewUnmuteCmd(client fadeClient) *cobra.Command {
	if client == nil {
		panic("NewUnmuteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "unmute [increment-per-step]",
		Short: "Unmute and fade back up",
		Long: `Clear the mute flag and fade the default sink up to the volume saved by
the last mute, or to 25% when nothing was saved.

The argument is the percentage added per step.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parsePercent(args, client.Defaults().UnmuteStepPercent)
			if err != nil {
				return err
			}
			return runOperation(client, fader.Unmute, func(f *fader.Fader, s sink.Sink) (fader.Operation, error) {
				return fader.Unmute, f.Unmute(s, step)
			})
		},
	}
}

// unmuteCmd represents the unmute command
var unmuteCmd = NewUnmuteCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(unmuteCmd)
}
