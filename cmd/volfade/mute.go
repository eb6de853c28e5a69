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

// NewMuteCmd creates the mute command with explicit dependencies.
func NewMuteCmd(client fadeClient) *cobra.Command {
	if client == nil {
		panic("NewMuteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "mute [decrement-per-step]",
		Short: "Fade to silence and mute",
		Long: `Remember the current volume, fade the default sink down to silence
and set its mute flag.

The argument is the percentage removed per step. A sink that is already
silent is only flagged and the remembered volume is kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, err := parsePercent(args, client.Defaults().MuteStepPercent)
			if err != nil {
				return err
			}
			return runOperation(client, fader.Mute, func(f *fader.Fader, s sink.Sink) (fader.Operation, error) {
				return fader.Mute, f.Mute(s, step)
			})
		},
	}
}

// muteCmd represents the mute command
var muteCmd = NewMuteCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(muteCmd)
}
