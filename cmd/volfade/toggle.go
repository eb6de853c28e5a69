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

// NewToggleMuteCmd creates the toggle-mute command with explicit dependencies.
func NewToggleMuteCmd(client fadeClient) *cobra.Command {
	if client == nil {
		panic("NewToggleMuteCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:     "toggle-mute",
		Aliases: []string{"toggle"},
		Short:   "Mute an audible sink, unmute a silent one",
		Long: `Mute the default sink with a fade when it is audible, otherwise unmute it
and fade back to the remembered volume.

The decision is made on the volume level alone, not on the mute flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := client.Defaults()
			return runOperation(client, fader.ToggleMute, func(f *fader.Fader, s sink.Sink) (fader.Operation, error) {
				return f.ToggleMute(s, d.MuteStepPercent, d.UnmuteStepPercent)
			})
		},
	}
}

// toggleMuteCmd represents the toggle-mute command
var toggleMuteCmd = NewToggleMuteCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(toggleMuteCmd)
}
