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

// NewIncreaseCmd creates the increase command with explicit dependencies.
func NewIncreaseCmd(client fadeClient) *cobra.Command {
	if client == nil {
		panic("NewIncreaseCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:     "increase [percent]",
		Aliases: []string{"inc"},
		Short:   "Fade the volume up",
		Long: `Fade the default sink's volume up by percent of 100% volume.

The change is split into equal steps with a short pause after each one.
An increase also clears the mute flag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parsePercent(args, client.Defaults().IncreasePercent)
			if err != nil {
				return err
			}
			return runOperation(client, fader.Increase, func(f *fader.Fader, s sink.Sink) (fader.Operation, error) {
				return fader.Increase, f.Increase(s, total, f.Steps(), nil)
			})
		},
	}
}

// increaseCmd represents the increase command
var increaseCmd = NewIncreaseCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(increaseCmd)
}
