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

// NewDecreaseCmd creates the decrease command with explicit dependencies.
func NewDecreaseCmd(client fadeClient) *cobra.Command {
	if client == nil {
		panic("NewDecreaseCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:     "decrease [percent]",
		Aliases: []string{"dec"},
		Short:   "Fade the volume down",
		Long: `Fade the default sink's volume down by percent of 100% volume.

All steps are always sent; the sound server stops at silence.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parsePercent(args, client.Defaults().DecreasePercent)
			if err != nil {
				return err
			}
			return runOperation(client, fader.Decrease, func(f *fader.Fader, s sink.Sink) (fader.Operation, error) {
				return fader.Decrease, f.Decrease(s, total, f.Steps(), nil)
			})
		},
	}
}

// decreaseCmd represents the decrease command
var decreaseCmd = NewDecreaseCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(decreaseCmd)
}
