/*
Copyright © 2026 volfade authors
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/volfade/volfade/cmd"
	"github.com/volfade/volfade/internal/status"
)

type statusClient interface {
	status.StatusClient
	StatusFormat() string
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var format string
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the default sink volume",
		Long: `Show the default sink, its volume and mute flag, and the volume that the
next unmute will restore.

Formats:
  detailed  multi-line view with a volume bar (default)
  compact   one line, e.g. "🔊 42%"
  percent   the rounded percentage only, 0 when muted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = client.StatusFormat()
			}
			out, err := status.RunStatus(client, status.StatusOptions{Format: format})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	statusCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: detailed, compact or percent")
	return statusCmd
}

// statusCmd represents the status command
var statusCmd = NewStatusCmd(defaultApp)

func init() {
	cmd.RootCmd.AddCommand(statusCmd)
}
