/*
Copyright © 2026 volfade authors
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/volfade/volfade/internal/version"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "volfade",
	Short: "Smooth volume fades for PulseAudio.",
	Long: `Smooth volume fades for PulseAudio.

Every change is applied as a short series of small steps instead of a jump,
and mute fades to silence while remembering the level to come back to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are returned to main for reporting.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		PrintHelp(cmd)
	})
}

// outputWriter overrides the help destination in tests.
var outputWriter io.Writer

// commandOrder is the order commands are listed in help.
var commandOrder = []string{
	"increase",
	"decrease",
	"mute",
	"unmute",
	"toggle-mute",
	"status",
	"help",
	"version",
}

// PrintHelp writes the top-level help text.
func PrintHelp(cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		use := found.Use
		if len(found.Aliases) > 0 {
			use = fmt.Sprintf("%s (%s)", use, strings.Join(found.Aliases, ", "))
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-32s %s", use, found.Short))
	}

	helpText := fmt.Sprintf(`volfade v%s

%s

USAGE:
    volfade [COMMAND] [ARGS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version

Percentages are of 100%% volume. Settings live in
$XDG_CONFIG_HOME/volfade/config.toml and VOLFADE_<KEY> variables.
`, cmd.Version, cmd.Short, strings.Join(cmdLines, "\n"))

	w := outputWriter
	if w == nil {
		w = cmd.OutOrStdout()
	}
	fmt.Fprint(w, helpText)
}
