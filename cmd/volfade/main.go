package main

import (
	"os"

	"github.com/volfade/volfade/cmd"
	"github.com/volfade/volfade/internal/colors"
	volerrors "github.com/volfade/volfade/internal/errors"
	"github.com/volfade/volfade/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run executes the command tree and returns the process exit code.
func run(args []string, execute func() error) int {
	colors.StructuredInfo("startup", "main", "started", nil, "", map[string]interface{}{"args": args})
	defer func() { _ = logging.ShutdownGlobal() }()

	if err := execute(); err != nil {
		colors.StructuredError("startup", "main", "failed", err, "", nil)
		volerrors.Report(volerrors.NewDefaultCLIHandler(), err)
		return volerrors.ExitCode(err)
	}
	colors.StructuredInfo("startup", "main", "completed", nil, "", nil)
	return 0
}
