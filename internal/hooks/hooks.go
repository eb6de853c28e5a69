// Package hooks runs user scripts before and after each volume operation.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/config"
)

// Failure modes for hooks_failure_mode.
const (
	FailureIgnore = "ignore"
	FailureWarn   = "warn"
	FailureAbort  = "abort"
)

// hookTimeout bounds a single script.
const hookTimeout = 10 * time.Second

// output receives script stdout and stderr.
var output io.Writer = os.Stderr

// Point names a hook directory such as "pre-mute" or "post-toggle-mute".
func Point(stage, operation string) string {
	return stage + "-" + operation
}

// Enabled reports whether hooks_enabled is set.
func Enabled() bool {
	return config.GetBool("hooks_enabled", true)
}

// getHooksDir returns the configured hooks directory.
func getHooksDir() string {
	if dir := config.Get("hooks_dir", ""); dir != "" {
		return dir
	}
	return filepath.Join(config.Get("config_dir", ""), "hooks")
}

// getFailureMode returns the failure mode (abort, warn, ignore).
func getFailureMode() string {
	switch mode := config.Get("hooks_failure_mode", FailureWarn); mode {
	case FailureIgnore, FailureAbort:
		return mode
	default:
		return FailureWarn
	}
}

// scripts lists the executable files in dir sorted by name.
func scripts(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.Mode()&0111 == 0 {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Run executes every script for hookPoint with envVars ("KEY=value") added
// to the environment. Only the abort failure mode returns an error.
func Run(hookPoint string, envVars ...string) error {
	if !Enabled() {
		return nil
	}
	dir := filepath.Join(getHooksDir(), hookPoint)
	names := scripts(dir)
	if len(names) == 0 {
		return nil
	}

	failureMode := getFailureMode()
	env := append(os.Environ(), "HOOK_POINT="+hookPoint, "VOLFADE_HOOKS_FAILURE_MODE="+failureMode)
	env = append(env, envVars...)

	colors.Debug(fmt.Sprintf("Running %s hooks (%d script(s))", hookPoint, len(names)))
	for _, name := range names {
		if err := runScript(filepath.Join(dir, name), name, env); err != nil {
			switch failureMode {
			case FailureAbort:
				return err
			case FailureWarn:
				colors.Warning(err.Error())
			}
		}
	}
	return nil
}

func runScript(path, name string, env []string) error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		_, _ = output.Write(out)
	}
	duration := time.Since(start).Seconds()
	if err != nil {
		colors.StructuredError("hooks", "run", "failed", err, name, map[string]interface{}{"duration_seconds": duration})
		if ctx.Err() != nil {
			return fmt.Errorf("hook %s timed out after %s", name, hookTimeout)
		}
		return fmt.Errorf("hook %s failed: %w", name, err)
	}
	colors.StructuredDebug("hooks", "run", "completed", nil, name, map[string]interface{}{"duration_seconds": duration})
	return nil
}
