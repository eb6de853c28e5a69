package hooks

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/config"
)

// setup points hooks_dir at a temp directory and returns it.
func setup(t *testing.T, env map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	hooksDir := filepath.Join(tmpDir, "hooks")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	t.Setenv("VOLFADE_CONFIG_PATH", "")
	t.Setenv("VOLFADE_HOOKS_DIR", hooksDir)
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()

	var buf bytes.Buffer
	prev := output
	output = &buf
	t.Cleanup(func() { output = prev })
	return hooksDir
}

func writeScript(t *testing.T, dir, point, name, body string, mode os.FileMode) {
	t.Helper()
	hookDir := filepath.Join(dir, point)
	require.NoError(t, os.MkdirAll(hookDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(hookDir, name), []byte("#!/bin/sh\n"+body+"\n"), mode))
}

func TestPoint(t *testing.T) {
	assert.Equal(t, "pre-mute", Point("pre", "mute"))
	assert.Equal(t, "post-toggle-mute", Point("post", "toggle-mute"))
}

func TestRunWithoutHooksDirectory(t *testing.T) {
	setup(t, nil)
	require.NoError(t, Run("pre-increase"))
}

func TestRunPassesEnvironment(t *testing.T) {
	dir := setup(t, nil)
	outFile := filepath.Join(t.TempDir(), "env.txt")
	writeScript(t, dir, "post-mute", "10-record.sh",
		`echo "$HOOK_POINT $VOLFADE_OPERATION $VOLFADE_SINK $VOLFADE_VOLUME_BEFORE $VOLFADE_VOLUME_AFTER" > `+outFile, 0755)

	err := Run("post-mute",
		"VOLFADE_OPERATION=mute",
		"VOLFADE_SINK=alsa_output.analog-stereo",
		"VOLFADE_VOLUME_BEFORE=32768",
		"VOLFADE_VOLUME_AFTER=0")
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "post-mute mute alsa_output.analog-stereo 32768 0", strings.TrimSpace(string(data)))
}

func TestRunOrderAndSkipsNonExecutable(t *testing.T) {
	dir := setup(t, nil)
	outFile := filepath.Join(t.TempDir(), "order.txt")
	writeScript(t, dir, "pre-unmute", "20-second.sh", "echo second >> "+outFile, 0755)
	writeScript(t, dir, "pre-unmute", "10-first.sh", "echo first >> "+outFile, 0755)
	writeScript(t, dir, "pre-unmute", "15-disabled.sh", "echo disabled >> "+outFile, 0644)

	require.NoError(t, Run("pre-unmute"))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFailureModes(t *testing.T) {
	tests := []struct {
		mode     string
		wantErr  bool
		wantWarn bool
	}{
		{mode: FailureAbort, wantErr: true},
		{mode: FailureWarn, wantWarn: true},
		{mode: FailureIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			dir := setup(t, map[string]string{"VOLFADE_HOOKS_FAILURE_MODE": tt.mode})
			writeScript(t, dir, "pre-decrease", "fail.sh", "exit 3", 0755)

			var stderr bytes.Buffer
			colors.SetOutput(&bytes.Buffer{}, &stderr)
			t.Cleanup(func() { colors.SetOutput(os.Stdout, os.Stderr) })

			err := Run("pre-decrease")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "hook fail.sh failed")
			} else {
				require.NoError(t, err)
			}
			if tt.wantWarn {
				assert.Contains(t, stderr.String(), "hook fail.sh failed")
			} else {
				assert.NotContains(t, stderr.String(), "Warning")
			}
		})
	}
}

func TestAbortStopsLaterScripts(t *testing.T) {
	dir := setup(t, map[string]string{"VOLFADE_HOOKS_FAILURE_MODE": FailureAbort})
	marker := filepath.Join(t.TempDir(), "ran")
	writeScript(t, dir, "pre-mute", "10-fail.sh", "exit 1", 0755)
	writeScript(t, dir, "pre-mute", "20-after.sh", "touch "+marker, 0755)

	require.Error(t, Run("pre-mute"))
	assert.NoFileExists(t, marker)
}

func TestRunDisabled(t *testing.T) {
	dir := setup(t, map[string]string{"VOLFADE_HOOKS_ENABLED": "false", "VOLFADE_HOOKS_FAILURE_MODE": FailureAbort})
	writeScript(t, dir, "pre-mute", "fail.sh", "exit 1", 0755)

	assert.False(t, Enabled())
	require.NoError(t, Run("pre-mute"))
}

func TestScriptOutputIsForwarded(t *testing.T) {
	dir := setup(t, nil)
	var buf bytes.Buffer
	output = &buf
	writeScript(t, dir, "post-increase", "say.sh", "echo louder", 0755)

	require.NoError(t, Run("post-increase"))
	assert.Equal(t, "louder\n", buf.String())
}
