package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/sink"
)

func TestRunSuccess(t *testing.T) {
	_, stderr := captureColors(t)

	code := run([]string{"status"}, func() error { return nil })
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRunReportsErrorWithHint(t *testing.T) {
	stdout, stderr := captureColors(t)

	code := run([]string{"mute"}, func() error { return sink.ErrNoDefaultSink })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stderr.String(), "no default playback sink")
	assert.Contains(t, stdout.String(), "pactl set-default-sink")
}

func TestRunStructuredLogsInDebug(t *testing.T) {
	_, stderr := captureColors(t)
	colors.SetDebug(true)
	defer colors.SetDebug(false)

	code := run([]string{"increase"}, func() error { return errors.New("pactl failed") })
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), `"component":"startup"`)
	assert.Contains(t, stderr.String(), `"status":"failed"`)
}
