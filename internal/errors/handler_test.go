package errors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volfade/volfade/internal/cache"
	"github.com/volfade/volfade/internal/fader"
	"github.com/volfade/volfade/internal/sink"
)

// recordingOutput is a ColorOutput that keeps every message by kind.
type recordingOutput struct {
	mu       sync.Mutex
	errors   []string
	warnings []string
	infos    []string
	success  []string
}

func (r *recordingOutput) Error(msgs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msgs...)
}

func (r *recordingOutput) Warning(msgs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msgs...)
}

func (r *recordingOutput) Info(msgs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, msgs...)
}

func (r *recordingOutput) Success(msgs ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success = append(r.success, msgs...)
}

func TestCLIHandlerRoutesByKind(t *testing.T) {
	out := &recordingOutput{}
	handler := NewCLIHandler(out)

	handler.Error("boom")
	handler.Warning("careful")
	handler.Info("Crescendo")
	handler.Success("done")

	assert.Equal(t, []string{"boom"}, out.errors)
	assert.Equal(t, []string{"careful"}, out.warnings)
	assert.Equal(t, []string{"Crescendo"}, out.infos)
	assert.Equal(t, []string{"done"}, out.success)
}

func TestCLIHandlerErrorWhenAlreadyHandling(t *testing.T) {
	out := &recordingOutput{}
	handler := NewCLIHandler(out)

	handler.inHandling = true
	handler.Error("error while already handling")

	assert.Equal(t, []string{"error while already handling"}, out.errors)
	assert.True(t, handler.inHandling, "nested call must not reset the outer flag")
}

func TestCLIHandlerConcurrentErrors(t *testing.T) {
	out := &recordingOutput{}
	handler := NewCLIHandler(out)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handler.Error(fmt.Sprintf("error %d", i))
		}(i)
	}
	wg.Wait()

	assert.Len(t, out.errors, 20)
	assert.False(t, handler.inHandling)
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server", fmt.Errorf("pactl get-default-sink: %w", sink.ErrServerUnavailable), "pactl info"},
		{"no sink", sink.ErrNoDefaultSink, "set-default-sink"},
		{"no home", cache.ErrNoHome, "XDG_CACHE_HOME"},
		{"invalid step", fmt.Errorf("%w: 0%% over 8 steps", fader.ErrInvalidStep), "greater than zero"},
		{"other", fmt.Errorf("disk full"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == "" {
				assert.Empty(t, Hint(tt.err))
				return
			}
			assert.Contains(t, Hint(tt.err), tt.want)
		})
	}
}

func TestReport(t *testing.T) {
	out := &recordingOutput{}
	handler := NewCLIHandler(out)

	Report(handler, nil)
	require.Empty(t, out.errors)

	Report(handler, fmt.Errorf("read volume: %w", sink.ErrServerUnavailable))
	require.Len(t, out.errors, 1)
	assert.Contains(t, out.errors[0], "sound server unavailable")
	require.Len(t, out.infos, 1)

	Report(handler, fmt.Errorf("rename cache: permission denied"))
	assert.Len(t, out.errors, 2)
	assert.Len(t, out.infos, 1)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(sink.ErrNoDefaultSink))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("anything")))
}
