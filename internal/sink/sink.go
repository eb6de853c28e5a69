// Package sink defines the sound server capability the fader needs.
package sink

import (
	"errors"
	"fmt"

	"github.com/volfade/volfade/internal/volume"
)

var (
	// ErrServerUnavailable is returned when the sound server cannot be reached.
	ErrServerUnavailable = errors.New("sound server unavailable")

	// ErrNoDefaultSink is returned when the server has no default playback sink.
	ErrNoDefaultSink = errors.New("no default playback sink")
)

// Sink identifies a playback device.
type Sink struct {
	Index uint32
	Name  string
}

func (s Sink) String() string {
	return fmt.Sprintf("%s (#%d)", s.Name, s.Index)
}

// Device is the sound server capability: resolve the default sink, read its
// volume, nudge it by a percentage of unity, and set its mute flag.
type Device interface {
	// DefaultSink resolves the current default playback sink.
	DefaultSink() (Sink, error)

	// Volume returns the sink's volume averaged over its channels.
	Volume(index uint32) (volume.Volume, error)

	// IncreaseByPercent raises the volume by percent of unity.
	IncreaseByPercent(index uint32, percent float64) error

	// DecreaseByPercent lowers the volume by percent of unity, clamped at silence.
	DecreaseByPercent(index uint32, percent float64) error

	// SetMute sets or clears the sink's mute flag.
	SetMute(index uint32, muted bool) error
}
