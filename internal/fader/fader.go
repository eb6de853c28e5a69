// Package fader moves a sink's volume gradually: a fixed number of equal
// relative steps with a fixed pause after each one.
package fader

import (
	"errors"
	"fmt"
	"time"

	"github.com/volfade/volfade/internal/logging"
	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/volume"
)

const (
	// DefaultInterval is the pause after every step.
	DefaultInterval = 26 * time.Millisecond
	// DefaultSteps is the number of steps in one ramp.
	DefaultSteps = 8

	// DefaultIncreaseStep and DefaultDecreaseStep are per-step percentages of unity.
	DefaultIncreaseStep = 1.375
	DefaultDecreaseStep = 1.7
)

var (
	// ErrInvalidStep is returned for non-positive percentages or step counts.
	ErrInvalidStep = errors.New("step percentage and step count must be positive")

	// ErrStalled is returned when a whole ramp leaves the volume unchanged
	// while a mute or unmute still has distance to cover.
	ErrStalled = errors.New("volume did not change during fade")
)

// Store is the previous-volume slot used by Mute and Unmute.
type Store interface {
	Save(v volume.Volume) error
	Query() volume.Volume
}

// Fader runs volume ramps against a sink.Device.
type Fader struct {
	device   sink.Device
	store    Store
	interval time.Duration
	steps    int
	sleep    func(time.Duration)
	log      logging.Logger
}

// Option configures a Fader.
type Option func(*Fader)

// WithInterval sets the pause after each step.
func WithInterval(d time.Duration) Option {
	return func(f *Fader) {
		if d >= 0 {
			f.interval = d
		}
	}
}

// WithSteps sets how many steps one ramp takes.
func WithSteps(n int) Option {
	return func(f *Fader) {
		if n > 0 {
			f.steps = n
		}
	}
}

// WithSleep replaces time.Sleep.
func WithSleep(sleep func(time.Duration)) Option {
	return func(f *Fader) {
		if sleep != nil {
			f.sleep = sleep
		}
	}
}

// WithLogger sets the structured logger for step tracing.
func WithLogger(l logging.Logger) Option {
	return func(f *Fader) {
		if l != nil {
			f.log = l
		}
	}
}

// New returns a Fader for device that keeps the pre-mute volume in store.
func New(device sink.Device, store Store, opts ...Option) *Fader {
	f := &Fader{
		device:   device,
		store:    store,
		interval: DefaultInterval,
		steps:    DefaultSteps,
		sleep:    time.Sleep,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Steps returns the number of steps in one ramp.
func (f *Fader) Steps() int {
	return f.steps
}

// Increase clears the mute flag and raises the volume by totalPercent of
// unity over steps equal steps. With a target, the volume is read before
// each step and the ramp stops once it reaches the target.
func (f *Fader) Increase(s sink.Sink, totalPercent float64, steps int, target *volume.Volume) error {
	if err := validate(totalPercent, steps); err != nil {
		return err
	}
	if err := f.device.SetMute(s.Index, false); err != nil {
		return fmt.Errorf("unmute %s: %w", s.Name, err)
	}
	return f.ramp(s, up, totalPercent/float64(steps), steps, target)
}

// Decrease lowers the volume by totalPercent of unity over steps equal
// steps. With a floor, the ramp stops once the volume is at or below it.
func (f *Fader) Decrease(s sink.Sink, totalPercent float64, steps int, floor *volume.Volume) error {
	if err := validate(totalPercent, steps); err != nil {
		return err
	}
	return f.ramp(s, down, totalPercent/float64(steps), steps, floor)
}

// Mute saves the current volume, fades to silence and sets the mute flag.
// A sink already at silence is only flagged; the saved volume is kept.
func (f *Fader) Mute(s sink.Sink, decrementPerStep float64) error {
	if err := validate(decrementPerStep, f.steps); err != nil {
		return err
	}
	current, err := f.read(s)
	if err != nil {
		return err
	}

	if current > volume.Muted {
		if err := f.store.Save(current); err != nil {
			return err
		}
		f.log.Debug("saved previous volume", "sink", s.Name, "volume", uint32(current))

		floor := volume.Muted
		for current > volume.Muted {
			if err := f.Decrease(s, decrementPerStep*float64(f.steps), f.steps, &floor); err != nil {
				return err
			}
			next, err := f.read(s)
			if err != nil {
				return err
			}
			if next >= current {
				return fmt.Errorf("mute %s at %s: %w", s.Name, next, ErrStalled)
			}
			current = next
		}
	}

	if err := f.device.SetMute(s.Index, true); err != nil {
		return fmt.Errorf("mute %s: %w", s.Name, err)
	}
	return nil
}

// Unmute clears the mute flag and fades up to the saved volume, or to
// volume.Default when nothing was saved.
func (f *Fader) Unmute(s sink.Sink, incrementPerStep float64) error {
	if err := validate(incrementPerStep, f.steps); err != nil {
		return err
	}
	target := f.store.Query()

	if err := f.device.SetMute(s.Index, false); err != nil {
		return fmt.Errorf("unmute %s: %w", s.Name, err)
	}
	current, err := f.read(s)
	if err != nil {
		return err
	}
	f.log.Debug("restoring previous volume", "sink", s.Name, "from", uint32(current), "target", uint32(target))

	for current < target {
		if err := f.Increase(s, incrementPerStep*float64(f.steps), f.steps, &target); err != nil {
			return err
		}
		next, err := f.read(s)
		if err != nil {
			return err
		}
		if next <= current {
			return fmt.Errorf("unmute %s at %s: %w", s.Name, next, ErrStalled)
		}
		current = next
	}
	return nil
}

// ToggleMute mutes an audible sink and unmutes a silent one. It returns the
// operation that ran.
func (f *Fader) ToggleMute(s sink.Sink, decrementPerStep, incrementPerStep float64) (Operation, error) {
	current, err := f.read(s)
	if err != nil {
		return ToggleMute, err
	}
	if current > volume.Muted {
		return Mute, f.Mute(s, decrementPerStep)
	}
	return Unmute, f.Unmute(s, incrementPerStep)
}

type direction int

const (
	down direction = iota
	up
)

func (d direction) String() string {
	if d == up {
		return "up"
	}
	return "down"
}

// ramp applies steps adjustments of stepPercent each, pausing after each
// one. A non-nil bound is checked before every step.
func (f *Fader) ramp(s sink.Sink, dir direction, stepPercent float64, steps int, bound *volume.Volume) error {
	for i := 0; i < steps; i++ {
		if bound != nil {
			current, err := f.read(s)
			if err != nil {
				return err
			}
			if (dir == up && current >= *bound) || (dir == down && current <= *bound) {
				f.log.Debug("fade reached bound", "sink", s.Name, "direction", dir.String(), "step", i, "volume", uint32(current))
				return nil
			}
		}

		var err error
		if dir == up {
			err = f.device.IncreaseByPercent(s.Index, stepPercent)
		} else {
			err = f.device.DecreaseByPercent(s.Index, stepPercent)
		}
		if err != nil {
			return fmt.Errorf("fade %s step %d/%d on %s: %w", dir, i+1, steps, s.Name, err)
		}
		f.log.Debug("fade step", "sink", s.Name, "direction", dir.String(), "step", i+1, "percent", stepPercent)
		f.sleep(f.interval)
	}
	return nil
}

func (f *Fader) read(s sink.Sink) (volume.Volume, error) {
	v, err := f.device.Volume(s.Index)
	if err != nil {
		return volume.Muted, fmt.Errorf("read volume of %s: %w", s.Name, err)
	}
	return v, nil
}

func validate(percent float64, steps int) error {
	if !(percent > 0) || steps <= 0 {
		return fmt.Errorf("%w: %g%% over %d steps", ErrInvalidStep, percent, steps)
	}
	return nil
}
