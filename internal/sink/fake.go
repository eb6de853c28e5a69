package sink

import (
	"github.com/volfade/volfade/internal/volume"
)

// Fake is an in-memory Device that applies deltas the way the sound server
// does: increases saturate at Ceiling, decreases clamp at silence.
type Fake struct {
	Sink    Sink
	Current volume.Volume
	Muted   bool
	// Ceiling caps increases; zero means volume.Max.
	Ceiling volume.Volume

	// History records the volume after every successful adjustment.
	History []volume.Volume
	// MuteCalls records every SetMute argument in order.
	MuteCalls []bool
	// Reads counts Volume calls.
	Reads int

	// FailAdjustAfter makes adjustment number N+1 fail with Err when > 0.
	FailAdjustAfter int
	// Err is returned by failing calls and, when FailAdjustAfter is zero,
	// by DefaultSink.
	Err error
}

var _ Device = (*Fake)(nil)

// NewFake returns a Fake default sink at the given volume.
func NewFake(v volume.Volume) *Fake {
	return &Fake{
		Sink:    Sink{Index: 0, Name: "fake_output.analog-stereo"},
		Current: v,
	}
}

func (f *Fake) DefaultSink() (Sink, error) {
	if f.Err != nil && f.FailAdjustAfter == 0 {
		return Sink{}, f.Err
	}
	return f.Sink, nil
}

func (f *Fake) Volume(index uint32) (volume.Volume, error) {
	f.Reads++
	return f.Current, nil
}

func (f *Fake) IncreaseByPercent(index uint32, percent float64) error {
	if err := f.adjust(); err != nil {
		return err
	}
	ceiling := f.Ceiling
	if ceiling == 0 {
		ceiling = volume.Max
	}
	next := f.Current.Add(volume.Delta(percent))
	if next > ceiling {
		next = ceiling
	}
	if next > f.Current {
		f.Current = next
	}
	f.History = append(f.History, f.Current)
	return nil
}

func (f *Fake) DecreaseByPercent(index uint32, percent float64) error {
	if err := f.adjust(); err != nil {
		return err
	}
	f.Current = f.Current.Sub(volume.Delta(percent))
	f.History = append(f.History, f.Current)
	return nil
}

func (f *Fake) SetMute(index uint32, muted bool) error {
	f.Muted = muted
	f.MuteCalls = append(f.MuteCalls, muted)
	return nil
}

func (f *Fake) adjust() error {
	if f.FailAdjustAfter > 0 && len(f.History) >= f.FailAdjustAfter {
		return f.Err
	}
	return nil
}
