// Package volume defines the sink volume scalar in sound server raw units.
package volume

import (
	"fmt"
	"math"
)

// Volume is a sink volume in PulseAudio raw units.
type Volume uint32

const (
	// Muted is silence.
	Muted Volume = 0
	// Norm is unity gain (100%).
	Norm Volume = 0x10000
	// Max is the largest volume the server accepts.
	Max Volume = 0x7fffffff
	// Default is used when no previous volume has been cached (25% of Norm).
	Default Volume = Norm / 4
)

// FromPercent converts a percentage of Norm to a Volume, clamped to [Muted, Max].
func FromPercent(percent float64) Volume {
	return fromRaw(math.Round(percent / 100 * float64(Norm)))
}

// Delta returns the raw step size for a percentage of Norm.
func Delta(percent float64) Volume {
	return FromPercent(percent)
}

func fromRaw(raw float64) Volume {
	switch {
	case math.IsNaN(raw) || raw <= 0:
		return Muted
	case raw >= float64(Max):
		return Max
	default:
		return Volume(raw)
	}
}

// Percent returns v as a percentage of Norm.
func (v Volume) Percent() float64 {
	return float64(v) / float64(Norm) * 100
}

// IsMuted reports whether v is at or below silence.
func (v Volume) IsMuted() bool {
	return v <= Muted
}

// Add returns v+d, saturating at Max.
func (v Volume) Add(d Volume) Volume {
	if v >= Max || d > Max-v {
		return Max
	}
	return v + d
}

// Sub returns v-d, saturating at Muted.
func (v Volume) Sub(d Volume) Volume {
	if d >= v {
		return Muted
	}
	return v - d
}

// Average returns the rounded mean of the given channel volumes.
func Average(channels []Volume) Volume {
	if len(channels) == 0 {
		return Muted
	}
	var sum uint64
	for _, c := range channels {
		sum += uint64(c)
	}
	n := uint64(len(channels))
	return Volume((sum + n/2) / n)
}

func (v Volume) String() string {
	return fmt.Sprintf("%.0f%%", math.Round(v.Percent()))
}
