/*
Copyright © 2026 volfade authors
*/

// Package status renders the default sink's volume for the status command.
package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/volume"
)

// Output formats.
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatPercent  = "percent"
)

// barWidth is the width of the volume bar in detailed output.
const barWidth = 30

// StatusOptions holds parameters for the status command.
type StatusOptions struct {
	Format string // "detailed", "compact", "percent"
}

// StatusClient defines what status needs from the sound server and the cache.
type StatusClient interface {
	DefaultSink() (sink.Sink, error)
	Volume(index uint32) (volume.Volume, error)
	Muted(index uint32) (bool, error)
	// PreviousVolume returns the saved pre-mute volume and whether one exists.
	PreviousVolume() (volume.Volume, bool)
	CachePath() string
}

// Snapshot is the state shown by status.
type Snapshot struct {
	Sink        sink.Sink
	Volume      volume.Volume
	Muted       bool
	Previous    volume.Volume
	HasPrevious bool
	CachePath   string
}

// Collect reads a Snapshot of the default sink.
func Collect(client StatusClient) (Snapshot, error) {
	s, err := client.DefaultSink()
	if err != nil {
		return Snapshot{}, err
	}
	v, err := client.Volume(s.Index)
	if err != nil {
		return Snapshot{}, err
	}
	muted, err := client.Muted(s.Index)
	if err != nil {
		return Snapshot{}, err
	}
	prev, ok := client.PreviousVolume()
	return Snapshot{
		Sink:        s,
		Volume:      v,
		Muted:       muted,
		Previous:    prev,
		HasPrevious: ok,
		CachePath:   client.CachePath(),
	}, nil
}

// RunStatus collects a snapshot and formats it.
func RunStatus(client StatusClient, opts StatusOptions) (string, error) {
	snap, err := Collect(client)
	if err != nil {
		return "", err
	}
	switch opts.Format {
	case "", FormatDetailed:
		return formatDetailed(snap), nil
	case FormatCompact:
		return formatCompact(snap), nil
	case FormatPercent:
		return formatPercent(snap), nil
	default:
		return "", fmt.Errorf("unknown format: %s", opts.Format)
	}
}

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	valueStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// bar renders v as a fraction of unity; boosted volumes fill the bar.
func bar(v volume.Volume) string {
	fraction := math.Min(float64(v)/float64(volume.Norm), 1)
	p := progress.New(progress.WithSolidFill("4"), progress.WithWidth(barWidth), progress.WithoutPercentage())
	return p.ViewAs(fraction)
}

func formatDetailed(s Snapshot) string {
	state := valueStyle.Render("no")
	if s.Muted {
		state = mutedStyle.Render("yes")
	}
	previous := "none"
	if s.HasPrevious {
		previous = s.Previous.String()
	}

	lines := []string{
		titleStyle.Render(s.Sink.Name),
		row("Volume", bar(s.Volume)+" "+valueStyle.Render(s.Volume.String())),
		row("Muted", state),
		row("Previous", previous),
	}
	if s.CachePath != "" {
		lines = append(lines, row("Cache", s.CachePath))
	}
	return strings.Join(lines, "\n")
}

// formatCompact returns a one-line form for status bars.
func formatCompact(s Snapshot) string {
	if s.Muted || s.Volume.IsMuted() {
		return "🔇 muted"
	}
	return "🔊 " + s.Volume.String()
}

func formatPercent(s Snapshot) string {
	if s.Muted {
		return "0"
	}
	return fmt.Sprintf("%d", int(math.Round(s.Volume.Percent())))
}
