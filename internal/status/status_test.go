package status

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/volume"
)

type fakeStatusClient struct {
	sink     sink.Sink
	sinkErr  error
	volume   volume.Volume
	muted    bool
	previous *volume.Volume
	path     string
}

func (f *fakeStatusClient) DefaultSink() (sink.Sink, error) { return f.sink, f.sinkErr }

func (f *fakeStatusClient) Volume(index uint32) (volume.Volume, error) { return f.volume, nil }

func (f *fakeStatusClient) Muted(index uint32) (bool, error) { return f.muted, nil }

func (f *fakeStatusClient) PreviousVolume() (volume.Volume, bool) {
	if f.previous == nil {
		return volume.Default, false
	}
	return *f.previous, true
}

func (f *fakeStatusClient) CachePath() string { return f.path }

func newClient() *fakeStatusClient {
	return &fakeStatusClient{
		sink:   sink.Sink{Index: 52, Name: "alsa_output.pci-0000_00_1f.3.analog-stereo"},
		volume: volume.Norm / 2,
		path:   "/home/user/.cache/volfade/previous_volume",
	}
}

func TestRunStatusDetailed(t *testing.T) {
	client := newClient()
	prev := volume.FromPercent(70)
	client.previous = &prev

	out, err := RunStatus(client, StatusOptions{})
	require.NoError(t, err)

	assert.Contains(t, out, "alsa_output.pci-0000_00_1f.3.analog-stereo")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "Muted")
	assert.Contains(t, out, "no")
	assert.Contains(t, out, client.path)
	assert.Len(t, strings.Split(out, "\n"), 5)
}

func TestRunStatusDetailedWithoutPrevious(t *testing.T) {
	client := newClient()
	client.muted = true
	client.path = ""

	out, err := RunStatus(client, StatusOptions{Format: FormatDetailed})
	require.NoError(t, err)
	assert.Contains(t, out, "none")
	assert.Contains(t, out, "yes")
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestRunStatusCompactAndPercent(t *testing.T) {
	tests := []struct {
		name   string
		format string
		volume volume.Volume
		muted  bool
		want   string
	}{
		{"compact audible", FormatCompact, volume.FromPercent(35), false, "🔊 35%"},
		{"compact flagged", FormatCompact, volume.FromPercent(35), true, "🔇 muted"},
		{"compact silent", FormatCompact, volume.Muted, false, "🔇 muted"},
		{"percent", FormatPercent, volume.FromPercent(35), false, "35"},
		{"percent boosted", FormatPercent, volume.FromPercent(120), false, "120"},
		{"percent muted", FormatPercent, volume.FromPercent(35), true, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient()
			client.volume = tt.volume
			client.muted = tt.muted

			out, err := RunStatus(client, StatusOptions{Format: tt.format})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunStatusUnknownFormat(t *testing.T) {
	_, err := RunStatus(newClient(), StatusOptions{Format: "xml"})
	assert.EqualError(t, err, "unknown format: xml")
}

func TestRunStatusDeviceError(t *testing.T) {
	client := newClient()
	client.sinkErr = sink.ErrServerUnavailable

	_, err := RunStatus(client, StatusOptions{})
	assert.True(t, errors.Is(err, sink.ErrServerUnavailable))
}

func TestBarSaturatesAboveUnity(t *testing.T) {
	assert.Equal(t, bar(volume.Norm), bar(volume.FromPercent(150)))
	assert.NotEqual(t, bar(volume.Norm), bar(volume.Norm/2))
}
