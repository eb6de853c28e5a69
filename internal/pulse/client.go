// Package pulse implements sink.Device on top of pactl, which talks to both
// PulseAudio and pipewire-pulse.
package pulse

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/volume"
)

// channelVolumeRe matches "32768 /  50%" in get-sink-volume output.
var channelVolumeRe = regexp.MustCompile(`(\d+)\s*/\s*\d+%`)

// ErrUnparsableOutput is returned when pactl prints something unexpected.
var ErrUnparsableOutput = errors.New("unexpected pactl output")

// Client implements sink.Device using the pactl command line tool.
type Client struct {
	binary  string
	timeout time.Duration
	runner  Runner
}

var _ sink.Device = (*Client)(nil)

// NewClient creates a new Client with the given options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		binary:  DefaultBinary,
		timeout: DefaultTimeout,
		runner:  execRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// run executes pactl with args and maps connection failures to
// sink.ErrServerUnavailable.
func (c *Client) run(args ...string) (string, error) {
	start := time.Now()
	command := ""
	for _, a := range args {
		if a != "--" {
			command = a
			break
		}
	}
	colors.StructuredDebug("pulse", "run", "started", nil, command, map[string]interface{}{"args": args})

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	stdout, stderr, err := c.runner.Run(ctx, c.binary, args...)
	duration := time.Since(start).Seconds()
	if err != nil {
		colors.StructuredError("pulse", "run", "failed", err, command, map[string]interface{}{"stderr": strings.TrimSpace(stderr), "duration_seconds": duration})
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return stdout, fmt.Errorf("%w: pactl %s timed out after %s", sink.ErrServerUnavailable, command, c.timeout)
		}
		return stdout, classify(command, stderr, err)
	}
	colors.StructuredDebug("pulse", "run", "completed", nil, command, map[string]interface{}{"duration_seconds": duration})
	return stdout, nil
}

func classify(command, stderr string, err error) error {
	msg := strings.TrimSpace(stderr)
	var execErr *exec.Error
	switch {
	case errors.As(err, &execErr):
		return fmt.Errorf("%w: %v", sink.ErrServerUnavailable, err)
	case strings.Contains(msg, "Connection failure"), strings.Contains(msg, "Connection refused"):
		return fmt.Errorf("%w: %s", sink.ErrServerUnavailable, msg)
	case msg != "":
		return fmt.Errorf("pactl %s failed: %s: %w", command, msg, err)
	default:
		return fmt.Errorf("pactl %s failed: %w", command, err)
	}
}

// DefaultSink resolves the default sink name and looks up its index.
func (c *Client) DefaultSink() (sink.Sink, error) {
	name, err := c.defaultSinkName()
	if err != nil {
		return sink.Sink{}, err
	}
	if name == "" || name == "@DEFAULT_SINK@" {
		return sink.Sink{}, sink.ErrNoDefaultSink
	}

	out, err := c.run("list", "short", "sinks")
	if err != nil {
		return sink.Sink{}, err
	}
	sinks, err := parseShortSinks(out)
	if err != nil {
		return sink.Sink{}, err
	}
	for _, s := range sinks {
		if s.Name == name {
			return s, nil
		}
	}
	return sink.Sink{}, fmt.Errorf("%w: %s is not listed", sink.ErrNoDefaultSink, name)
}

// defaultSinkName uses get-default-sink and falls back to "pactl info" on
// servers too old to know that subcommand.
func (c *Client) defaultSinkName() (string, error) {
	out, err := c.run("get-default-sink")
	if err == nil {
		return strings.TrimSpace(out), nil
	}
	if errors.Is(err, sink.ErrServerUnavailable) {
		return "", err
	}
	colors.Debug(fmt.Sprintf("get-default-sink failed (%v), trying pactl info", err))

	out, err = c.run("info")
	if err != nil {
		return "", err
	}
	return parseInfoDefaultSink(out), nil
}

// Volume returns the channel-averaged volume of the sink.
func (c *Client) Volume(index uint32) (volume.Volume, error) {
	out, err := c.run("get-sink-volume", strconv.FormatUint(uint64(index), 10))
	if err != nil {
		return volume.Muted, err
	}
	return parseSinkVolume(out)
}

// IncreaseByPercent raises the sink volume by percent of unity.
func (c *Client) IncreaseByPercent(index uint32, percent float64) error {
	return c.adjust(index, "+", percent)
}

// DecreaseByPercent lowers the sink volume by percent of unity.
func (c *Client) DecreaseByPercent(index uint32, percent float64) error {
	return c.adjust(index, "-", percent)
}

// adjust sends a relative change in raw units. The server clamps at silence
// and at its maximum.
func (c *Client) adjust(index uint32, sign string, percent float64) error {
	delta := volume.Delta(percent)
	if delta == 0 {
		return nil
	}
	_, err := c.run("--", "set-sink-volume", strconv.FormatUint(uint64(index), 10), sign+strconv.FormatUint(uint64(delta), 10))
	return err
}

// SetMute sets or clears the sink's mute flag.
func (c *Client) SetMute(index uint32, muted bool) error {
	flag := "0"
	if muted {
		flag = "1"
	}
	_, err := c.run("set-sink-mute", strconv.FormatUint(uint64(index), 10), flag)
	return err
}

// Muted reports the sink's mute flag.
func (c *Client) Muted(index uint32) (bool, error) {
	out, err := c.run("get-sink-mute", strconv.FormatUint(uint64(index), 10))
	if err != nil {
		return false, err
	}
	return parseSinkMute(out)
}

// parseShortSinks parses "pactl list short sinks":
// "<index>\t<name>\t<driver>\t<spec>\t<state>".
func parseShortSinks(out string) ([]sink.Sink, error) {
	var sinks []sink.Sink
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		idx, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: sink index %q", ErrUnparsableOutput, fields[0])
		}
		sinks = append(sinks, sink.Sink{Index: uint32(idx), Name: fields[1]})
	}
	return sinks, scanner.Err()
}

// parseInfoDefaultSink extracts the "Default Sink:" line from "pactl info".
func parseInfoDefaultSink(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "Default Sink:"); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

// parseSinkVolume averages every channel's raw value in get-sink-volume output.
func parseSinkVolume(out string) (volume.Volume, error) {
	matches := channelVolumeRe.FindAllStringSubmatch(out, -1)
	if len(matches) == 0 {
		return volume.Muted, fmt.Errorf("%w: %q", ErrUnparsableOutput, strings.TrimSpace(out))
	}
	channels := make([]volume.Volume, 0, len(matches))
	for _, m := range matches {
		raw, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return volume.Muted, fmt.Errorf("%w: channel volume %q", ErrUnparsableOutput, m[1])
		}
		channels = append(channels, volume.Volume(raw))
	}
	return volume.Average(channels), nil
}

// parseSinkMute parses "Mute: yes" / "Mute: no".
func parseSinkMute(out string) (bool, error) {
	value, ok := strings.CutPrefix(strings.TrimSpace(out), "Mute:")
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnparsableOutput, strings.TrimSpace(out))
	}
	return strings.TrimSpace(value) == "yes", nil
}
