package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/fader"
	"github.com/volfade/volfade/internal/hooks"
	"github.com/volfade/volfade/internal/logging"
	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/volume"
)

// Defaults are the configured percentages used when no argument is given.
type Defaults struct {
	IncreasePercent   float64
	DecreasePercent   float64
	MuteStepPercent   float64
	UnmuteStepPercent float64
}

// fadeClient is what the fade commands need from the application.
type fadeClient interface {
	DefaultSink() (sink.Sink, error)
	Volume(index uint32) (volume.Volume, error)
	Fader() (*fader.Fader, error)
	Defaults() Defaults
	RunHook(name string, envVars ...string) error
	Notify(op fader.Operation, v volume.Volume)
}

// fadeFunc performs one operation and reports which one actually ran.
type fadeFunc func(f *fader.Fader, s sink.Sink) (fader.Operation, error)

// runOperation resolves the default sink, prints the banner and runs fade
// between the pre and post hooks.
func runOperation(client fadeClient, op fader.Operation, fade fadeFunc) error {
	f, err := client.Fader()
	if err != nil {
		return err
	}
	s, err := client.DefaultSink()
	if err != nil {
		return err
	}
	before, err := client.Volume(s.Index)
	if err != nil {
		return err
	}
	colors.Info(op.Banner())

	if err := client.RunHook(hooks.Point("pre", op.String()), hookEnv(op, s, before, nil)...); err != nil {
		return err
	}

	ran, err := fade(f, s)
	if err != nil {
		return err
	}
	after, err := client.Volume(s.Index)
	if err != nil {
		return err
	}
	logging.GetGlobal().Info("operation completed",
		"operation", ran.String(),
		"sink", s.Name,
		"before", uint32(before),
		"after", uint32(after))

	if err := client.RunHook(hooks.Point("post", op.String()), hookEnv(ran, s, before, &after)...); err != nil {
		return err
	}
	client.Notify(ran, after)
	return nil
}

func hookEnv(op fader.Operation, s sink.Sink, before volume.Volume, after *volume.Volume) []string {
	env := []string{
		"VOLFADE_OPERATION=" + op.String(),
		"VOLFADE_SINK=" + s.Name,
		"VOLFADE_VOLUME_BEFORE=" + strconv.FormatUint(uint64(before), 10),
	}
	if after != nil {
		env = append(env, "VOLFADE_VOLUME_AFTER="+strconv.FormatUint(uint64(*after), 10))
	}
	return env
}

// parsePercent reads the optional positional percentage. "5" and "5%" are
// accepted; the value must be greater than zero.
func parsePercent(args []string, def float64) (float64, error) {
	if len(args) == 0 {
		return def, nil
	}
	raw := strings.TrimSuffix(strings.TrimSpace(args[0]), "%")
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q", args[0])
	}
	if !(p > 0) {
		return 0, fmt.Errorf("%w: got %s", fader.ErrInvalidStep, args[0])
	}
	return p, nil
}
