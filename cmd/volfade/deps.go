package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/volfade/volfade/cmd"
	"github.com/volfade/volfade/internal/cache"
	"github.com/volfade/volfade/internal/colors"
	"github.com/volfade/volfade/internal/config"
	"github.com/volfade/volfade/internal/fader"
	"github.com/volfade/volfade/internal/hooks"
	"github.com/volfade/volfade/internal/logging"
	"github.com/volfade/volfade/internal/notify"
	"github.com/volfade/volfade/internal/pulse"
	"github.com/volfade/volfade/internal/sink"
	"github.com/volfade/volfade/internal/version"
	"github.com/volfade/volfade/internal/volume"
)

// app wires configuration, the pactl client, the cache and the fader. It is
// built once by setup, before any command runs.
type app struct {
	once sync.Once

	pulse    *pulse.Client
	cache    *cache.Cache
	cacheErr error
	fader    *fader.Fader
	defaults Defaults

	notifyEnabled   bool
	notifyTimeoutMs int
}

var defaultApp = &app{}

func init() {
	cmd.RootCmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		defaultApp.setup(c.Name())
	}
}

// setup loads configuration, starts file logging and builds the clients.
func (a *app) setup(command string) {
	a.once.Do(func() {
		config.Load()
		colors.SetDebug(colors.DebugEnabled() || config.GetBool("debug", false))
		colors.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(command); err != nil {
			colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
		}

		a.pulse = pulse.NewClient(
			pulse.WithBinary(config.Get("pactl_path", pulse.DefaultBinary)),
			pulse.WithTimeout(config.GetDuration("command_timeout", pulse.DefaultTimeout)),
		)

		paths := cache.PathsFromEnv()
		paths.Override = config.Get("cache_dir", "")
		a.cache, a.cacheErr = cache.New(paths)

		if a.cacheErr == nil {
			a.fader = fader.New(a.pulse, a.cache,
				fader.WithSteps(config.GetInt("steps", fader.DefaultSteps)),
				fader.WithInterval(config.GetDuration("step_interval", fader.DefaultInterval)),
				fader.WithLogger(logging.GetGlobal().With("component", "fader")),
			)
		}

		a.defaults = Defaults{
			IncreasePercent:   config.GetFloat("increase_percent", fader.DefaultIncreaseStep*fader.DefaultSteps),
			DecreasePercent:   config.GetFloat("decrease_percent", fader.DefaultDecreaseStep*fader.DefaultSteps),
			MuteStepPercent:   config.GetFloat("mute_step_percent", fader.DefaultDecreaseStep),
			UnmuteStepPercent: config.GetFloat("unmute_step_percent", fader.DefaultIncreaseStep),
		}
		a.notifyEnabled = config.GetBool("notify_enabled", false)
		a.notifyTimeoutMs = config.GetInt("notify_timeout_ms", 1500)
	})
}

func (a *app) DefaultSink() (sink.Sink, error) {
	return a.pulse.DefaultSink()
}

func (a *app) Volume(index uint32) (volume.Volume, error) {
	return a.pulse.Volume(index)
}

func (a *app) Muted(index uint32) (bool, error) {
	return a.pulse.Muted(index)
}

func (a *app) Fader() (*fader.Fader, error) {
	if a.cacheErr != nil {
		return nil, a.cacheErr
	}
	return a.fader, nil
}

func (a *app) Defaults() Defaults {
	return a.defaults
}

func (a *app) PreviousVolume() (volume.Volume, bool) {
	if a.cache == nil || !a.cache.Exists() {
		return volume.Default, false
	}
	return a.cache.Query(), true
}

func (a *app) CachePath() string {
	if a.cache == nil {
		return ""
	}
	return a.cache.Path()
}

func (a *app) StatusFormat() string {
	return config.Get("status_format", "detailed")
}

func (a *app) RunHook(name string, envVars ...string) error {
	return hooks.Run(name, envVars...)
}

// Notify shows the resulting volume when notify_enabled is set. Failures
// are reported as warnings.
func (a *app) Notify(op fader.Operation, v volume.Volume) {
	if !a.notifyEnabled {
		return
	}
	n, err := notify.Connect(a.notifyTimeoutMs)
	if err != nil {
		colors.Warning(fmt.Sprintf("notification skipped: %v", err))
		return
	}
	defer n.Close()
	if err := n.Volume(op.Banner(), v, op == fader.Mute); err != nil {
		colors.Warning(fmt.Sprintf("notification skipped: %v", err))
	}
}

func (a *app) Version() string {
	return version.String()
}
