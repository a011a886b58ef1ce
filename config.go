package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	defaultTimeoutMs  = 2000
	defaultVolumeStep = 0.05
	defaultClamp      = ClampCorrected
)

// Config holds all application configuration
type Config struct {
	Player string `mapstructure:"player"`
	Bus    struct {
		TimeoutMs int `mapstructure:"timeout_ms"`
	} `mapstructure:"bus"`
	Output struct {
		ShowStatus bool `mapstructure:"show_status"`
	} `mapstructure:"output"`
	UI struct {
		Color string `mapstructure:"color"`
	} `mapstructure:"ui"`
	Volume struct {
		Step  float64 `mapstructure:"step"`
		Clamp string  `mapstructure:"clamp"`
	} `mapstructure:"volume"`
	Log struct {
		Verbose bool `mapstructure:"verbose"`
	} `mapstructure:"log"`
}

// BusTimeout is the per-call deadline handed to the media controller
func (c Config) BusTimeout() time.Duration {
	return time.Duration(c.Bus.TimeoutMs) * time.Millisecond
}

// DispatchOptions derives the dispatcher settings from the config
func (c Config) DispatchOptions() DispatchOptions {
	return DispatchOptions{
		ShowStatus: c.Output.ShowStatus,
		VolumeStep: c.Volume.Step,
		Clamp:      ClampPolicy(c.Volume.Clamp),
	}
}

func defaultConfig() Config {
	var cfg Config
	cfg.Bus.TimeoutMs = defaultTimeoutMs
	cfg.Output.ShowStatus = true
	cfg.Volume.Step = defaultVolumeStep
	cfg.Volume.Clamp = string(defaultClamp)
	return cfg
}

// configError describes one invalid setting
type configError struct {
	field   string
	message string
}

func (e configError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.message)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("player", "")
	v.SetDefault("bus.timeout_ms", defaultTimeoutMs)
	v.SetDefault("output.show_status", true)
	v.SetDefault("ui.color", "")
	v.SetDefault("volume.step", defaultVolumeStep)
	v.SetDefault("volume.clamp", string(defaultClamp))
	v.SetDefault("log.verbose", false)
}

// loadConfig merges defaults, PLAYINGCTL_* environment variables and
// command-line flags (highest precedence). There is no config file.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, []error) {
	setDefaults(v)

	// Environment variable support with PLAYINGCTL_ prefix
	v.SetEnvPrefix("PLAYINGCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"player":         "player",
			"bus.timeout_ms": "timeout-ms",
			"ui.color":       "color",
			"volume.step":    "step",
			"volume.clamp":   "clamp",
			"log.verbose":    "verbose",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
		// --no-status is the inverse of output.show_status
		if noStatus, err := flags.GetBool("no-status"); err == nil && flags.Changed("no-status") {
			v.Set("output.show_status", !noStatus)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaultConfig(), []error{configError{field: "config", message: err.Error()}}
	}

	errs := validateConfig(&cfg)
	applyDefaultsForInvalidFields(&cfg, errs)
	return cfg, errs
}

// validateConfig returns one configError per invalid field
func validateConfig(cfg *Config) []error {
	var errs []error

	if cfg.Bus.TimeoutMs < 10 || cfg.Bus.TimeoutMs > 60000 {
		errs = append(errs, configError{
			field:   "bus.timeout_ms",
			message: fmt.Sprintf("must be between 10 and 60000 (got %d)", cfg.Bus.TimeoutMs),
		})
	}
	if cfg.UI.Color != "" && !isValidColor(cfg.UI.Color) {
		errs = append(errs, configError{
			field:   "ui.color",
			message: fmt.Sprintf("invalid color format '%s'", cfg.UI.Color),
		})
	}
	if cfg.Volume.Step <= 0 || cfg.Volume.Step > 1 {
		errs = append(errs, configError{
			field:   "volume.step",
			message: fmt.Sprintf("must be in (0, 1] (got %g)", cfg.Volume.Step),
		})
	}
	switch ClampPolicy(cfg.Volume.Clamp) {
	case ClampCorrected, ClampLegacy:
	default:
		errs = append(errs, configError{
			field:   "volume.clamp",
			message: fmt.Sprintf("must be 'corrected' or 'legacy' (got '%s')", cfg.Volume.Clamp),
		})
	}

	return errs
}

// applyDefaultsForInvalidFields resets every field named in errs
func applyDefaultsForInvalidFields(cfg *Config, errs []error) {
	for _, err := range errs {
		ce, ok := err.(configError)
		if !ok {
			continue
		}
		switch ce.field {
		case "bus.timeout_ms":
			cfg.Bus.TimeoutMs = defaultTimeoutMs
		case "ui.color":
			cfg.UI.Color = ""
		case "volume.step":
			cfg.Volume.Step = defaultVolumeStep
		case "volume.clamp":
			cfg.Volume.Clamp = string(defaultClamp)
		}
	}
}

func printConfigWarnings(logger *zap.Logger, errs []error) {
	for _, err := range errs {
		logger.Warn("Invalid configuration, using default", zap.Error(err))
	}
}

// isValidColor accepts an ANSI code (0-255) or a #RGB / #RRGGBB hex color
func isValidColor(color string) bool {
	if color == "" {
		return false
	}
	if color[0] == '#' {
		hex := color[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		for _, c := range hex {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
				return false
			}
		}
		return true
	}
	if len(color) > 3 {
		return false
	}
	n := 0
	for _, c := range color {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n <= 255
}
