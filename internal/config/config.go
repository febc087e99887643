package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FileName is the catalog file searched for from the working directory up.
const FileName = ".launchbox"

const (
	defaultFrameInterval = 50 * time.Millisecond
	defaultStartTimeout  = 2 * time.Second
	defaultPollInterval  = 5 * time.Millisecond

	keyFrameInterval = "frame_interval"
	keyStartTimeout  = "start_timeout"
	keyPollInterval  = "poll_interval"
	keyLogFile       = "log_file"

	envPrefix = "LAUNCHBOX"
)

// ErrNotFound means no .launchbox exists between the start dir and the root.
var ErrNotFound = errors.New("no " + FileName + " configuration found")

// Config aggregates launcher tunables.
type Config struct {
	// Path is the .launchbox file; Dir is its directory and the working
	// directory of every launched process.
	Path string
	Dir  string

	FrameInterval time.Duration
	StartTimeout  time.Duration
	PollInterval  time.Duration
	LogFile       string
}

// Find walks from start towards the filesystem root and returns the first
// .launchbox it sees.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load reads the [launchbox] settings from the file at path and applies
// LAUNCHBOX_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		FrameInterval: defaultFrameInterval,
		StartTimeout:  defaultStartTimeout,
		PollInterval:  defaultPollInterval,
	}
	if path == "" {
		applyEnvOverrides(&cfg)
		return cfg, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return cfg, err
	}
	cfg.Path = abs
	cfg.Dir = filepath.Dir(abs)

	v := viper.New()
	v.SetConfigFile(abs)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", abs, err)
	}
	section := v.Sub("launchbox")
	if section != nil {
		if err := applyFile(section, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", abs, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyFile(v *viper.Viper, cfg *Config) error {
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{keyFrameInterval, &cfg.FrameInterval},
		{keyStartTimeout, &cfg.StartTimeout},
		{keyPollInterval, &cfg.PollInterval},
	}
	for _, d := range durations {
		raw := strings.TrimSpace(v.GetString(d.key))
		if raw == "" {
			continue
		}
		dur, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.key, err)
		}
		if dur <= 0 {
			return fmt.Errorf("%s must be > 0", d.key)
		}
		*d.dst = dur
	}
	if logFile := strings.TrimSpace(v.GetString(keyLogFile)); logFile != "" {
		cfg.LogFile = logFile
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{keyFrameInterval, &cfg.FrameInterval},
		{keyStartTimeout, &cfg.StartTimeout},
		{keyPollInterval, &cfg.PollInterval},
	}
	for _, d := range durations {
		v := env.GetString(d.key)
		if v == "" {
			continue
		}
		name := envPrefix + "_" + strings.ToUpper(d.key)
		dur, err := time.ParseDuration(v)
		switch {
		case err != nil:
			log.Printf("invalid %s value %q: %v", name, v, err)
		case dur <= 0:
			log.Printf("invalid %s value %q: must be > 0", name, v)
		default:
			*d.dst = dur
		}
	}
	if v := env.GetString(keyLogFile); v != "" {
		cfg.LogFile = v
	}
}
