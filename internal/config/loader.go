package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}

// Default returns the embedded default configuration.
func Default() AppConfig {
	var cfg AppConfig
	if err := yaml.Unmarshal(defaultArenaYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default: %v", err))
	}
	return cfg
}

// overrides are the ARENA_* environment variables. Unset variables stay
// nil and leave the file value alone.
type overrides struct {
	LogLevel       *string        `env:"LOG_LEVEL"`
	LogFile        *string        `env:"LOG_FILE"`
	AudioEnabled   *bool          `env:"AUDIO_ENABLED"`
	MasterVolume   *float64       `env:"MASTER_VOLUME"`
	MusicVolume    *float64       `env:"MUSIC_VOLUME"`
	SFXVolume      *float64       `env:"SFX_VOLUME"`
	Muted          *bool          `env:"MUTED"`
	MusicDelay     *time.Duration `env:"MUSIC_DELAY"`
	ShowAudioPanel *bool          `env:"SHOW_AUDIO_PANEL"`
	SSHAddress     *string        `env:"SSH_ADDRESS"`
	SSHHostKey     *string        `env:"SSH_HOST_KEY"`
	SSHIdleTimeout *time.Duration `env:"SSH_IDLE_TIMEOUT"`
}

const envPrefix = "ARENA_"

// Load reads the configuration.
// Search order: customPath -> ~/.arena/arena.yaml -> ./configs/arena.yaml -> embedded default.
// ARENA_* environment variables are applied on top.
func Load(customPath string) (AppConfig, error) {
	return load(customPath, nil)
}

// load is Load with an explicit environment; nil means the process
// environment.
func load(customPath string, environ map[string]string) (AppConfig, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
	} else {
		for _, path := range []string{userConfigPath("arena.yaml"), filepath.Join("configs", "arena.yaml")} {
			if path == "" {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("config: parse %s: %w", path, err)
			}
			break
		}
	}

	var o overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	o.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (o overrides) apply(cfg *AppConfig) {
	set(&cfg.Log.Level, o.LogLevel)
	set(&cfg.Log.File, o.LogFile)
	set(&cfg.Audio.Enabled, o.AudioEnabled)
	set(&cfg.Audio.MasterVolume, o.MasterVolume)
	set(&cfg.Audio.MusicVolume, o.MusicVolume)
	set(&cfg.Audio.SFXVolume, o.SFXVolume)
	set(&cfg.Audio.Muted, o.Muted)
	set(&cfg.Arena.MusicDelay, o.MusicDelay)
	set(&cfg.Arena.ShowAudioPanel, o.ShowAudioPanel)
	set(&cfg.SSH.Address, o.SSHAddress)
	set(&cfg.SSH.HostKey, o.SSHHostKey)
	set(&cfg.SSH.IdleTimeout, o.SSHIdleTimeout)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// userConfigPath returns the path in the user's arena directory, or ""
// when the home directory is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", name)
}
