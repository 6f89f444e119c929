// Package config loads the arena configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"time"
)

// AppConfig is the complete arena configuration.
type AppConfig struct {
	Log   LogConfig             `yaml:"log"`
	Audio AudioConfig           `yaml:"audio"`
	Arena ArenaConfig           `yaml:"arena"`
	Games map[string]GameConfig `yaml:"games"`
	SSH   SSHConfig             `yaml:"ssh"`
}

// LogConfig selects the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty discards logs in the TUI
}

// AudioConfig holds the initial audio settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"` // false keeps the output device closed
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// ArenaConfig configures the portal shell.
type ArenaConfig struct {
	MusicDelay     time.Duration `yaml:"music_delay"`
	ShowAudioPanel bool          `yaml:"show_audio_panel"`
}

// GameConfig overrides per-game settings.
type GameConfig struct {
	Tick time.Duration `yaml:"tick"`
}

// SSHConfig configures `arena serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Tick bounds accepted for overrides.
const (
	MinTick = 16 * time.Millisecond
	MaxTick = time.Second
)

// TickFor returns the configured tick for a game, or def when there is no
// override.
func (c AppConfig) TickFor(id string, def time.Duration) time.Duration {
	if g, ok := c.Games[id]; ok && g.Tick > 0 {
		return g.Tick
	}
	return def
}

// Validate clamps volumes into [0, 1] and rejects values that cannot be
// used.
func (c *AppConfig) Validate() error {
	c.Audio.MasterVolume = clamp01(c.Audio.MasterVolume)
	c.Audio.MusicVolume = clamp01(c.Audio.MusicVolume)
	c.Audio.SFXVolume = clamp01(c.Audio.SFXVolume)

	if c.Arena.MusicDelay < 0 {
		return fmt.Errorf("config: arena.music_delay must not be negative, got %v", c.Arena.MusicDelay)
	}
	for id, g := range c.Games {
		if g.Tick != 0 && (g.Tick < MinTick || g.Tick > MaxTick) {
			return fmt.Errorf("config: games.%s.tick %v outside %v..%v", id, g.Tick, MinTick, MaxTick)
		}
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %v", c.SSH.IdleTimeout)
	}
	return nil
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
