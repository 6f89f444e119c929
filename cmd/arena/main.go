// arena is a neon arcade portal of twenty mini-games with synthesized
// sound, played in the terminal or over SSH.
//
// Usage:
//
//	arena                    - Open the game grid
//	arena play [game]        - Open the grid, or jump straight into a game
//	arena list               - List available games
//	arena serve              - Serve the arena over SSH
//	arena tone <cue>         - Play one sound preset and exit
//
// Global flags:
//
//	--config <path>      - Config file (default: ~/.arena/arena.yaml)
//	--seed <value>       - RNG seed for reproducible rounds
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
//	--no-audio           - Keep the audio device closed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
	flagNoAudio  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Neon Arena - twenty mini-games in your terminal",
	Long: `Neon Arena is a terminal arcade portal: pick a tile from the neon grid
and play one of twenty mini-games to a synthesized soundtrack.

Examples:
  arena
  arena play snake --seed 42
  arena list
  arena serve
  arena tone success`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "Disable audio output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toneCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagNoAudio {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger builds the process logger. fallback receives logs when no log
// file is configured. The returned close func releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, func(), error) {
	out, closeFn := fallback, func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("invalid log level: %w", err)
		}
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}

// newAudio opens the audio session described by cfg.
func newAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Session {
	open := audio.OpenOto
	if !cfg.Enabled {
		open = audio.OpenDiscard
	}
	a := audio.NewSession(open, logger.WithPrefix("audio"))
	arena.ConfigureAudio(a, cfg)
	return a
}
