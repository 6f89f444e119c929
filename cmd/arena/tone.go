package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arena/internal/audio"
)

// toneTail lets the last voice drain before the device closes.
const toneTail = 150 * time.Millisecond

var toneCmd = &cobra.Command{
	Use:   "tone <cue>",
	Short: "Play one sound preset and exit",
	Long: fmt.Sprintf(`Plays a preset through the audio device, for checking that sound works.

Cues: %s

Examples:
  arena tone success
  arena tone explosion`, strings.Join(audio.CueNames(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: audio.CueNames(),
	RunE:      runTone,
}

func runTone(cmd *cobra.Command, args []string) error {
	cue, err := audio.ParseCue(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	a := newAudio(cfg.Audio, logger)
	defer a.Close()

	if a.Settings().Muted {
		logger.Warn("audio is muted in the config, nothing will play")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Playing %s (%v)\n", cue, cue.Length())
	a.Play(cue)
	time.Sleep(cue.Length() + toneTail)
	return nil
}
