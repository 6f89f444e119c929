package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/platform/tui"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Open the arena, optionally straight into a game",
	Long: `Opens the neon game grid. With a game id, that game is opened directly;
esc still returns to the grid.

Controls:
  Arrows/WASD  - Move
  Space        - Fire / act
  Enter, 1-9   - Open a game, confirm
  P            - Pause
  R            - Restart
  Esc/B        - Back to the grid
  M            - Mute
  A/V          - Audio panel (V inside games)
  Tab          - Session scores
  Q/Ctrl+C     - Quit

Examples:
  arena play
  arena play tetris
  arena play maze --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	var gameID string
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q, run 'arena list' to see available games", gameID)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("arena needs an interactive terminal")
	}
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// The TUI owns the screen; logs go to the log file or nowhere.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	ledger, err := storage.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	a := newAudio(cfg.Audio, logger)
	defer a.Close()

	shell := arena.New(a, cfg,
		arena.WithLedger(ledger),
		arena.WithLogger(logger),
	)
	logger.Info("arena started", "game", gameID, "seed", flagSeed)

	return tui.Run(shell, tui.Options{
		Seed:      flagSeed,
		StartGame: gameID,
		Width:     width,
		Height:    height,
	})
}
