// Package arena is the portal shell: it mounts games from the registry,
// tracks scores for the grid and drives the background drone.
package arena

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/config"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/games/catalog"
	"github.com/vovakirdan/neon-arena/internal/registry"
	"github.com/vovakirdan/neon-arena/internal/storage"
)

// Audio is the part of the audio session the shell and its presentation
// drive. *audio.Session implements it.
type Audio interface {
	audio.Effects
	Settings() audio.Settings
	SetMasterVolume(v float64)
	SetMusicVolume(v float64)
	SetSFXVolume(v float64)
	ToggleMute()
	StartBackgroundMusic()
	StopBackgroundMusic()
}

// Entry is one tile of the game grid.
type Entry struct {
	registry.GameInfo
	Best int // Best score this process, 0 if never scored
}

// Shell owns the selected game and the portal-level state.
// It is not safe for concurrent use; the presentation loop is its only
// caller.
type Shell struct {
	audio  Audio
	ledger *storage.Ledger
	cfg    config.AppConfig
	logger *log.Logger
	now    func() time.Time

	game     registry.Game
	gameID   string
	selected time.Time
	recorded bool // Current round already in the ledger

	maxScore  int
	best      map[string]int
	showPanel bool
	mounted   bool
	everMount bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithLedger records finished plays in l.
func WithLedger(l *storage.Ledger) Option {
	return func(s *Shell) { s.ledger = l }
}

// WithLogger sets the shell logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) { s.now = now }
}

// New creates a shell playing sound through a.
func New(a Audio, cfg config.AppConfig, opts ...Option) *Shell {
	s := &Shell{
		audio:     a,
		cfg:       cfg,
		logger:    log.New(io.Discard),
		now:       time.Now,
		best:      make(map[string]int),
		showPanel: cfg.Arena.ShowAudioPanel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Audio returns the audio session the shell plays through.
func (s *Shell) Audio() Audio { return s.audio }

// Mount marks the shell as on screen. The first mount returns the delay
// after which the presentation should call BeginMusic; later mounts
// return false.
func (s *Shell) Mount() (time.Duration, bool) {
	s.mounted = true
	if s.everMount {
		return 0, false
	}
	s.everMount = true
	return s.cfg.Arena.MusicDelay, true
}

// Mounted reports whether the shell is on screen.
func (s *Shell) Mounted() bool { return s.mounted }

// BeginMusic starts the drone if the shell is still mounted.
func (s *Shell) BeginMusic() {
	if !s.mounted {
		return
	}
	s.audio.StartBackgroundMusic()
}

// Teardown unmounts any game and stops the drone.
func (s *Shell) Teardown() {
	s.Deselect()
	s.audio.StopBackgroundMusic()
	s.mounted = false
}

// SelectGame creates and mounts the game with the given id, replacing any
// current one. Unknown ids leave the shell unchanged.
func (s *Shell) SelectGame(id string, rc core.RuntimeConfig) (registry.Game, error) {
	g, err := registry.Create(id, s.audio)
	if err != nil {
		return nil, err
	}
	s.Deselect()

	g.Reset(rc)
	g.OnScoreChange(func(v int) { s.score(id, v) })
	s.game, s.gameID = g, id
	s.selected = s.now()
	s.recorded = false
	s.audio.Play(audio.CueMenu)
	s.logger.Debug("game selected", "game", id, "seed", rc.Seed)
	return g, nil
}

// Game returns the mounted game, or nil.
func (s *Shell) Game() registry.Game { return s.game }

// SelectedID returns the mounted game's id, or "".
func (s *Shell) SelectedID() string { return s.gameID }

// TickInterval returns the tick period of the mounted game, honoring
// configured overrides.
func (s *Shell) TickInterval() time.Duration {
	if s.game == nil {
		return 0
	}
	return s.cfg.TickFor(s.gameID, s.game.TickInterval())
}

// RoundStarted resets per-round bookkeeping after a start or restart.
func (s *Shell) RoundStarted() {
	s.selected = s.now()
	s.recorded = false
}

// RoundOver records the mounted game's finished round. Repeated calls for
// the same round are ignored.
func (s *Shell) RoundOver() {
	if s.game == nil || s.recorded {
		return
	}
	s.record(s.game.State().Score)
}

// Deselect records the current play, if it scored, and unmounts the game.
func (s *Shell) Deselect() {
	if s.game == nil {
		return
	}
	if st := s.game.State(); !s.recorded && st.Phase != core.PhaseIdle {
		s.record(st.Score)
	}
	s.logger.Debug("game closed", "game", s.gameID)
	s.game, s.gameID = nil, ""
}

func (s *Shell) record(score int) {
	s.recorded = true
	if s.ledger == nil {
		return
	}
	p := storage.Play{
		GameID:   s.gameID,
		Score:    score,
		Duration: s.now().Sub(s.selected),
		EndedAt:  s.now(),
	}
	if _, err := s.ledger.Record(p); err != nil {
		s.logger.Warn("cannot record play", "game", s.gameID, "err", err)
	}
}

func (s *Shell) score(id string, v int) {
	s.OnScore(v)
	s.best[id] = max(s.best[id], v)
}

// OnScore folds a reported score into the running maximum.
func (s *Shell) OnScore(v int) {
	s.maxScore = max(s.maxScore, v)
}

// MaxScore returns the highest score reported this process.
func (s *Shell) MaxScore() int { return s.maxScore }

// ToggleAudioPanel flips the audio panel without touching game state.
func (s *Shell) ToggleAudioPanel() { s.showPanel = !s.showPanel }

// AudioPanelVisible reports whether the audio panel is shown.
func (s *Shell) AudioPanelVisible() bool { return s.showPanel }

// Games returns the catalog in grid order with each game's best score.
func (s *Shell) Games() []Entry {
	infos := catalog.Games()
	out := make([]Entry, len(infos))
	for i, info := range infos {
		out[i] = Entry{GameInfo: info, Best: s.best[info.ID]}
	}
	return out
}

// Plays returns the ledger's plays, most recent first.
func (s *Shell) Plays() ([]storage.Play, error) {
	if s.ledger == nil {
		return nil, nil
	}
	plays, err := s.ledger.Plays(0)
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return plays, nil
}

// ConfigureAudio applies the configured mix to a.
func ConfigureAudio(a Audio, cfg config.AudioConfig) {
	a.SetMasterVolume(cfg.MasterVolume)
	a.SetMusicVolume(cfg.MusicVolume)
	a.SetSFXVolume(cfg.SFXVolume)
	if cfg.Muted != a.Settings().Muted {
		a.ToggleMute()
	}
}
