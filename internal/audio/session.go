package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Default mix levels.
const (
	DefaultMasterVolume = 0.5
	DefaultMusicVolume  = 0.3
	DefaultSFXVolume    = 0.7
)

// Settings is a snapshot of the session's mix state.
type Settings struct {
	MasterVolume     float64
	MusicVolume      float64
	SFXVolume        float64
	Muted            bool
	BackgroundActive bool
}

// DefaultSettings returns the mix a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		MasterVolume: DefaultMasterVolume,
		MusicVolume:  DefaultMusicVolume,
		SFXVolume:    DefaultSFXVolume,
	}
}

// Effects is the sound surface games use.
type Effects interface {
	Play(c Cue)
	Combo(n int)
	Emit(req ToneRequest)
}

// Silent is an Effects that plays nothing.
var Silent Effects = silent{}

type silent struct{}

func (silent) Play(Cue)         {}
func (silent) Combo(int)        {}
func (silent) Emit(ToneRequest) {}

// Session owns the output device, the mix levels and the background drone.
// One Session is shared by everything that makes sound in a process.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	settings Settings
	logger   *log.Logger

	open      DeviceOpener
	dev       Device
	attempted bool

	drone  Voice
	voices map[Voice]struct{} // effect voices still playing
}

// NewSession creates a session that opens its device with open on first use.
// A nil logger discards diagnostics.
func NewSession(open DeviceOpener, logger *log.Logger) *Session {
	if open == nil {
		open = OpenDiscard
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		settings: DefaultSettings(),
		logger:   logger,
		open:     open,
		voices:   make(map[Voice]struct{}),
	}
}

// device returns the output, acquiring it on first call. Must hold s.mu.
func (s *Session) device() Device {
	if !s.attempted {
		s.attempted = true
		dev, err := s.open()
		if err != nil {
			s.logger.Debug("audio output unavailable, continuing silently", "err", err)
			dev = Discard
		}
		s.dev = dev
	}
	return s.dev
}

// Settings returns a snapshot of the mix state.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// OutputGain is the output stage gain: zero while muted, else master.
func (s *Session) OutputGain() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputGain()
}

func (s *Session) outputGain() float64 {
	if s.settings.Muted {
		return 0
	}
	return s.settings.MasterVolume
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SetMasterVolume clamps v to [0,1] and applies it to playing voices.
func (s *Session) SetMasterVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.MasterVolume = clampUnit(v)
	s.applyGains()
}

// SetMusicVolume clamps v to [0,1] and applies it to the drone.
func (s *Session) SetMusicVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.MusicVolume = clampUnit(v)
	s.applyGains()
}

// SetSFXVolume clamps v to [0,1]. It affects effects played afterwards.
func (s *Session) SetSFXVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SFXVolume = clampUnit(v)
}

// ToggleMute flips the mute flag. Stored levels are left untouched.
func (s *Session) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Muted = !s.settings.Muted
	s.applyGains()
}

// applyGains pushes the current output stage to live voices. Must hold s.mu.
func (s *Session) applyGains() {
	g := s.outputGain()
	if s.drone != nil {
		s.drone.SetVolume(s.settings.MusicVolume * g)
	}
	for v := range s.voices {
		v.SetVolume(g)
	}
}

// StartBackgroundMusic starts the drone unless it is already running.
func (s *Session) StartBackgroundMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drone != nil {
		return
	}
	s.drone = s.device().Play(&droneReader{}, s.settings.MusicVolume*s.outputGain())
	s.settings.BackgroundActive = true
	s.logger.Debug("background music started")
}

// StopBackgroundMusic stops the drone if it is running.
func (s *Session) StopBackgroundMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drone == nil {
		return
	}
	s.drone.Stop()
	s.drone = nil
	s.settings.BackgroundActive = false
	s.logger.Debug("background music stopped")
}

// Play renders and plays a preset cue.
func (s *Session) Play(c Cue) {
	s.play(c.Figure())
}

// Combo plays the rising tone for combo counter n.
func (s *Session) Combo(n int) {
	s.play([]ToneRequest{ComboTone(n)})
}

// Emit plays a single tone.
func (s *Session) Emit(req ToneRequest) {
	s.play([]ToneRequest{req})
}

func (s *Session) play(notes []ToneRequest) {
	if len(notes) == 0 {
		return
	}
	s.mu.Lock()
	if s.settings.Muted {
		s.mu.Unlock()
		return
	}
	sfx := s.settings.SFXVolume
	s.mu.Unlock()

	// Rendering can take a few milliseconds; keep it outside the lock.
	s.start(RenderFigure(notes, sfx))
}

// start plays rendered pcm at the output gain current at this moment; the
// mix may have changed while the figure was rendering.
func (s *Session) start(pcm []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings.Muted {
		return
	}
	v := s.device().Play(newPCMReader(pcm), s.outputGain())
	s.voices[v] = struct{}{}
	go s.reap(v)
}

func (s *Session) reap(v Voice) {
	<-v.Done()
	s.mu.Lock()
	delete(s.voices, v)
	s.mu.Unlock()
}

// Close stops every voice and releases the device.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drone != nil {
		s.drone.Stop()
		s.drone = nil
		s.settings.BackgroundActive = false
	}
	for v := range s.voices {
		v.Stop()
	}
	if s.dev == nil {
		return nil
	}
	return s.dev.Close()
}
