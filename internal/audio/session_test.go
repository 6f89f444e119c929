package audio

import (
	"errors"
	"io"
	"sync"
	"testing"
)

type fakeVoice struct {
	mu     sync.Mutex
	volume float64
	done   chan struct{}
	once   sync.Once
}

func (v *fakeVoice) SetVolume(vol float64) {
	v.mu.Lock()
	v.volume = vol
	v.mu.Unlock()
}

func (v *fakeVoice) Volume() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.volume
}

func (v *fakeVoice) Stop()                 { v.once.Do(func() { close(v.done) }) }
func (v *fakeVoice) Done() <-chan struct{} { return v.done }

func (v *fakeVoice) stopped() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}

type fakeDevice struct {
	mu     sync.Mutex
	voices []*fakeVoice
}

func (d *fakeDevice) Play(_ io.Reader, volume float64) Voice {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := &fakeVoice{volume: volume, done: make(chan struct{})}
	d.voices = append(d.voices, v)
	return v
}

func (d *fakeDevice) Close() error { return nil }

func (d *fakeDevice) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.voices)
}

func (d *fakeDevice) voice(i int) *fakeVoice {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.voices[i]
}

func newTestSession() (*Session, *fakeDevice) {
	dev := &fakeDevice{}
	return NewSession(func() (Device, error) { return dev, nil }, nil), dev
}

func TestSessionDefaults(t *testing.T) {
	s, _ := newTestSession()
	got := s.Settings()
	if got != DefaultSettings() {
		t.Errorf("Settings() = %+v, expected %+v", got, DefaultSettings())
	}
	if s.OutputGain() != 0.5 {
		t.Errorf("OutputGain() = %v, expected 0.5", s.OutputGain())
	}
}

func TestSetVolumeClamps(t *testing.T) {
	s, _ := newTestSession()

	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{5, 1},
		{0.25, 0.25},
	}
	for _, tt := range tests {
		s.SetMasterVolume(tt.in)
		s.SetMusicVolume(tt.in)
		s.SetSFXVolume(tt.in)
		got := s.Settings()
		if got.MasterVolume != tt.want || got.MusicVolume != tt.want || got.SFXVolume != tt.want {
			t.Errorf("Set*Volume(%v) = %+v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestToggleMuteRestores(t *testing.T) {
	s, _ := newTestSession()
	s.SetMasterVolume(0.8)
	before := s.Settings()

	s.ToggleMute()
	if s.OutputGain() != 0 {
		t.Errorf("muted OutputGain() = %v, expected 0", s.OutputGain())
	}
	if got := s.Settings(); got.MasterVolume != 0.8 || !got.Muted {
		t.Errorf("muted Settings() = %+v", got)
	}

	s.ToggleMute()
	if s.OutputGain() != 0.8 {
		t.Errorf("OutputGain() after unmute = %v, expected 0.8", s.OutputGain())
	}
	if got := s.Settings(); got != before {
		t.Errorf("Settings() after double toggle = %+v, expected %+v", got, before)
	}
}

func TestBackgroundMusicIdempotent(t *testing.T) {
	s, dev := newTestSession()

	s.StopBackgroundMusic()
	if dev.count() != 0 {
		t.Fatal("stop without music should not touch the device")
	}

	s.StartBackgroundMusic()
	s.StartBackgroundMusic()
	if dev.count() != 1 {
		t.Fatalf("voices = %d, expected one drone", dev.count())
	}
	if !s.Settings().BackgroundActive {
		t.Error("BackgroundActive should be set")
	}
	drone := dev.voice(0)
	if got := drone.Volume(); got != 0.3*0.5 {
		t.Errorf("drone volume = %v, expected music*master", got)
	}

	s.SetMasterVolume(1)
	if got := drone.Volume(); got != 0.3 {
		t.Errorf("drone volume after master change = %v, expected 0.3", got)
	}
	s.ToggleMute()
	if got := drone.Volume(); got != 0 {
		t.Errorf("drone volume while muted = %v, expected 0", got)
	}

	s.StopBackgroundMusic()
	s.StopBackgroundMusic()
	if !drone.stopped() {
		t.Error("drone should be stopped")
	}
	if s.Settings().BackgroundActive {
		t.Error("BackgroundActive should be cleared")
	}
}

func TestPlaySkippedWhileMuted(t *testing.T) {
	s, dev := newTestSession()
	s.ToggleMute()
	s.Play(CueClick)
	s.Combo(3)
	if dev.count() != 0 {
		t.Errorf("muted session played %d voices", dev.count())
	}

	s.ToggleMute()
	s.Play(CueClick)
	if dev.count() != 1 {
		t.Fatalf("voices = %d, expected 1", dev.count())
	}
	if got := dev.voice(0).Volume(); got != 0.5 {
		t.Errorf("effect voice volume = %v, expected master", got)
	}
}

func TestDeviceOpenedOnceAndFailureIsSilent(t *testing.T) {
	calls := 0
	s := NewSession(func() (Device, error) {
		calls++
		return nil, errors.New("no sound card")
	}, nil)

	s.Play(CueSuccess)
	s.StartBackgroundMusic()
	s.Emit(ToneRequest{Frequency: 440, Duration: ms(50), Volume: 0.3})

	if calls != 1 {
		t.Errorf("opener called %d times, expected 1", calls)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestStartUsesMixAfterRendering(t *testing.T) {
	s, dev := newTestSession()
	pcm := RenderFigure(CueClick.Figure(), s.Settings().SFXVolume)

	// Muted between rendering and playback.
	s.ToggleMute()
	s.start(pcm)
	if dev.count() != 0 {
		t.Errorf("voices = %d, expected none while muted", dev.count())
	}

	s.ToggleMute()
	s.SetMasterVolume(0.25)
	s.start(pcm)
	if dev.count() != 1 {
		t.Fatalf("voices = %d, expected 1", dev.count())
	}
	if got := dev.voice(0).Volume(); got != 0.25 {
		t.Errorf("voice volume = %v, expected the current master 0.25", got)
	}
}
