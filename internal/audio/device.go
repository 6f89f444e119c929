package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Device is an audio output that can play several streams at once.
type Device interface {
	// Play starts streaming r at the given volume and returns its voice.
	Play(r io.Reader, volume float64) Voice
	Close() error
}

// Voice is one stream playing on a Device.
type Voice interface {
	SetVolume(v float64)
	Stop()
	// Done is closed once the stream has finished or been stopped.
	Done() <-chan struct{}
}

// DeviceOpener acquires the output device. It is called at most once per
// Session, on first use.
type DeviceOpener func() (Device, error)

// OpenDiscard is a DeviceOpener for silent sessions.
func OpenDiscard() (Device, error) {
	return Discard, nil
}

// Discard is a Device that drops everything played on it.
var Discard Device = discardDevice{}

type discardDevice struct{}

func (discardDevice) Play(io.Reader, float64) Voice {
	done := make(chan struct{})
	close(done)
	return discardVoice{done: done}
}

func (discardDevice) Close() error { return nil }

type discardVoice struct{ done chan struct{} }

func (discardVoice) SetVolume(float64)       {}
func (discardVoice) Stop()                   {}
func (v discardVoice) Done() <-chan struct{} { return v.done }

var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

// OpenOto opens the system output through oto. oto allows one context per
// process, so every call shares it.
func OpenOto() (Device, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
		if err != nil {
			otoErr = fmt.Errorf("audio: open output: %w", err)
			return
		}
		select {
		case <-ready:
		case <-time.After(3 * time.Second):
			otoErr = fmt.Errorf("audio: output did not become ready")
			return
		}
		otoCtx = ctx
	})
	if otoErr != nil {
		return nil, otoErr
	}
	return &otoDevice{ctx: otoCtx}, nil
}

type otoDevice struct {
	ctx *oto.Context
}

func (d *otoDevice) Play(r io.Reader, volume float64) Voice {
	player := d.ctx.NewPlayer(r)
	player.SetVolume(volume)
	v := &otoVoice{
		player: player,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	player.Play()
	go v.watch()
	return v
}

func (d *otoDevice) Close() error {
	return d.ctx.Suspend()
}

type otoVoice struct {
	player   oto.Player
	mu       sync.Mutex
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// watch polls the player until it drains or is stopped, then releases it.
func (v *otoVoice) watch() {
	defer close(v.done)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-v.stop:
			v.close()
			return
		case <-ticker.C:
			v.mu.Lock()
			playing := v.player.IsPlaying()
			v.mu.Unlock()
			if !playing {
				v.close()
				return
			}
		}
	}
}

func (v *otoVoice) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	_ = v.player.Close()
}

func (v *otoVoice) SetVolume(vol float64) {
	select {
	case <-v.done:
		return
	default:
	}
	v.mu.Lock()
	v.player.SetVolume(vol)
	v.mu.Unlock()
}

func (v *otoVoice) Stop() {
	v.stopOnce.Do(func() { close(v.stop) })
}

func (v *otoVoice) Done() <-chan struct{} { return v.done }
