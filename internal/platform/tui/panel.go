package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arena/internal/arena"
	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
)

// volumeStep is the slider increment.
const volumeStep = 0.05

const panelWidth = 34

// Panel rows, top to bottom.
const (
	rowMusic = iota
	rowMute
	rowTest
	rowMaster
	rowMusicVol
	rowSFX
	panelRows
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(neonBlue).
			Padding(0, 1).
			Width(panelWidth)

	panelTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(neonPink)
	panelCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(neonBlue)
)

// audioPanel is the audio controls overlay. It reads the audio settings on
// every render, so it never holds state of its own beyond the cursor.
type audioPanel struct {
	audio  arena.Audio
	cursor int
	bar    progress.Model
}

func newAudioPanel(a arena.Audio) audioPanel {
	return audioPanel{
		audio: a,
		bar: progress.New(
			progress.WithGradient("#9d4dff", "#ff2bd6"),
			progress.WithWidth(16),
			progress.WithoutPercentage(),
		),
	}
}

// handle applies one input to the panel.
func (p *audioPanel) handle(in core.Input) {
	switch in.Action {
	case core.ActionUp:
		p.cursor = (p.cursor + panelRows - 1) % panelRows
	case core.ActionDown:
		p.cursor = (p.cursor + 1) % panelRows
	case core.ActionLeft:
		p.adjust(-volumeStep)
	case core.ActionRight:
		p.adjust(volumeStep)
	case core.ActionConfirm, core.ActionFire:
		p.activate()
	}
}

func (p *audioPanel) adjust(delta float64) {
	st := p.audio.Settings()
	switch p.cursor {
	case rowMaster:
		p.audio.SetMasterVolume(st.MasterVolume + delta)
	case rowMusicVol:
		p.audio.SetMusicVolume(st.MusicVolume + delta)
	case rowSFX:
		p.audio.SetSFXVolume(st.SFXVolume + delta)
	}
}

func (p *audioPanel) activate() {
	switch p.cursor {
	case rowMusic:
		if p.audio.Settings().BackgroundActive {
			p.audio.StopBackgroundMusic()
		} else {
			p.audio.StartBackgroundMusic()
		}
	case rowMute:
		p.audio.ToggleMute()
	case rowTest:
		p.audio.Play(audio.CueSuccess)
	}
}

func (p audioPanel) view() string {
	st := p.audio.Settings()
	music := "▶ Play music"
	if st.BackgroundActive {
		music = "■ Stop music"
	}
	mute := "🔊 Mute"
	if st.Muted {
		mute = "🔇 Unmute"
	}

	lines := []string{
		music,
		mute,
		"♪ Test sound",
		p.slider("Master", st.MasterVolume),
		p.slider("Music ", st.MusicVolume),
		p.slider("SFX   ", st.SFXVolume),
	}
	for i, l := range lines {
		if i == p.cursor {
			lines[i] = panelCursorStyle.Render("> " + l)
		} else {
			lines[i] = "  " + l
		}
	}

	title := panelTitleStyle.Render("AUDIO")
	body := strings.Join(lines, "\n")
	foot := dimStyle.Render("↑↓ select  ←→ adjust  enter toggle")
	return panelStyle.Render(title + "\n" + body + "\n" + foot)
}

func (p audioPanel) slider(label string, v float64) string {
	return fmt.Sprintf("%s %s %3.0f%%", label, p.bar.ViewAs(v), v*100)
}
