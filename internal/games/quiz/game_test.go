package quiz

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
	"github.com/vovakirdan/neon-arena/internal/session"
)

func newGame() *session.Session[State] {
	g := New(audio.Silent)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 99})
	g.Start()
	return g
}

func TestEmbeddedBank(t *testing.T) {
	if n := len(Bank()); n < 20 {
		t.Errorf("len(Bank()) = %d, expected at least 20", n)
	}
}

func TestParseBankErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "questions: []", "empty"},
		{"options", "questions:\n  - question: q\n    options: [a, b]\n    answer: 0", "2 options"},
		{"answer", "questions:\n  - question: q\n    options: [a, b, c, d]\n    answer: 4", "out of range"},
		{"syntax", "questions: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseBank() error = %v, expected to mention %q", err, tt.want)
			}
		})
	}
}

func TestCorrectAnswerScoresTimeBonus(t *testing.T) {
	g := newGame()
	s := g.Data()
	g.Tick()
	g.Tick()
	first := s.Current
	g.HandleInput(core.Choose(first.Answer + 1))

	if want := answerPoints + QuestionTime - 2; g.State().Score != want {
		t.Errorf("score = %d, expected %d", g.State().Score, want)
	}
	if s.Lives != Lives || s.TimeLeft != QuestionTime {
		t.Errorf("Lives=%d TimeLeft=%d after a correct answer", s.Lives, s.TimeLeft)
	}
	if s.Next != 2 {
		t.Errorf("Next = %d, expected 2", s.Next)
	}
}

func TestWrongAnswersEnd(t *testing.T) {
	g := newGame()
	s := g.Data()
	for i := 0; i < Lives; i++ {
		wrong := (s.Current.Answer+1)%Options + 1
		g.HandleInput(core.Choose(wrong))
	}
	if s.Lives != 0 || g.State().Phase != core.PhaseOver {
		t.Errorf("Lives=%d phase=%v, expected 0 and over", s.Lives, g.State().Phase)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, expected 0", g.State().Score)
	}
}

func TestTimeoutCostsALife(t *testing.T) {
	g := newGame()
	s := g.Data()
	q := s.Current
	for i := 0; i < QuestionTime; i++ {
		g.Tick()
	}
	if s.Lives != Lives-1 {
		t.Errorf("Lives = %d, expected %d", s.Lives, Lives-1)
	}
	if s.TimeLeft != QuestionTime || s.Next != 2 {
		t.Errorf("timeout should move on from %q", q.Text)
	}
}

func TestBankReshuffles(t *testing.T) {
	g := newGame()
	s := g.Data()
	n := len(Bank())
	for i := 0; i < n; i++ {
		g.HandleInput(core.Choose(s.Current.Answer + 1))
	}
	if s.Next != 1 || len(s.Order) != n {
		t.Errorf("Next=%d after a full pass, expected a fresh order", s.Next)
	}
}
