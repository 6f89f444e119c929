package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/neon-arena/internal/audio"
	"github.com/vovakirdan/neon-arena/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                { return g.id }
func (g stubGame) Title() string             { return "Stub " + g.id }
func (stubGame) Description() string         { return "a stub" }
func (stubGame) Controls() string            { return "" }
func (stubGame) TickInterval() time.Duration { return time.Second }
func (stubGame) Reset(core.RuntimeConfig)    {}
func (stubGame) Start()                      {}
func (stubGame) Restart()                    {}
func (stubGame) Resize(int, int)             {}
func (stubGame) Tick()                       {}
func (stubGame) HandleInput(core.Input)      {}
func (stubGame) OnScoreChange(func(int))     {}
func (stubGame) Render(*core.Screen)         {}
func (stubGame) State() core.GameState       { return core.GameState{} }

func stubFactory(id string) Factory {
	return func(audio.Effects) Game { return stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", stubFactory("zz-stub-b"))
	Register("zz-stub-a", stubFactory("zz-stub-a"))

	if !Exists("zz-stub-a") {
		t.Fatal("Exists(zz-stub-a) = false")
	}
	info, ok := Lookup("zz-stub-a")
	if !ok || info.Title != "Stub zz-stub-a" || info.Tick != time.Second {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	g, err := Create("zz-stub-b", nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz-stub-b" {
		t.Errorf("ID() = %q, expected zz-stub-b", g.ID())
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", audio.Silent); err == nil {
		t.Error("Create(no-such-game) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", stubFactory("zz-dup"))
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", stubFactory("zz-dup"))
}
