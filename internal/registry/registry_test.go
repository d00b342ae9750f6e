package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "zz_stub")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub zz_stub")
			}
		}
	}
	if !found {
		t.Error("List() does not include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("second Register with the same id should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return stubGame{id: "zz_a"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}
