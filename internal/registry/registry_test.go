package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	id  string
	cfg config.Snake
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func(cfg config.Snake) Game {
		return &stubGame{id: "zz_stub", cfg: cfg}
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}

	cfg := config.DefaultSnake()
	cfg.Timing.UpdatePeriod = 2
	g, err := Create("zz_stub", cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	stub, ok := g.(*stubGame)
	if !ok {
		t.Fatalf("Create() returned %T, expected *stubGame", g)
	}
	if stub.cfg.Timing.UpdatePeriod != 2 {
		t.Error("Create() should pass the config to the factory")
	}

	found := false
	games := List()
	for i, info := range games {
		if i > 0 && games[i-1].ID > info.ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, info.ID)
		}
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub zz_stub")
			}
		}
	}
	if !found {
		t.Error("List() should include zz_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", config.DefaultSnake()); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown ID")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	factory := func(cfg config.Snake) Game { return &stubGame{id: "zz_dup"} }
	Register("zz_dup", factory)

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("zz_dup", factory)
}
