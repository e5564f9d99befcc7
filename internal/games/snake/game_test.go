package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultSnake())
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: seed})
	return g
}

// stepFrames runs n frames with no input and returns the last result.
func stepFrames(g *Game, n int) core.StepResult {
	var res core.StepResult
	for i := 0; i < n; i++ {
		res = g.Step(core.NewInputFrame())
	}
	return res
}

func hasEvent(res core.StepResult, kind core.EventKind) bool {
	for _, e := range res.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestResetInitialState(t *testing.T) {
	g := newTestGame(1)
	snap := g.Snapshot()

	want := []Vec{{240, 240}, {240, 260}, {240, 280}}
	if !reflect.DeepEqual(snap.Cells, want) {
		t.Errorf("Cells = %v, want %v", snap.Cells, want)
	}
	if !snap.FoodActive {
		t.Error("no food after Reset")
	}
	if snap.State != StatePlaying {
		t.Errorf("State = %q, want %q", snap.State, StatePlaying)
	}
	if g.State().Length != 3 {
		t.Errorf("Length = %d, want 3", g.State().Length)
	}
}

func TestMovementCadence(t *testing.T) {
	g := newTestGame(1)
	period := g.Config().Timing.UpdatePeriod

	for i := 1; i < period; i++ {
		if res := g.Step(core.NewInputFrame()); res.Moved {
			t.Fatalf("moved on frame %d, period is %d", i, period)
		}
	}
	if g.chain.Head() != (Vec{X: 240, Y: 240}) {
		t.Fatalf("head moved before the first tick: %v", g.chain.Head())
	}

	if res := g.Step(core.NewInputFrame()); !res.Moved {
		t.Fatalf("did not move on frame %d", period)
	}
	if g.chain.Head() != (Vec{X: 240, Y: 220}) {
		t.Errorf("head = %v, want (240,220)", g.chain.Head())
	}

	snap := g.Snapshot()
	if snap.Frame != uint64(period) || snap.Tick != 1 {
		t.Errorf("Frame/Tick = %d/%d, want %d/1", snap.Frame, snap.Tick, period)
	}
}

func TestDirectionInput(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    Vec
	}{
		{"turn left", []core.Action{core.ActionLeft}, Vec{X: 220, Y: 240}},
		{"reverse ignored", []core.Action{core.ActionDown}, Vec{X: 240, Y: 220}},
		{"last request wins", []core.Action{core.ActionLeft, core.ActionRight}, Vec{X: 260, Y: 240}},
		{"no fold back", []core.Action{core.ActionRight, core.ActionDown}, Vec{X: 260, Y: 240}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			in := core.NewInputFrame()
			for _, a := range tt.actions {
				in.Set(a)
			}
			g.Step(in)
			stepFrames(g, g.Config().Timing.UpdatePeriod-1)

			if g.chain.Head() != tt.want {
				t.Errorf("head = %v, want %v", g.chain.Head(), tt.want)
			}
		})
	}
}

func TestGrowsOnSameTick(t *testing.T) {
	g := newTestGame(1)
	g.food.food = Food{Pos: Vec{X: 240, Y: 220}, Active: true}

	res := stepFrames(g, g.Config().Timing.UpdatePeriod)
	if !hasEvent(res, core.EventFoodEaten) {
		t.Fatalf("events = %v, want food_eaten", res.Events)
	}
	if res.State.Length != 4 {
		t.Errorf("Length = %d, want 4", res.State.Length)
	}
	if g.food.Food().Active {
		t.Error("food still active after being eaten")
	}

	res = stepFrames(g, g.Config().Timing.UpdatePeriod)
	if !hasEvent(res, core.EventFoodSpawned) {
		t.Errorf("events = %v, want food_spawned on the next tick", res.Events)
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newTestGame(1)
	period := g.Config().Timing.UpdatePeriod

	// Eleven ticks up from y=240 reach y=20; the twelfth hits the wall
	stepFrames(g, 11*period)
	if g.State().GameOver {
		t.Fatalf("game over at %v", g.chain.Head())
	}

	res := stepFrames(g, period)
	if !res.State.GameOver {
		t.Fatalf("not game over with head at %v", g.chain.Head())
	}
	if !hasEvent(res, core.EventCollision) {
		t.Errorf("events = %v, want collision", res.Events)
	}

	before := g.Snapshot()
	res = stepFrames(g, 3*period)
	if res.Moved {
		t.Error("moved after game over")
	}
	if after := g.Snapshot(); !reflect.DeepEqual(before.Cells, after.Cells) {
		t.Errorf("cells changed after game over: %v -> %v", before.Cells, after.Cells)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("State = %q, want %q", g.Snapshot().State, StateGameOver)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		switch i {
		case 20:
			in.Set(core.ActionLeft)
		case 60:
			in.Set(core.ActionDown)
		case 100:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestTooSmallPauses(t *testing.T) {
	g := New(config.DefaultSnake())
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 1})

	if !g.State().TooSmall {
		t.Fatal("TooSmall = false on a 30x10 screen")
	}
	if res := stepFrames(g, 3*g.Config().Timing.UpdatePeriod); res.Moved {
		t.Error("moved while the screen is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %q, want %q", g.Snapshot().State, StatePausedSmall)
	}

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("too-small screen does not show a notice:\n%s", scr.String())
	}

	g.Resize(100, 40)
	if g.State().TooSmall {
		t.Fatal("TooSmall = true after growing the screen")
	}
	if res := stepFrames(g, g.Config().Timing.UpdatePeriod); !res.Moved {
		t.Error("did not resume after growing the screen")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(100, 40)
	g.Render(scr)

	// 25x25 cells, two columns each, centered on 100x40
	offX, offY := 25, 7

	wall := scr.GetCell(offX, offY)
	if wall.Rune != '▓' || wall.Color != core.ColorGray {
		t.Errorf("corner = %q/%v, want wall", wall.Rune, wall.Color)
	}

	head := scr.GetCell(offX+12*2, offY+12)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %q/%v, want bright green block", head.Rune, head.Color)
	}
	body := scr.GetCell(offX+12*2+1, offY+13)
	if body.Rune != '█' || body.Color != core.ColorGreen {
		t.Errorf("body cell = %q/%v, want green block", body.Rune, body.Color)
	}
}

func TestVariants(t *testing.T) {
	tests := []struct {
		id    string
		title string
		rules config.Rules
	}{
		{IDClassic, "Snake", config.DefaultSnake().Rules},
		{IDLegacy, "Snake (Legacy Rules)", config.LegacyRules()},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rg, err := registry.Create(tt.id, config.DefaultSnake())
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tt.id, err)
			}
			g, ok := rg.(*Game)
			if !ok {
				t.Fatalf("Create(%q) returned %T", tt.id, rg)
			}
			if g.ID() != tt.id || g.Title() != tt.title {
				t.Errorf("ID/Title = %q/%q, want %q/%q", g.ID(), g.Title(), tt.id, tt.title)
			}
			if g.Config().Rules != tt.rules {
				t.Errorf("Rules = %+v, want %+v", g.Config().Rules, tt.rules)
			}
		})
	}
}
