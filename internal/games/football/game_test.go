package football

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
	"github.com/vovakirdan/kickoff/internal/registry"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	cfg := config.DefaultMatchConfig()
	SetConfig(&cfg)
	t.Cleanup(func() { SetConfig(nil) })

	g := New(mode)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 42})
	return g
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"match", "training"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestGamePauseAction(t *testing.T) {
	g := newTestGame(t, ModeMatch)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause, 1.0/60)
	if !res.State.Paused {
		t.Fatal("pause action should pause the match")
	}
	res = g.Step(core.NewInputFrame(), 1.0/60)
	if !res.State.Paused {
		t.Fatal("match should stay paused without another toggle")
	}
	res = g.Step(pause, 1.0/60)
	if res.State.Paused {
		t.Fatal("second pause action should resume")
	}
}

func TestGameControlsDriveMatch(t *testing.T) {
	g := newTestGame(t, ModeMatch)

	g.Controls().KeyDown(input.KeyD)
	g.Step(core.NewInputFrame(), 1.0/60)

	snap := g.Match().Snapshot()
	c, ok := snap.Controlled()
	if !ok {
		t.Fatal("no controlled player")
	}
	if c.Velocity.X <= 0 {
		t.Errorf("holding D should move right, vx = %f", c.Velocity.X)
	}
}

func TestGameResetRestoresKickOff(t *testing.T) {
	g := newTestGame(t, ModeMatch)
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame(), 1.0/60)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 42})

	s := g.State()
	if s.HomeScore != 0 || s.AwayScore != 0 || s.Half != 1 || s.GameOver || s.Paused {
		t.Errorf("unexpected state after reset: %+v", s)
	}
	if g.Match().State().Time != 0 {
		t.Error("clock should restart on reset")
	}
}

func TestGameRenderHUD(t *testing.T) {
	g := newTestGame(t, ModeMatch)
	screen := core.NewScreen(80, 23)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"HOME 0 - 0 AWAY", "1ST HALF  0:00", "ball: home"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("pitch border missing, got %q", screen.Get(0, 1))
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause, 1.0/60)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused match should show PAUSED")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, ModeTraining)
	screen := core.NewScreen(8, 4)

	g.Render(screen)

	if !strings.Contains(screen.String(), "too") {
		t.Errorf("tiny screen should say it is too small, got:\n%s", screen.String())
	}
}

func TestTrainingMode(t *testing.T) {
	g := newTestGame(t, ModeTraining)
	if g.Title() != "Training Ground" {
		t.Errorf("Title() = %q", g.Title())
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TRAINING") {
		t.Error("training HUD should say TRAINING")
	}
}

func TestGameInstanceSettings(t *testing.T) {
	base := config.DefaultMatchConfig()
	SetConfig(&base)
	t.Cleanup(func() { SetConfig(nil) })

	custom := config.DefaultMatchConfig()
	custom.Rules.HalfLength = 10

	tuned := New(ModeMatch)
	tuned.UseConfig(custom)
	tuned.SetPreset("hard")
	plain := New(ModeMatch)

	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 1}
	tuned.Reset(rc)
	plain.Reset(rc)

	if tuned.cfg.Rules.HalfLength != 10 {
		t.Errorf("tuned half length = %v, want 10", tuned.cfg.Rules.HalfLength)
	}
	if !tuned.cfg.Difficulty.Enabled || tuned.cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", tuned.cfg.Difficulty)
	}
	if plain.cfg.Rules.HalfLength != base.Rules.HalfLength {
		t.Errorf("plain half length = %v, want %v", plain.cfg.Rules.HalfLength, base.Rules.HalfLength)
	}
	if plain.cfg.Difficulty != base.Difficulty {
		t.Errorf("plain difficulty changed: %+v", plain.cfg.Difficulty)
	}
}
