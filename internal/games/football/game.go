// Package football implements a five-a-side football match: ball and
// player kinematics, a pursue-or-return heuristic for non-controlled
// players, and the match clock and scoring rules. The Game type adapts a
// Match to the registry so the terminal host can drive it.
package football

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
	"github.com/vovakirdan/kickoff/internal/registry"
)

// Mode selects the rules a Game plays under.
type Mode int

const (
	ModeMatch    Mode = iota // Two timed halves against an active side
	ModeTraining             // Untimed, opponents stand on their spawns
)

// goalBannerSeconds is how long "GOAL!" stays on screen.
const goalBannerSeconds = 1.5

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	configOverride   *config.MatchConfig
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names
// fall back to the loaded config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetConfig makes every new match use cfg instead of loading from disk.
// Passing nil restores file loading.
func SetConfig(cfg *config.MatchConfig) {
	configOverride = cfg
}

// SetLogger sets the logger handed to every new match.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Match to registry.Game.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.MatchConfig
	controls   *input.Aggregator
	match      *Match
	goalBanner float64
	lastGoal   GoalResult

	preset   config.DifficultyPreset // Overrides the package preset when set
	override *config.MatchConfig     // Overrides the package config when set
}

// New creates a game in the given mode. Call Reset before stepping it.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeTraining {
		return "training"
	}
	return "match"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeTraining {
		return "Training Ground"
	}
	return "Football Match"
}

// SetPreset sets the difficulty preset for this game only.
func (g *Game) SetPreset(name string) {
	g.preset = config.ParsePreset(name)
}

// UseConfig makes this game ignore config files and play with cfg.
func (g *Game) UseConfig(cfg config.MatchConfig) {
	g.override = &cfg
}

func (g *Game) loadConfig() config.MatchConfig {
	if g.override != nil {
		return *g.override
	}
	if configOverride != nil {
		return *configOverride
	}
	cfg, err := config.LoadMatch(configPath)
	if err != nil {
		logger.Warn("falling back to default match config", "err", err)
		cfg = config.DefaultMatchConfig()
	}
	return cfg
}

// Reset builds a fresh match and a fresh control aggregator.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := g.loadConfig()
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyPreset(&cfg, preset)
	g.cfg = cfg

	g.controls = input.NewAggregator(input.Joystick{
		CenterX:  float64(runtime.ScreenW*core.CellWidthPx) / 4,
		CenterY:  float64(runtime.ScreenH*core.CellHeightPx) / 2,
		DeadZone: cfg.Input.DeadZone,
		Scale:    cfg.Input.Scale,
	})

	opts := []Option{WithLogger(logger)}
	if runtime.Seed != 0 {
		opts = append(opts, WithSeed(runtime.Seed))
	}
	if g.mode == ModeTraining {
		opts = append(opts, WithUntimed(), WithPassiveOpponents())
	}
	g.match = NewMatch(cfg, g.controls, opts...)
	g.goalBanner = 0
	g.lastGoal = GoalNone
}

// Step advances the match by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) {
		g.match.TogglePause()
	}

	out := g.match.Advance(dt)
	if g.goalBanner > 0 && !g.match.State().Paused {
		g.goalBanner -= dt
	}
	if out.Goal != GoalNone {
		g.goalBanner = goalBannerSeconds
		g.lastGoal = out.Goal
	}

	return core.StepResult{
		State: g.State(),
		Goal:  out.Goal != GoalNone,
	}
}

// State returns the scoreboard summary.
func (g *Game) State() core.GameState {
	s := g.match.State()
	return core.GameState{
		HomeScore: s.ScoreFor(TeamHome),
		AwayScore: s.ScoreFor(TeamAway),
		Half:      s.Half(),
		GameOver:  s.GameOver(),
		Paused:    s.Paused,
	}
}

// Controls returns the aggregator the host feeds device events into.
func (g *Game) Controls() *input.Aggregator {
	return g.controls
}

// Match exposes the underlying match.
func (g *Game) Match() *Match {
	return g.match
}

// Register both modes with the registry
func init() {
	registry.Register("match", func() registry.Game {
		return New(ModeMatch)
	})
	registry.Register("training", func() registry.Game {
		return New(ModeTraining)
	})
}
