package football

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
)

// Phase is the match period.
type Phase int

const (
	PhaseFirstHalf Phase = iota
	PhaseSecondHalf
	PhaseFullTime
)

func (p Phase) String() string {
	switch p {
	case PhaseSecondHalf:
		return "second half"
	case PhaseFullTime:
		return "full time"
	default:
		return "first half"
	}
}

// MatchState is the scoreboard and control state of a match.
type MatchState struct {
	Score      [2]int  // Indexed by Team
	Time       float64 // Seconds elapsed in the current half
	Phase      Phase
	Paused     bool
	Possession Team
	Controlled int // Index into the player slice
}

// Half returns 1 or 2. Full time reports the second half.
func (s MatchState) Half() int {
	if s.Phase == PhaseFirstHalf {
		return 1
	}
	return 2
}

// GameOver reports whether the final whistle has gone.
func (s MatchState) GameOver() bool {
	return s.Phase == PhaseFullTime
}

// ScoreFor returns one team's goals.
func (s MatchState) ScoreFor(t Team) int {
	return s.Score[t]
}

// Outcome reports what happened during a single Advance call.
type Outcome struct {
	Goal     GoalResult
	HalfTime bool
	FullTime bool
}

// Option configures a Match at construction.
type Option func(*Match)

// WithLogger routes match events to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeed fixes the RNG used for roster traits.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithID overrides the generated match ID.
func WithID(id string) Option {
	return func(m *Match) {
		m.id = id
	}
}

// WithUntimed disables the clock rules: halves never end.
func WithUntimed() Option {
	return func(m *Match) {
		m.untimed = true
	}
}

// WithPassiveOpponents stops the away side from running decisions, so
// they stay where they were spawned.
func WithPassiveOpponents() Option {
	return func(m *Match) {
		m.passiveAway = true
	}
}

type noInput struct{}

func (noInput) Poll() input.Command { return input.Command{} }

// Match owns the players, the ball and the match state, and advances them
// one tick at a time. It is not safe for concurrent use; only the input
// source may be fed from other goroutines.
type Match struct {
	id         string
	cfg        config.MatchConfig
	field      Field
	physics    Resolver
	difficulty *config.DifficultyManager
	source     input.Source
	logger     *log.Logger
	rng        *rand.Rand

	players    []Player
	ball       Ball
	state      MatchState
	pursuing   []bool
	prevSwitch bool
	played     float64 // Seconds across both halves

	controlledTeam Team
	untimed        bool
	passiveAway    bool
}

// NewMatch builds a match at kick-off from cfg. A nil source means no
// input at all.
func NewMatch(cfg config.MatchConfig, source input.Source, opts ...Option) *Match {
	if source == nil {
		source = noInput{}
	}
	m := &Match{
		cfg:            cfg,
		field:          FieldFrom(cfg.Field),
		physics:        NewResolver(FieldFrom(cfg.Field), cfg.Physics),
		difficulty:     config.NewDifficultyManager(cfg.Difficulty),
		source:         source,
		logger:         log.New(io.Discard),
		controlledTeam: TeamHome,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.id == "" {
		m.id = uuid.NewString()
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m.spawnRoster()
	m.resetPositions()
	m.state = MatchState{
		Phase:      PhaseFirstHalf,
		Possession: TeamHome,
		Controlled: cfg.Roster.ControlledIndex,
	}
	m.checkInvariants()

	m.logger.Info("kick-off", "match", m.id, "players", len(m.players))
	return m
}

func (m *Match) spawnRoster() {
	r := m.cfg.Roster
	m.players = make([]Player, 0, 2*r.TeamSize)
	add := func(team Team, spawns []config.Spawn) {
		for i := range spawns {
			m.players = append(m.players, Player{
				ID:      fmt.Sprintf("%s-%d", team, i),
				Team:    team,
				Number:  i + 1,
				Stamina: r.Stamina,
				Speed:   r.SpeedMin + m.rng.Float64()*r.SpeedBand,
				Skill:   r.SkillMin + m.rng.Float64()*r.SkillBand,
			})
		}
	}
	add(TeamHome, r.HomeSpawns)
	add(TeamAway, r.AwaySpawns)
	m.pursuing = make([]bool, len(m.players))
}

// resetPositions puts everyone back on their spawn and the ball on the
// centre spot. Scores and the clock are untouched.
func (m *Match) resetPositions() {
	r := m.cfg.Roster
	for i := range m.players {
		p := &m.players[i]
		s := r.HomeSpawns
		idx := i
		if p.Team == TeamAway {
			s = r.AwaySpawns
			idx = i - len(r.HomeSpawns)
		}
		p.Position = core.V3(s[idx].X, 0, s[idx].Z)
		p.Velocity = core.Vec3{}
		m.pursuing[i] = false
	}
	m.ball = Ball{Position: core.V3(0, m.cfg.Physics.BallGroundHeight, 0)}
}

func (m *Match) checkInvariants() {
	c := m.state.Controlled
	if c < 0 || c >= len(m.players) {
		panic(fmt.Sprintf("football: controlled index %d out of range [0,%d)", c, len(m.players)))
	}
	if m.players[c].Team != m.controlledTeam {
		panic(fmt.Sprintf("football: controlled player %s is not on team %s", m.players[c].ID, m.controlledTeam))
	}
}

// Advance moves the match forward by dt seconds. It does nothing while
// paused or after full time.
func (m *Match) Advance(dt float64) Outcome {
	var out Outcome
	if m.state.Paused || m.state.GameOver() {
		return out
	}
	m.checkInvariants()

	m.state.Time += dt
	m.played += dt

	cmd := m.source.Poll()
	if cmd.Switch && !m.prevSwitch {
		m.switchControl()
	}
	m.prevSwitch = cmd.Switch

	ci := m.state.Controlled
	c := &m.players[ci]
	mult := 1.0
	if cmd.Sprint {
		mult = m.cfg.Rules.SprintMultiplier
	}
	c.Velocity.X = cmd.MoveX * c.Speed * mult
	c.Velocity.Z = -cmd.MoveY * c.Speed * mult

	if m.physics.Touching(m.ball, *c) {
		m.takeBall(ci)
		if cmd.Pass {
			m.pass(ci)
		}
		if cmd.Shoot {
			dir := core.V3(0, 0, c.Team.AttackDir())
			if m.physics.Shoot(&m.ball, dir, m.cfg.Rules.ShotPower) {
				m.logger.Debug("shot", "match", m.id, "player", c.ID)
			}
		}
	} else if cmd.Tackle {
		m.tackle(ci)
	}

	effort := m.difficulty.Effort(1, m.state.Score[m.controlledTeam], int(m.played))
	for i := range m.players {
		if i == ci {
			continue
		}
		p := &m.players[i]
		if m.passiveAway && p.Team == TeamAway {
			continue
		}
		e := 1.0
		if p.Team != m.controlledTeam {
			e = effort
		}
		d := Decide(*p, m.ball.Position, m.cfg.Decision, e, m.pursuing[i])
		m.pursuing[i] = d.Intent == IntentPursue
		if d.Intent != IntentIdle {
			p.Velocity.X = d.Velocity.X
			p.Velocity.Z = d.Velocity.Z
		}
	}
	for i := range m.players {
		m.physics.UpdatePlayer(&m.players[i], dt)
	}
	// Other players only pick up a loose ball; taking it off someone
	// needs a tackle or a kick.
	for i := range m.players {
		if m.ball.HasOwner() {
			break
		}
		if i != ci && m.physics.Touching(m.ball, m.players[i]) {
			m.takeBall(i)
		}
	}

	m.physics.UpdateBall(&m.ball, dt)

	if g := m.physics.CheckGoal(m.ball); g != GoalNone {
		out.Goal = g
		m.state.Score[g.Scorer()]++
		m.logger.Info("goal", "match", m.id, "team", g.Scorer(),
			"home", m.state.Score[TeamHome], "away", m.state.Score[TeamAway])
		m.resetPositions()
	}

	if !m.untimed && m.state.Time >= m.cfg.Rules.HalfLength {
		switch m.state.Phase {
		case PhaseFirstHalf:
			m.state.Phase = PhaseSecondHalf
			m.state.Time = 0
			m.resetPositions()
			out.HalfTime = true
			m.logger.Info("half time", "match", m.id,
				"home", m.state.Score[TeamHome], "away", m.state.Score[TeamAway])
		case PhaseSecondHalf:
			m.state.Phase = PhaseFullTime
			out.FullTime = true
			m.logger.Info("full time", "match", m.id,
				"home", m.state.Score[TeamHome], "away", m.state.Score[TeamAway])
		}
	}
	return out
}

func (m *Match) takeBall(i int) {
	m.ball.Owner = m.players[i].ID
	m.state.Possession = m.players[i].Team
}

func (m *Match) pass(from int) {
	mate := m.nearestTeammate(from)
	if mate < 0 {
		return
	}
	src, dst := m.players[from], m.players[mate]
	if m.physics.Pass(&m.ball, src.Position, dst.Position, m.cfg.Rules.PassPower) {
		m.logger.Debug("pass", "match", m.id, "from", src.ID, "to", dst.ID)
	}
}

// nearestTeammate returns the index of the closest player on the same
// team, or -1 when the player has no teammates.
func (m *Match) nearestTeammate(from int) int {
	best, bestDist := -1, math.Inf(1)
	origin := m.players[from]
	for i, p := range m.players {
		if i == from || p.Team != origin.Team {
			continue
		}
		if d := p.Position.Dist(origin.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// tackle wins the ball from an opponent who owns it and is close enough.
func (m *Match) tackle(ci int) {
	if !m.ball.HasOwner() {
		return
	}
	owner := m.playerIndex(m.ball.Owner)
	c := m.players[ci]
	if owner < 0 || m.players[owner].Team == c.Team {
		return
	}
	if !m.physics.Within(m.ball, c, m.cfg.Rules.TackleRadius) {
		return
	}
	m.ball.Velocity = core.Vec3{}
	m.takeBall(ci)
	m.logger.Debug("tackle", "match", m.id, "player", c.ID, "from", m.players[owner].ID)
}

// switchControl hands control to the teammate nearest the ball.
func (m *Match) switchControl() {
	cur := m.state.Controlled
	best, bestDist := -1, math.Inf(1)
	for i, p := range m.players {
		if i == cur || p.Team != m.controlledTeam {
			continue
		}
		if d := p.Position.Dist(m.ball.Position); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	m.state.Controlled = best
	m.pursuing[best] = false
	m.logger.Debug("switch", "match", m.id, "from", m.players[cur].ID, "to", m.players[best].ID)
}

func (m *Match) playerIndex(id string) int {
	for i, p := range m.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// TogglePause flips the pause flag. It has no effect after full time.
func (m *Match) TogglePause() {
	if m.state.GameOver() {
		return
	}
	m.state.Paused = !m.state.Paused
	m.logger.Debug("pause", "match", m.id, "paused", m.state.Paused)
}

// ID returns the match identifier used in logs.
func (m *Match) ID() string {
	return m.id
}

// Field returns the pitch geometry.
func (m *Match) Field() Field {
	return m.field
}

// State returns a copy of the match state.
func (m *Match) State() MatchState {
	return m.state
}

// Ball returns a copy of the ball.
func (m *Match) Ball() Ball {
	return m.ball
}

// Players returns copies of all players, home side first.
func (m *Match) Players() []PlayerView {
	out := make([]PlayerView, len(m.players))
	for i, p := range m.players {
		out[i] = PlayerView{Player: p, Controlled: i == m.state.Controlled}
	}
	return out
}
