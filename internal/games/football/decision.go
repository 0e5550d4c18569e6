package football

import (
	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
)

// Intent is what a non-controlled player decided to do this tick.
type Intent int

const (
	IntentIdle   Intent = iota // Leave velocity alone, friction slows the player
	IntentPursue               // Run at the ball
	IntentReturn               // Jog back to the team's home point
)

func (i Intent) String() string {
	switch i {
	case IntentPursue:
		return "pursue"
	case IntentReturn:
		return "return"
	default:
		return "idle"
	}
}

// Decision is the output of Decide. Velocity is only meaningful when
// Intent is not IntentIdle.
type Decision struct {
	Intent   Intent
	Velocity core.Vec3
}

// HomePoint returns the spot a team falls back to when the ball is far.
// Home defends the -Z end.
func HomePoint(t Team, cfg config.DecisionConfig) core.Vec3 {
	return core.V3(0, 0, -t.AttackDir()*cfg.HomeDepth)
}

// Decide runs the pursue-or-return heuristic for one player. Effort scales
// both speed fractions (1 is the configured baseline). When pursuing is
// true the player keeps chasing until the ball leaves the pursuit radius
// widened by the hysteresis band.
func Decide(p Player, ball core.Vec3, cfg config.DecisionConfig, effort float64, pursuing bool) Decision {
	toBall := ball.Sub(p.Position)
	toBall.Y = 0

	radius := cfg.PursuitRadius
	if pursuing {
		radius += cfg.PursuitHysteresis
	}

	if toBall.HorizontalLen() < radius {
		dir, ok := toBall.Normalize()
		if !ok {
			return Decision{Intent: IntentPursue}
		}
		return Decision{
			Intent:   IntentPursue,
			Velocity: dir.Scale(p.Speed * cfg.PursuitFraction * effort),
		}
	}

	toHome := HomePoint(p.Team, cfg).Sub(p.Position)
	toHome.Y = 0
	if toHome.HorizontalLen() <= cfg.HomeTolerance {
		return Decision{Intent: IntentIdle}
	}
	dir, _ := toHome.Normalize()
	return Decision{
		Intent:   IntentReturn,
		Velocity: dir.Scale(p.Speed * cfg.ReturnFraction * effort),
	}
}
