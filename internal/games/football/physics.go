package football

import (
	"math"

	"github.com/vovakirdan/kickoff/internal/config"
	"github.com/vovakirdan/kickoff/internal/core"
)

// GoalResult says which side, if any, a ball position scores for.
type GoalResult int

const (
	GoalNone GoalResult = iota
	GoalHome            // Ball crossed the far (+Z) line, home scores
	GoalAway            // Ball crossed the near (-Z) line, away scores
)

// String returns a short label for logs.
func (g GoalResult) String() string {
	switch g {
	case GoalHome:
		return "home"
	case GoalAway:
		return "away"
	default:
		return "none"
	}
}

// Scorer returns the team credited with the goal. Only meaningful when g
// is not GoalNone.
func (g GoalResult) Scorer() Team {
	if g == GoalAway {
		return TeamAway
	}
	return TeamHome
}

// Resolver integrates ball and player motion and applies kicks. It holds
// no per-match state and is safe to copy.
type Resolver struct {
	field Field
	cfg   config.PhysicsConfig
}

// NewResolver creates a resolver bound to a pitch.
func NewResolver(field Field, cfg config.PhysicsConfig) Resolver {
	return Resolver{field: field, cfg: cfg}
}

// UpdateBall advances the ball by dt seconds: gravity while airborne,
// position integration, ground bounce, rolling friction and wall bounce.
func (r Resolver) UpdateBall(b *Ball, dt float64) {
	c := r.cfg
	if b.Position.Y > c.BallGroundHeight {
		b.Velocity.Y += c.Gravity * dt
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))

	if b.Position.Y <= c.BallGroundHeight {
		b.Position.Y = c.BallGroundHeight
		b.Velocity.Y = math.Abs(b.Velocity.Y) * c.GroundRestitution
		if math.Abs(b.Velocity.Y) < c.BounceStopSpeed {
			b.Velocity.Y = 0
		}
	}

	b.Velocity.X *= c.BallFriction
	b.Velocity.Z *= c.BallFriction
	if math.Abs(b.Velocity.X) < c.StopSpeed {
		b.Velocity.X = 0
	}
	if math.Abs(b.Velocity.Z) < c.StopSpeed {
		b.Velocity.Z = 0
	}

	hw, hl := r.field.HalfWidth(), r.field.HalfLength()
	if math.Abs(b.Position.X) > hw {
		b.Position.X = math.Copysign(hw, b.Position.X)
		b.Velocity.X *= -c.WallRestitution
	}
	if math.Abs(b.Position.Z) > hl {
		b.Position.Z = math.Copysign(hl, b.Position.Z)
		b.Velocity.Z *= -c.WallRestitution
	}
}

// UpdatePlayer integrates a player on the ground plane, applies friction
// and keeps them inside the pitch minus the boundary inset.
func (r Resolver) UpdatePlayer(p *Player, dt float64) {
	c := r.cfg
	p.Position.X += p.Velocity.X * dt
	p.Position.Z += p.Velocity.Z * dt

	p.Velocity.X *= c.PlayerFriction
	p.Velocity.Z *= c.PlayerFriction

	maxX := r.field.HalfWidth() - c.BoundaryInset
	maxZ := r.field.HalfLength() - c.BoundaryInset
	p.Position.X = core.ClampF(p.Position.X, -maxX, maxX)
	p.Position.Z = core.ClampF(p.Position.Z, -maxZ, maxZ)
}

// Touching reports whether the player is within contact distance of the
// ball, measured in 3D.
func (r Resolver) Touching(b Ball, p Player) bool {
	return r.Within(b, p, r.cfg.ContactRadius)
}

// Within reports whether the ball is strictly closer than radius.
func (r Resolver) Within(b Ball, p Player, radius float64) bool {
	return b.Position.Dist(p.Position) < radius
}

// Kick sets the ball velocity along a unit direction. Only a fraction of
// the vertical component is kept. A kick always frees the ball.
func (r Resolver) Kick(b *Ball, dir core.Vec3, power float64) {
	b.Velocity = core.V3(
		dir.X*power,
		dir.Y*power*r.cfg.KickLift,
		dir.Z*power,
	)
	b.Owner = ""
}

// Pass kicks the ball from one point toward another along the ground
// plane. It returns false and leaves the ball untouched when the points
// coincide horizontally.
func (r Resolver) Pass(b *Ball, from, to core.Vec3, power float64) bool {
	diff := to.Sub(from)
	diff.Y = 0
	dir, ok := diff.Normalize()
	if !ok {
		return false
	}
	r.Kick(b, dir, power)
	return true
}

// Shoot launches the ball along a unit direction with added lift. It
// returns false for a zero direction.
func (r Resolver) Shoot(b *Ball, dir core.Vec3, power float64) bool {
	if dir.IsZero() {
		return false
	}
	b.Velocity = core.V3(
		dir.X*power,
		math.Abs(dir.Y)*power*r.cfg.ShotLiftScale+r.cfg.ShotLift,
		dir.Z*power,
	)
	b.Owner = ""
	return true
}

// CheckGoal reports whether the ball sits over a goal line, inside the
// mouth and under the crossbar. The ball is clamped to the line by
// UpdateBall, so reaching the line counts.
func (r Resolver) CheckGoal(b Ball) GoalResult {
	p := b.Position
	if math.Abs(p.X) >= r.field.GoalWidth/2 || p.Y >= r.field.GoalHeight {
		return GoalNone
	}
	hl := r.field.HalfLength()
	switch {
	case p.Z >= hl:
		return GoalHome
	case p.Z <= -hl:
		return GoalAway
	default:
		return GoalNone
	}
}
