package football

import "github.com/vovakirdan/kickoff/internal/core"

// Team identifies one of the two sides. Home is side A, away is side B.
type Team int

const (
	TeamHome Team = iota
	TeamAway
)

// String returns the lower-case team name used in player IDs.
func (t Team) String() string {
	if t == TeamAway {
		return "away"
	}
	return "home"
}

// Label returns the single-letter side label.
func (t Team) Label() string {
	if t == TeamAway {
		return "B"
	}
	return "A"
}

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamAway {
		return TeamHome
	}
	return TeamAway
}

// AttackDir is the sign of the Z direction this team shoots toward.
// Home attacks the far (+Z) goal.
func (t Team) AttackDir() float64 {
	if t == TeamAway {
		return -1
	}
	return 1
}

// Player is a single entity on the pitch.
// Whether a player is user-controlled is tracked by the match, not here.
type Player struct {
	ID       string // Team-scoped, e.g. "home-4"
	Team     Team
	Number   int
	Position core.Vec3
	Velocity core.Vec3
	Stamina  float64 // Reserved
	Speed    float64 // Max speed in units per second
	Skill    float64 // Reserved
}

// PlayerView is a read-only copy of a player handed to renderers.
type PlayerView struct {
	Player
	Controlled bool
}

// Ball is the match ball.
type Ball struct {
	Position core.Vec3
	Velocity core.Vec3
	Spin     core.Vec3 // Not used by the physics
	Owner    string    // ID of the last player to control it, "" when loose
}

// HasOwner reports whether someone touched the ball since the last kick.
func (b Ball) HasOwner() bool {
	return b.Owner != ""
}
