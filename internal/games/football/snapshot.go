package football

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kickoff/internal/core"
)

// Snapshot is everything a renderer needs for one frame. It shares no
// memory with the match.
type Snapshot struct {
	ID      string
	Field   Field
	State   MatchState
	Ball    Ball
	Players []PlayerView
}

// Snapshot captures the current frame.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		ID:      m.id,
		Field:   m.field,
		State:   m.state,
		Ball:    m.ball,
		Players: m.Players(),
	}
}

// Controlled returns the user-controlled player. ok is false only for an
// empty roster.
func (s Snapshot) Controlled() (PlayerView, bool) {
	for _, p := range s.Players {
		if p.Controlled {
			return p, true
		}
	}
	return PlayerView{}, false
}

// Clock formats the half clock as m:ss.
func (s Snapshot) Clock() string {
	secs := int(s.State.Time)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Hash returns a simple hash of the positions, score and clock, for
// determinism checks.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.State.Phase)
	h = h*31 + uint64(s.State.Score[TeamHome]) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.State.Score[TeamAway]) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.State.Controlled)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.State.Time)
	mix := func(v core.Vec3) {
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
		h = h*31 + math.Float64bits(v.Z)
	}
	mix(s.Ball.Position)
	mix(s.Ball.Velocity)
	for _, p := range s.Players {
		mix(p.Position)
		mix(p.Velocity)
	}
	return h
}
