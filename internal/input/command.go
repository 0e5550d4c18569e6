// Package input turns held keys and pointer contacts into the per-frame
// Command the match polls. It knows nothing about terminals or Bubble Tea;
// hosts feed it edge-triggered down/up and pointer start/move/end events.
package input

// Command is the normalized control snapshot for one frame.
type Command struct {
	MoveX  float64 // -1 (left) .. 1 (right)
	MoveY  float64 // -1 (down) .. 1 (up)
	Sprint bool
	Pass   bool
	Shoot  bool
	Tackle bool
	Switch bool // Switch the controlled player
}

// IsZero reports whether the command carries no intent at all.
func (c Command) IsZero() bool {
	return c == Command{}
}

// Source is anything that can produce a Command on demand.
type Source interface {
	Poll() Command
}

// Key names a discrete input. Names are lower case and match what a
// browser-style key event would report.
type Key string

const (
	KeyW          Key = "w"
	KeyA          Key = "a"
	KeyS          Key = "s"
	KeyD          Key = "d"
	KeyArrowUp    Key = "arrowup"
	KeyArrowDown  Key = "arrowdown"
	KeyArrowLeft  Key = "arrowleft"
	KeyArrowRight Key = "arrowright"
	KeyShift      Key = "shift"
	KeyQ          Key = "q"
	KeyE          Key = "e"
	KeySpace      Key = " "
	KeyEnter      Key = "enter"
	KeyX          Key = "x"
	KeyC          Key = "c"
	KeyTab        Key = "tab"
)
