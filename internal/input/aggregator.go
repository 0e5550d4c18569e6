package input

import (
	"math"
	"strings"
	"sync"

	"github.com/vovakirdan/kickoff/internal/core"
)

// Joystick configures the virtual stick driven by the first active pointer.
type Joystick struct {
	CenterX, CenterY float64 // Screen-space centre, in pixels
	DeadZone         float64 // Distance from centre below which the stick is ignored
	Scale            float64 // Pixels per unit of movement
}

type point struct {
	x, y float64
}

// Aggregator holds the set of currently held keys and active pointers.
// Events may arrive from any goroutine; Poll reads a consistent view.
type Aggregator struct {
	mu       sync.Mutex
	keys     map[Key]struct{}
	pointers map[int]point
	order    []int // Pointer IDs in start order
	stick    Joystick
}

// NewAggregator creates an aggregator with the given joystick settings.
func NewAggregator(stick Joystick) *Aggregator {
	return &Aggregator{
		keys:     make(map[Key]struct{}),
		pointers: make(map[int]point),
		stick:    stick,
	}
}

// SetCenter moves the joystick centre, e.g. after a resize.
func (a *Aggregator) SetCenter(x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stick.CenterX = x
	a.stick.CenterY = y
}

// KeyDown records a key as held. Names are case-insensitive.
func (a *Aggregator) KeyDown(k Key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys[normalize(k)] = struct{}{}
}

// KeyUp releases a held key. Releasing a key that is not held is a no-op.
func (a *Aggregator) KeyUp(k Key) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.keys, normalize(k))
}

// Held reports whether a key is currently down.
func (a *Aggregator) Held(k Key) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.keys[normalize(k)]
	return ok
}

// PointerStart registers a new pointer contact.
func (a *Aggregator) PointerStart(id int, x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.track(id, x, y)
}

// PointerMove updates a contact. An unknown ID is treated as a new contact.
func (a *Aggregator) PointerMove(id int, x, y float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.track(id, x, y)
}

// PointerEnd removes a contact.
func (a *Aggregator) PointerEnd(id int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.pointers[id]; !ok {
		return
	}
	delete(a.pointers, id)
	for i, pid := range a.order {
		if pid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Reset drops every held key and pointer.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.keys)
	clear(a.pointers)
	a.order = a.order[:0]
}

func (a *Aggregator) track(id int, x, y float64) {
	if _, ok := a.pointers[id]; !ok {
		a.order = append(a.order, id)
	}
	a.pointers[id] = point{x: x, y: y}
}

// Poll builds the command for the current input set. It does not mutate
// anything, so repeated calls without new events return the same command.
func (a *Aggregator) Poll() Command {
	a.mu.Lock()
	defer a.mu.Unlock()

	var cmd Command

	// Later checks win, so S beats W and D beats A when both are held.
	if a.held(KeyW) || a.held(KeyArrowUp) {
		cmd.MoveY = 1
	}
	if a.held(KeyS) || a.held(KeyArrowDown) {
		cmd.MoveY = -1
	}
	if a.held(KeyA) || a.held(KeyArrowLeft) {
		cmd.MoveX = -1
	}
	if a.held(KeyD) || a.held(KeyArrowRight) {
		cmd.MoveX = 1
	}

	cmd.Sprint = a.held(KeyShift)
	cmd.Pass = a.held(KeyQ) || a.held(KeyE)
	cmd.Shoot = a.held(KeySpace) || a.held(KeyEnter)
	cmd.Tackle = a.held(KeyX) || a.held(KeyC)
	cmd.Switch = a.held(KeyTab)

	if len(a.order) > 0 {
		p := a.pointers[a.order[0]]
		dx := p.x - a.stick.CenterX
		dy := p.y - a.stick.CenterY
		if math.Hypot(dx, dy) > a.stick.DeadZone && a.stick.Scale > 0 {
			cmd.MoveX = core.ClampF(dx/a.stick.Scale, -1, 1)
			cmd.MoveY = core.ClampF(-dy/a.stick.Scale, -1, 1)
		}
	}

	return cmd
}

func (a *Aggregator) held(k Key) bool {
	_, ok := a.keys[k]
	return ok
}

func normalize(k Key) Key {
	return Key(strings.ToLower(string(k)))
}
