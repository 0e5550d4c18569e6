// Package registry provides a global registry for match mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/kickoff/internal/core"
	"github.com/vovakirdan/kickoff/internal/input"
)

// Game is the interface every match mode implements.
// Modes contain pure simulation logic with no Bubble Tea dependency.
// The platform handles device events, timing, and colour output.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "match", "training").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g., "Football Match").
	Title() string

	// Reset builds a fresh match.
	// Called once at start and again when restarting after full time.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt seconds.
	// Platform actions (pause) arrive in the InputFrame; movement and
	// kicks are read from Controls().
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current frame into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the scoreboard summary.
	State() core.GameState

	// Controls returns the aggregator the host feeds device events into.
	// It is replaced on Reset, so hosts must not cache it.
	Controls() *input.Aggregator
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new mode by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
