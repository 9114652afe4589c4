// Package registry provides a global registry of display backends.
// Backends register themselves in init() functions, allowing the CLI to
// pick one by name without importing backend libraries directly.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
)

// Game is the interface a backend drives.
// Games contain pure logic with no backend dependencies. The backend handles
// input mapping, timing, and drawing.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "heli").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// PlayfieldSize returns the simulated area the draw list refers to.
	PlayfieldSize() (width, height int)

	// Reset initializes the game state. Called once before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Draw fills dst with the draw commands for the current state.
	Draw(dst *core.DrawList)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// RunOptions are passed to a backend when it starts.
type RunOptions struct {
	Runtime core.RuntimeConfig
	Assets  config.HeliAssets
	Logger  *log.Logger

	// LogOutput is where Logger writes. Backends that own the terminal may
	// redirect Logger while running and must restore it to LogOutput.
	LogOutput io.Writer
}

// Backend presents a game and feeds it input until the user quits or ctx ends.
// Run returns nil on a normal quit.
type Backend interface {
	ID() string
	Title() string
	Run(ctx context.Context, game Game, opts RunOptions) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a backend; used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(factories, id)
	delete(titles, id)
}
