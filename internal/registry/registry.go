// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"unicode"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// Game is the interface every game implements.
// Games contain pure logic with no terminal dependencies.
// The platform handles input mapping, timing, persistence and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g. "vortex").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// LeaderboardAware is implemented by games that show saved scores on their title screen.
// The platform pushes the top scores in descending order.
type LeaderboardAware interface {
	SetLeaderboard(scores []int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Key         rune // Single keystroke used by the console menu
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	keys    = make(map[rune]string)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if the ID or console key is already taken.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	if info.Key != 0 {
		info.Key = unicode.ToLower(info.Key)
		if owner, taken := keys[info.Key]; taken {
			panic(fmt.Sprintf("registry: key %q already used by %q", info.Key, owner))
		}
		keys[info.Key] = info.ID
	}

	if info.Title == "" {
		info.Title = f().Title()
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Lookup returns the metadata for a game ID.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// ByKey resolves a console menu keystroke to a game ID (case-insensitive).
func ByKey(key rune) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	id, ok := keys[unicode.ToLower(key)]
	return id, ok
}
