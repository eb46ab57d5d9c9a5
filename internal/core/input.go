package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionBoost          // Space, Shift+direction
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionChoice1        // 1 - first answer
	ActionChoice2        // 2 - second answer
	ActionChoice3        // 3 - third answer
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionBoost:   "Boost",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionChoice1: "Choice1",
	ActionChoice2: "Choice2",
	ActionChoice3: "Choice3",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
//
// Actions holds edge-triggered presses that happened since the previous tick.
// Held holds actions whose key is considered down for this tick. Terminals never
// report key releases, so the platform derives Held from key repeat windows.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the action is held or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Has(a) || (f.Held != nil && f.Held[a])
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Empty reports whether nothing is pressed or held.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Held) == 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// PressedList returns the pressed actions in ascending order.
func (f InputFrame) PressedList() []Action {
	return sortedActions(f.Actions)
}

// HeldList returns the held actions in ascending order.
func (f InputFrame) HeldList() []Action {
	return sortedActions(f.Held)
}

func sortedActions(m map[Action]bool) []Action {
	out := make([]Action, 0, len(m))
	for a, on := range m {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
