package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A
// movement key therefore stays held for a short window after each press:
// long enough on the first press to bridge the auto-repeat delay, shorter
// for repeats so that letting go stops the player quickly.
const (
	initialHold = 350 * time.Millisecond
	repeatHold  = 120 * time.Millisecond
)

// opposite pairs cancel each other's hold window.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// holdable actions are continuous controls rather than one-shot commands.
var holdable = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionBoost: true,
}

// KeyMapper translates Bubble Tea key messages to game actions and tracks
// hold windows for movement keys.
type KeyMapper struct {
	initialTicks int
	repeatTicks  int
	holds        map[core.Action]int // remaining ticks
}

// NewKeyMapper creates a key mapper whose hold windows are sized for the
// given tick rate.
func NewKeyMapper(tickRate int) *KeyMapper {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := func(d time.Duration) int {
		return max(1, int(d*time.Duration(tickRate)/time.Second))
	}
	return &KeyMapper{
		initialTicks: ticks(initialHold),
		repeatTicks:  ticks(repeatHold),
		holds:        make(map[core.Action]int),
	}
}

// MapKey translates a key message to its actions.
// Shifted WASD and shifted arrows move and boost at once.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return []core.Action{core.ActionQuit}, true

	case "w", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "down":
		return []core.Action{core.ActionDown}, false
	case "a", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "right":
		return []core.Action{core.ActionRight}, false
	case "W", "shift+up":
		return []core.Action{core.ActionUp, core.ActionBoost}, false
	case "S", "shift+down":
		return []core.Action{core.ActionDown, core.ActionBoost}, false
	case "A", "shift+left":
		return []core.Action{core.ActionLeft, core.ActionBoost}, false
	case "D", "shift+right":
		return []core.Action{core.ActionRight, core.ActionBoost}, false
	case " ":
		return []core.Action{core.ActionBoost}, false

	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "B", "esc":
		return []core.Action{core.ActionBack}, false
	case "p", "P":
		return []core.Action{core.ActionPause}, false
	case "r", "R":
		return []core.Action{core.ActionRestart}, false
	case "1":
		return []core.Action{core.ActionChoice1}, false
	case "2":
		return []core.Action{core.ActionChoice2}, false
	case "3":
		return []core.Action{core.ActionChoice3}, false
	}

	return nil, false
}

// MapKeyToFrame records a key press in the frame and refreshes hold
// windows. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
		km.press(a)
	}
	return isQuit
}

func (km *KeyMapper) press(a core.Action) {
	if !holdable[a] {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(km.holds, o)
	}
	if left, held := km.holds[a]; held {
		km.holds[a] = max(left, km.repeatTicks)
		return
	}
	km.holds[a] = km.initialTicks
}

// Tick marks every action inside its hold window as held in frame and
// counts the windows down by one tick.
func (km *KeyMapper) Tick(frame *core.InputFrame) {
	for a, left := range km.holds {
		frame.Hold(a)
		if left <= 1 {
			delete(km.holds, a)
		} else {
			km.holds[a] = left - 1
		}
	}
}

// Release drops every hold window.
func (km *KeyMapper) Release() {
	clear(km.holds)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
// Letters are left free for game shortcuts.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
