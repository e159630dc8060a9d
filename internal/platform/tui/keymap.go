package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report key presses but never releases. A direction stays held
// while presses keep arriving: the first press covers the keyboard's
// initial repeat delay, later repeats extend the hold by a shorter window.
const (
	DefaultFirstHold = 550 * time.Millisecond
	DefaultRepeat    = 250 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to game actions and
// tracks the held horizontal direction.
type KeyMapper struct {
	firstHold time.Duration
	repeat    time.Duration
	moveX     int
	until     time.Time
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultFirstHold, DefaultRepeat)
}

// NewKeyMapperWithHold creates a key mapper with custom hold windows.
func NewKeyMapperWithHold(firstHold, repeat time.Duration) *KeyMapper {
	return &KeyMapper{firstHold: firstHold, repeat: repeat}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "down", "s":
		return core.ActionStop, false
	case " ", "up", "w":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "g":
		return core.ActionDeveloper, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message received at now.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, now time.Time) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionLeft:
		km.press(-1, now)
	case core.ActionRight:
		km.press(1, now)
	case core.ActionStop:
		km.Release()
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

func (km *KeyMapper) press(dir int, now time.Time) {
	if dir == km.moveX && now.Before(km.until) {
		km.until = now.Add(km.repeat)
		return
	}
	km.moveX = dir
	km.until = now.Add(km.firstHold)
}

// Release drops the held direction.
func (km *KeyMapper) Release() {
	km.moveX = 0
	km.until = time.Time{}
}

// MoveX returns the held direction at now: -1, 0 or +1.
func (km *KeyMapper) MoveX(now time.Time) int {
	if km.moveX != 0 && !now.Before(km.until) {
		km.Release()
	}
	return km.moveX
}
