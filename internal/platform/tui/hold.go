package tui

import (
	"time"

	"github.com/vovakirdan/rooftops/internal/core"
)

// Default hold windows, matching the input section of the game config.
const (
	DefaultHoldWindow   = 500 * time.Millisecond
	DefaultRepeatWindow = 120 * time.Millisecond
)

// HoldTracker emulates held keys on terminals that only report presses.
//
// A first press holds the action for the hold window, long enough to cover the
// terminal's auto-repeat delay. Once a repeat arrives inside the window the key is
// known to be held down, and each further repeat only extends it by the shorter
// repeat window, so letting go is noticed quickly.
type HoldTracker struct {
	hold   time.Duration
	repeat time.Duration
	keys   map[core.Action]heldKey
}

type heldKey struct {
	until     time.Time
	repeating bool
}

// NewHoldTracker creates a tracker with the given windows. Non-positive values
// fall back to the defaults.
func NewHoldTracker(hold, repeat time.Duration) *HoldTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	if repeat <= 0 {
		repeat = DefaultRepeatWindow
	}
	return &HoldTracker{
		hold:   hold,
		repeat: repeat,
		keys:   make(map[core.Action]heldKey),
	}
}

// Press records a key press (or auto-repeat) for action at now.
// Pressing a direction releases the opposite one.
func (h *HoldTracker) Press(action core.Action, now time.Time) {
	switch action {
	case core.ActionLeft:
		h.Release(core.ActionRight)
	case core.ActionRight:
		h.Release(core.ActionLeft)
	}

	k, ok := h.keys[action]
	if ok && now.Before(k.until) {
		k.repeating = true
		k.until = now.Add(h.repeat)
	} else {
		k = heldKey{until: now.Add(h.hold)}
	}
	h.keys[action] = k
}

// Release forgets an action immediately.
func (h *HoldTracker) Release(action core.Action) {
	delete(h.keys, action)
}

// Held reports whether action is still considered held at now.
func (h *HoldTracker) Held(action core.Action, now time.Time) bool {
	k, ok := h.keys[action]
	return ok && now.Before(k.until)
}

// Apply sets every action still held at now on the frame and drops expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for action, k := range h.keys {
		if now.Before(k.until) {
			frame.Set(action)
		} else {
			delete(h.keys, action)
		}
	}
}

// Reset releases every action.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
