package tui

import (
	"time"

	"github.com/vovakirdan/alien-attack/internal/core"
)

// Default hold windows. Terminals report presses and auto-repeats but no
// releases, so a key counts as held until its window runs out.
const (
	DefaultHoldFirst  = 200 * time.Millisecond
	DefaultHoldRepeat = 120 * time.Millisecond
)

// KeyHold tracks held actions across simulation ticks.
type KeyHold struct {
	first   int // Ticks a fresh press stays held
	repeat  int // Ticks an auto-repeat extends the hold
	tick    int
	expires map[core.Action]int
}

// NewKeyHold converts the hold windows to ticks at tickRate.
// Every window lasts at least one tick.
func NewKeyHold(tickRate int, first, repeat time.Duration) *KeyHold {
	if tickRate <= 0 {
		tickRate = 60
	}
	toTicks := func(d time.Duration) int {
		return max(int(d*time.Duration(tickRate)/time.Second), 1)
	}
	return &KeyHold{
		first:   toTicks(first),
		repeat:  toTicks(repeat),
		expires: make(map[core.Action]int),
	}
}

// Press records a key press or auto-repeat for a.
func (h *KeyHold) Press(a core.Action) {
	window := h.first
	if h.Held(a) {
		window = h.repeat
	}
	h.expires[a] = max(h.expires[a], h.tick+window)
}

// Held reports whether a is held on the current tick.
func (h *KeyHold) Held(a core.Action) bool {
	return h.tick < h.expires[a]
}

// Fill sets every held action on frame.
func (h *KeyHold) Fill(frame *core.InputFrame) {
	for a := range h.expires {
		if h.Held(a) {
			frame.Set(a)
		}
	}
}

// Advance moves to the next tick and forgets expired holds.
func (h *KeyHold) Advance() {
	h.tick++
	for a, until := range h.expires {
		if h.tick >= until {
			delete(h.expires, a)
		}
	}
}

// Release drops every hold, e.g. when the window loses focus.
func (h *KeyHold) Release() {
	clear(h.expires)
}
