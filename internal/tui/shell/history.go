// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     shell
// Description: Bounded input history with up/down navigation
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package shell

// History keeps the most recent input lines. pos is -1 while no history
// entry is being shown.
type History struct {
	items []string
	max   int
	pos   int
	draft string
}

// NewHistory creates a history holding at most max lines
func NewHistory(max int) *History {
	if max <= 0 {
		max = 100
	}
	return &History{max: max, pos: -1}
}

// Add appends a line unless it repeats the previous one, and ends navigation
func (h *History) Add(line string) {
	if line != "" && (len(h.items) == 0 || h.items[len(h.items)-1] != line) {
		h.items = append(h.items, line)
		if len(h.items) > h.max {
			h.items = h.items[len(h.items)-h.max:]
		}
	}
	h.pos = -1
	h.draft = ""
}

// Prev moves to the older entry. current is kept as the draft when
// navigation starts so that Next can restore it.
func (h *History) Prev(current string) (string, bool) {
	if len(h.items) == 0 {
		return current, false
	}
	switch {
	case h.pos == -1:
		h.draft = current
		h.pos = len(h.items) - 1
	case h.pos > 0:
		h.pos--
	}
	return h.items[h.pos], true
}

// Next moves to the newer entry, or back to the draft past the newest
func (h *History) Next() (string, bool) {
	if h.pos == -1 {
		return "", false
	}
	if h.pos < len(h.items)-1 {
		h.pos++
		return h.items[h.pos], true
	}
	h.pos = -1
	return h.draft, true
}

// Items returns a copy of the stored lines, oldest first
func (h *History) Items() []string {
	out := make([]string, len(h.items))
	copy(out, h.items)
	return out
}
