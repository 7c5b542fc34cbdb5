package editor

import "strings"

const defaultHistoryLimit = 1000

// History is the in-memory entry store the dispatcher navigates with the
// up/down keys.
//
// Entries arrive two ways: Add, for the session driver after a submitted
// line, and Queue, safe from any goroutine; queued entries become visible
// when Update drains them, which the dispatcher guarantees happens before
// every event, so navigation never observes a half-updated list.
type History struct {
	entries  []string // oldest first
	limit    int
	incoming chan string

	// Navigation state. anchor is the buffer content when navigation
	// started; matches are entries sharing that prefix.
	active bool
	pos    int
	anchor string
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{
		limit:    limit,
		incoming: make(chan string, 64),
	}
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Add appends an entry, dropping empty lines, consecutive duplicates, and
// the oldest entries beyond the limit. It resets any navigation in
// progress.
func (h *History) Add(entry string) {
	h.ResetNavigation()
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
}

// Queue hands an entry to the history from another goroutine. The entry is
// dropped if the feed buffer is full; history is best-effort, not a log.
func (h *History) Queue(entry string) {
	select {
	case h.incoming <- entry:
	default:
	}
}

// Update drains queued entries into the store. It never blocks; with an
// empty feed it is a no-op.
func (h *History) Update() {
	for {
		select {
		case entry := <-h.incoming:
			h.Add(entry)
		default:
			return
		}
	}
}

// ResetNavigation forgets the navigation cursor, so the next SearchNext
// anchors on whatever the buffer holds then. The dispatcher calls it after
// any buffer edit.
func (h *History) ResetNavigation() {
	h.active = false
	h.pos = 0
	h.anchor = ""
}

// SearchNext returns the next older entry matching the anchored text (the
// buffer content when navigation began). The first call anchors on current.
func (h *History) SearchNext(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.active {
		h.active = true
		h.anchor = current
		h.pos = len(h.entries)
	}
	for i := h.pos - 1; i >= 0; i-- {
		if strings.HasPrefix(h.entries[i], h.anchor) {
			h.pos = i
			return h.entries[i], true
		}
	}
	return "", false
}

// SearchPrevious returns the next newer matching entry. Stepping past the
// newest match restores the anchored text once and ends navigation.
func (h *History) SearchPrevious(string) (string, bool) {
	if !h.active {
		return "", false
	}
	for i := h.pos + 1; i < len(h.entries); i++ {
		if strings.HasPrefix(h.entries[i], h.anchor) {
			h.pos = i
			return h.entries[i], true
		}
	}
	anchor := h.anchor
	h.ResetNavigation()
	return anchor, true
}
