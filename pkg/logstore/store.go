package logstore

import "sync"

// Store holds recorded entries in emission order together with a counter of
// entries appended since the counter was last reset.
//
// Implementations must keep Unread() <= Len() and must make ResetUnread
// atomic with respect to Append.
type Store interface {
	Append(e Entry)
	All() []Entry
	Entry(i int) (Entry, bool)
	Len() int
	Clear()
	Unread() int
	// ResetUnread sets the unread counter to zero and returns its previous value.
	ResetUnread() int
}

// Memory is the default in-memory Store. It is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
	unread  int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(e Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	m.unread++
}

// All returns a copy of every entry, oldest first. The result is never nil.
func (m *Memory) All() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) Entry(i int) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.entries) {
		return Entry{}, false
	}
	return m.entries[i], true
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Clear drops every entry and resets the unread counter.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.unread = 0
}

func (m *Memory) Unread() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.unread
}

func (m *Memory) ResetUnread() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.unread
	m.unread = 0
	return n
}
