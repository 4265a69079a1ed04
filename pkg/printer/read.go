package printer

import (
	"strings"

	"github.com/rubiojr/loggedprint/pkg/logstore"
)

// NumberOfLoggedLines returns the number of entries in the store, including
// entries of other printers sharing it.
func (p *Printer) NumberOfLoggedLines() int {
	return p.Store().Len()
}

// UnreadCount returns the number of entries appended since the last reset.
func (p *Printer) UnreadCount() int {
	return p.Store().Unread()
}

// ReadLogInterval returns the entries from start to finish (both inclusive),
// one per line, each followed by a newline. It returns false when the range
// is invalid or no entry survives the read filters.
func (p *Printer) ReadLogInterval(start, finish int) (string, bool) {
	cfg, store := p.readState()
	return readRange(store.All(), cfg, start, finish)
}

// ReadAllLog reads every entry in the store. With ZeroUnreadAfterReadAll the
// unread counter is reset first, whether or not anything is read.
func (p *Printer) ReadAllLog() (string, bool) {
	cfg, store := p.readState()
	if cfg.ZeroUnreadAfterReadAll {
		store.ResetUnread()
	}
	entries := store.All()
	return readRange(entries, cfg, 0, len(entries)-1)
}

// ReadUnreadLog reads the entries appended since the unread counter was last
// reset and resets it.
func (p *Printer) ReadUnreadLog() (string, bool) {
	cfg, store := p.readState()
	unread := store.ResetUnread()
	entries := store.All()
	return readRange(entries, cfg, len(entries)-unread, len(entries)-1)
}

// CompleteLog returns every entry of the store unfiltered. It never returns nil.
func (p *Printer) CompleteLog() []logstore.Entry {
	entries := p.Store().All()
	if entries == nil {
		return []logstore.Entry{}
	}
	return entries
}

// ClearLog empties the store and resets the unread counter.
func (p *Printer) ClearLog() {
	p.Store().Clear()
}

func (p *Printer) readState() (Config, logstore.Store) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg, p.store
}

func readRange(entries []logstore.Entry, cfg Config, start, finish int) (string, bool) {
	if start < 0 || finish >= len(entries) || start > finish {
		return "", false
	}

	var b strings.Builder
	for _, e := range entries[start : finish+1] {
		if !cfg.ReadLoggedLinesFromAllPrinters && e.PrinterID != cfg.PrinterID {
			continue
		}
		if !cfg.ReadLoggedDebugLines && e.IsDebug {
			continue
		}
		b.WriteString(e.Line)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}
