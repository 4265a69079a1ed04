package logstore

import "time"

// Entry is a single recorded print. Entries are never modified once appended.
type Entry struct {
	Line      string     `json:"line"`
	IsDebug   bool       `json:"is_debug"`
	PrinterID string     `json:"printer_id"`
	PrintTime *time.Time `json:"print_time,omitempty"`
}

// NewEntry builds an entry. A zero printTime leaves the timestamp absent.
func NewEntry(line string, isDebug bool, printerID string, printTime time.Time) Entry {
	e := Entry{Line: line, IsDebug: isDebug, PrinterID: printerID}
	if !printTime.IsZero() {
		t := printTime
		e.PrintTime = &t
	}
	return e
}

// HasPrintTime reports whether the entry was recorded with time tracking on.
func (e Entry) HasPrintTime() bool {
	return e.PrintTime != nil
}
