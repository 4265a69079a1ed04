package logstore

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryAppendAndAll(t *testing.T) {
	s := NewMemory()
	if got := s.All(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	s.Append(NewEntry("first", false, "a", time.Time{}))
	s.Append(NewEntry("second", true, "b", time.Time{}))
	s.Append(NewEntry("third", false, "a", time.Time{}))

	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	if s.Unread() != 3 {
		t.Fatalf("expected 3 unread, got %d", s.Unread())
	}

	all := s.All()
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if all[i].Line != w {
			t.Errorf("entry %d: expected %q, got %q", i, w, all[i].Line)
		}
	}
	if !all[1].IsDebug || all[1].PrinterID != "b" {
		t.Errorf("unexpected metadata on entry 1: %+v", all[1])
	}

	// Mutating the copy must not reach the store.
	all[0].Line = "changed"
	if e, _ := s.Entry(0); e.Line != "first" {
		t.Errorf("store entry modified through All(): %q", e.Line)
	}
}

func TestMemoryEntryBounds(t *testing.T) {
	s := NewMemory()
	s.Append(NewEntry("only", false, "a", time.Time{}))

	if _, ok := s.Entry(-1); ok {
		t.Error("Entry(-1) should fail")
	}
	if _, ok := s.Entry(1); ok {
		t.Error("Entry(1) should fail on a single entry store")
	}
	if e, ok := s.Entry(0); !ok || e.Line != "only" {
		t.Errorf("Entry(0) = %+v, %v", e, ok)
	}
}

func TestMemoryClear(t *testing.T) {
	s := NewMemory()
	for i := 0; i < 5; i++ {
		s.Append(NewEntry("line", false, "a", time.Time{}))
	}
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("expected empty store after Clear, got %d", s.Len())
	}
	if s.Unread() != 0 {
		t.Fatalf("expected unread reset after Clear, got %d", s.Unread())
	}

	s.Append(NewEntry("after", false, "a", time.Time{}))
	if s.Len() != 1 || s.Unread() != 1 {
		t.Fatalf("expected 1/1 after append, got %d/%d", s.Len(), s.Unread())
	}
}

func TestMemoryResetUnread(t *testing.T) {
	s := NewMemory()
	s.Append(NewEntry("a", false, "p", time.Time{}))
	s.Append(NewEntry("b", false, "p", time.Time{}))

	if prev := s.ResetUnread(); prev != 2 {
		t.Fatalf("expected previous unread 2, got %d", prev)
	}
	if s.Unread() != 0 {
		t.Fatalf("expected 0 unread, got %d", s.Unread())
	}
	if s.Len() != 2 {
		t.Fatalf("ResetUnread must not drop entries, got len %d", s.Len())
	}
	if prev := s.ResetUnread(); prev != 0 {
		t.Fatalf("expected previous unread 0, got %d", prev)
	}
}

func TestMemoryConcurrentAppend(t *testing.T) {
	s := NewMemory()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Append(NewEntry("x", false, "p", time.Time{}))
			}
		}()
	}
	wg.Wait()

	if s.Len() != 800 || s.Unread() != 800 {
		t.Fatalf("expected 800/800, got %d/%d", s.Len(), s.Unread())
	}
}

func TestNewEntryPrintTime(t *testing.T) {
	if NewEntry("x", false, "p", time.Time{}).HasPrintTime() {
		t.Error("zero time should leave the print time absent")
	}
	now := time.Date(2024, 3, 5, 9, 7, 2, 0, time.UTC)
	e := NewEntry("x", false, "p", now)
	if !e.HasPrintTime() || !e.PrintTime.Equal(now) {
		t.Errorf("expected print time %v, got %v", now, e.PrintTime)
	}
}
