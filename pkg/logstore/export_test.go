package logstore

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func sampleEntries() []Entry {
	at := time.Date(2022, 1, 31, 23, 5, 9, 0, time.UTC)
	return []Entry{
		NewEntry("[App] hello", false, "app", time.Time{}),
		NewEntry("[App] [Debug] details", true, "app", at),
		NewEntry("raw text\nwith newline", false, "other", time.Time{}),
	}
}

func TestWriteJSONOmitsMissingPrintTime(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSON lines, got %d: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[0], "print_time") {
		t.Errorf("entry without time should not carry print_time: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"print_time":"2022-01-31T23:05:09Z"`) {
		t.Errorf("entry with time should carry print_time: %s", lines[1])
	}
	if !strings.Contains(lines[1], `"is_debug":true`) || !strings.Contains(lines[1], `"printer_id":"app"`) {
		t.Errorf("unexpected encoding: %s", lines[1])
	}
}

func TestReadJSONPreservesOrderAndTime(t *testing.T) {
	var buf bytes.Buffer
	in := sampleEntries()
	if err := WriteJSON(&buf, in); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	out, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	if out[0].PrintTime != nil {
		t.Error("absent print time must stay absent")
	}
	if out[1].PrintTime == nil || !out[1].PrintTime.Equal(*in[1].PrintTime) {
		t.Errorf("print time lost: %v", out[1].PrintTime)
	}
	if out[2].Line != "raw text\nwith newline" {
		t.Errorf("line mangled: %q", out[2].Line)
	}
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}

func TestCompressedExport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCompressed(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteCompressed failed: %v", err)
	}
	if bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Error("compressed output should not contain plain text")
	}

	out, err := ReadCompressed(&buf)
	if err != nil {
		t.Fatalf("ReadCompressed failed: %v", err)
	}
	if len(out) != 3 || out[1].Line != "[App] [Debug] details" {
		t.Fatalf("unexpected entries: %+v", out)
	}

	s := NewMemory()
	Load(s, out)
	if s.Len() != 3 || s.Unread() != 3 {
		t.Fatalf("expected 3/3 after Load, got %d/%d", s.Len(), s.Unread())
	}
}
