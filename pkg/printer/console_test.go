package printer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsolePlainWritesRenderedLine(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)
	p := New(prefixed("[P]"), WithOutput(c))

	p.Print("a\tb\nc")
	p.Debug("d")

	if got := buf.String(); got != "[P] a\tb\n[P] c\n[P] [Debug] d\n" {
		t.Fatalf("non-terminal console must not alter lines, got %q", got)
	}
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
}

func TestConsoleStyledKeepsText(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewStyledConsole(buf, true)

	if err := c.WriteLine("[P] [Debug] one\n[P] [Debug] two", true); err != nil {
		t.Fatalf("WriteLine failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[P] [Debug] one") || !strings.Contains(out, "[P] [Debug] two") {
		t.Fatalf("styled output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected two lines, got %q", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleErrorDoesNotStopRecording(t *testing.T) {
	c := NewConsole(failingWriter{})
	p := New(prefixed("[P]"), WithOutput(c))

	p.Print("still recorded")

	if c.Err() == nil {
		t.Fatal("expected the write error to be kept")
	}
	if p.NumberOfLoggedLines() != 1 {
		t.Fatalf("expected the line to be recorded, got %d", p.NumberOfLoggedLines())
	}
}
