package printer

import (
	"io"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type countingWriter struct{ writes int }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

// emitAll emits msgs, marking msgs[i] as debug when flags[i] is set.
func emitAll(p *Printer, msgs []string, flags []bool) {
	for i, m := range msgs {
		p.Emit(m, i < len(flags) && flags[i])
	}
}

func TestDisabledPrinterProperty(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("a disabled printer never prints or records", prop.ForAll(
		func(msgs []string, flags []bool) bool {
			w := &countingWriter{}
			cfg := prefixed("[P]")
			cfg.Enabled = false
			p := New(cfg, WithOutput(w))

			emitAll(p, msgs, flags)

			return w.writes == 0 && p.NumberOfLoggedLines() == 0 && p.UnreadCount() == 0
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestRecordingRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("every emit is recorded in order and read back", prop.ForAll(
		func(msgs []string, flags []bool) bool {
			p := New(prefixed("[P]"), WithOutput(io.Discard))
			emitAll(p, msgs, flags)

			n := len(msgs)
			if p.NumberOfLoggedLines() != n || p.UnreadCount() != n {
				return false
			}

			var want []string
			for i, e := range p.CompleteLog() {
				isDebug := i < len(flags) && flags[i]
				expected := "[P] " + msgs[i]
				if isDebug {
					expected = "[P] [Debug] " + msgs[i]
				}
				if e.Line != expected || e.IsDebug != isDebug {
					return false
				}
				if !isDebug {
					want = append(want, e.Line)
				}
			}

			got, ok := p.ReadLogInterval(0, n-1)
			if len(want) == 0 {
				return !ok
			}
			return ok && got == strings.Join(want, "\n")+"\n"
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestReadDebugToggleProperty(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("enabling debug reads adds exactly the stored debug entries", prop.ForAll(
		func(msgs []string, flags []bool) bool {
			p := New(prefixed("[P]"), WithOutput(io.Discard))
			emitAll(p, msgs, flags)

			without, _ := p.ReadAllLog()
			p.Update(func(c *Config) { c.ReadLoggedDebugLines = true })
			with, _ := p.ReadAllLog()

			debugLines := 0
			for i := range msgs {
				if i < len(flags) && flags[i] {
					debugLines++
				}
			}
			return strings.Count(with, "\n")-strings.Count(without, "\n") == debugLines &&
				strings.Count(with, "\n") == len(msgs)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}

func TestZeroUnreadAfterReadAllProperty(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("reading all resets the unread counter", prop.ForAll(
		func(msgs []string, flags []bool) bool {
			cfg := prefixed("[P]")
			cfg.ZeroUnreadAfterReadAll = true
			p := New(cfg, WithOutput(io.Discard))
			emitAll(p, msgs, flags)

			p.ReadAllLog()
			return p.UnreadCount() == 0
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
