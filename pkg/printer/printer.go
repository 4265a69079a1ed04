// Package printer records prints. A Printer writes formatted lines to a
// console writer and appends them to a logstore.Store that can be read back
// later, filtered by origin and by debug flag.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rubiojr/loggedprint/pkg/logstore"
)

// LineWriter is implemented by console sinks that want to know whether a
// line comes from a debug print. Plain io.Writers receive the line followed
// by a newline.
type LineWriter interface {
	WriteLine(line string, isDebug bool) error
}

// Printer is a named print front end. All methods are safe for concurrent
// use; configuration changes apply from the next call on.
type Printer struct {
	mu    sync.RWMutex
	cfg   Config
	store logstore.Store
	out   io.Writer
	now   func() time.Time
}

// Option customizes a Printer at construction.
type Option func(*Printer)

// WithStore makes the printer record into s instead of a private store.
func WithStore(s logstore.Store) Option {
	return func(p *Printer) {
		if s != nil {
			p.store = s
		}
	}
}

// WithOutput sets the console writer. A nil writer discards console output.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) {
		p.out = w
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a printer. Without WithStore it owns a private memory store;
// without WithOutput it prints to stdout.
func New(cfg Config, opts ...Option) *Printer {
	p := &Printer{
		cfg:   cfg,
		store: logstore.NewMemory(),
		out:   os.Stdout,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns a copy of the current configuration.
func (p *Printer) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// SetConfig replaces the configuration.
func (p *Printer) SetConfig(cfg Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg = cfg
}

// Update changes the configuration in place.
func (p *Printer) Update(fn func(*Config)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.cfg)
}

// ID returns the printer ID stored with each entry.
func (p *Printer) ID() string {
	return p.Config().PrinterID
}

// Store returns the store the printer records into.
func (p *Printer) Store() logstore.Store {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.store
}

// SetStore switches the store used by later prints and reads.
func (p *Printer) SetStore(s logstore.Store) {
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store = s
}

// SetOutput changes the console writer. A nil writer discards console output.
func (p *Printer) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out = w
}

// Emit prints message to the console and records it, as the configuration allows.
func (p *Printer) Emit(message string, isDebug bool) {
	p.mu.RLock()
	cfg, store, out, clock := p.cfg, p.store, p.out, p.now
	p.mu.RUnlock()

	if !cfg.Enabled {
		return
	}

	var now time.Time
	if cfg.stamps() {
		now = clock()
	}

	line := render(effectivePrefix(cfg, isDebug, now), message, cfg.PutPrefixOnAllLines)

	if cfg.prints(isDebug) && out != nil {
		// The console is best effort; write failures never stop recording.
		_ = writeLine(out, line, isDebug)
	}

	if !cfg.logs(isDebug) {
		return
	}
	text := message
	if cfg.ShowPrefixesIntoLoggedLines {
		text = line
	}
	var printTime time.Time
	if cfg.TrackPrintTime {
		printTime = now
	}
	store.Append(logstore.NewEntry(text, isDebug, cfg.PrinterID, printTime))
}

// Print emits a regular message.
func (p *Printer) Print(message string) {
	p.Emit(message, false)
}

// Debug emits a debug message.
func (p *Printer) Debug(message string) {
	p.Emit(message, true)
}

// Printf emits a regular message with fmt.Sprintf semantics.
func (p *Printer) Printf(format string, args ...any) {
	p.Emit(fmt.Sprintf(format, args...), false)
}

// Debugf emits a debug message with fmt.Sprintf semantics.
func (p *Printer) Debugf(format string, args ...any) {
	p.Emit(fmt.Sprintf(format, args...), true)
}

func writeLine(w io.Writer, line string, isDebug bool) error {
	if lw, ok := w.(LineWriter); ok {
		return lw.WriteLine(line, isDebug)
	}
	_, err := io.WriteString(w, line+"\n")
	return err
}
