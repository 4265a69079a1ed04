package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rubiojr/loggedprint/pkg/logstore"
	"github.com/rubiojr/loggedprint/pkg/printer"
)

// Logger is a named logger backed by a printer.
type Logger struct {
	name     string
	p        *printer.Printer
	warnOnce sync.Once
}

var (
	// globalDebug holds global debug enablement.
	globalDebug atomic.Bool

	// serviceDebug stores per-service debug overrides.
	serviceDebug sync.Map // map[string]*atomic.Bool

	// loggers caches created named loggers.
	loggers sync.Map // map[string]*Logger

	// printers owns the printers and the store behind every logger.
	printers = printer.NewRegistry()
)

func init() {
	printers.SetOutput(os.Stderr)
}

// ForService returns (and memoizes) a named logger for the given service.
func ForService(name string) *Logger {
	if name == "" {
		name = "unknown"
	}
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	logger := &Logger{name: name, p: printers.Register(name, serviceConfig(name), printer.DefaultStore)}
	actual, _ := loggers.LoadOrStore(name, logger)
	return actual.(*Logger)
}

func serviceConfig(name string) printer.Config {
	cfg := printer.DefaultConfig()
	cfg.Prefix = "[" + name + ">]"
	cfg.DebugPrefix = LevelDebug
	cfg.PrinterID = name
	cfg.DisplayPrintTime = true
	cfg.TrackPrintTime = true
	cfg.ReadLoggedDebugLines = true
	return cfg
}

// SetGlobalDebug enables or disables debug logging globally.
func SetGlobalDebug(enabled bool) {
	globalDebug.Store(enabled)
}

// GlobalDebug returns whether global debug logging is enabled.
func GlobalDebug() bool {
	return globalDebug.Load()
}

// EnableDebugFor enables debug logging for a specific service.
func EnableDebugFor(name string) {
	if name == "" {
		return
	}
	val, _ := serviceDebug.LoadOrStore(name, &atomic.Bool{})
	val.(*atomic.Bool).Store(true)
}

// DisableDebugFor disables debug logging for a specific service.
func DisableDebugFor(name string) {
	if name == "" {
		return
	}
	if val, ok := serviceDebug.Load(name); ok {
		val.(*atomic.Bool).Store(false)
	}
}

// DebugEnabledFor returns whether debug is enabled for the given service (either
// globally or specifically for the service).
func DebugEnabledFor(name string) bool {
	if globalDebug.Load() {
		return true
	}
	if val, ok := serviceDebug.Load(name); ok {
		return val.(*atomic.Bool).Load()
	}
	return false
}

// SetOutput sets the console writer of all loggers, existing and future.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	printers.SetOutput(w)
}

// Store returns the store shared by every service logger.
func Store() logstore.Store {
	return printers.Store(printer.DefaultStore)
}

// Printer exposes the printer behind the logger, e.g. to read its lines back.
func (l *Logger) Printer() *printer.Printer {
	return l.p
}

func (l *Logger) logInternal(level string, msg string) {
	l.p.Emit(level+" "+msg, false)
}

// Infof logs an informational message with fmt.Sprintf semantics.
func (l *Logger) Infof(format string, args ...any) {
	l.logInternal(LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.warnOnce.Do(func() {
		l.logInternal(LevelWarn, "warnings active for this logger")
	})
	l.logInternal(LevelWarn, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.logInternal(LevelError, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message if debug is enabled (globally or for this logger's service).
func (l *Logger) Debugf(format string, args ...any) {
	if !DebugEnabledFor(l.name) {
		return
	}
	l.p.Debug(fmt.Sprintf(format, args...))
}

// Level names are fixed.
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDebug = "DEBUG"
)
