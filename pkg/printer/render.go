package printer

import (
	"strings"
	"time"
)

// TimeLayout is used for the time segment of the prefix.
const TimeLayout = "01/02/2006 15:04:05"

// effectivePrefix builds the prefix for a single emit.
func effectivePrefix(cfg Config, isDebug bool, now time.Time) string {
	var b strings.Builder
	if cfg.DisplayPrintTime {
		b.WriteString("[")
		b.WriteString(now.Format(TimeLayout))
		b.WriteString("] ")
	}
	b.WriteString(cfg.Prefix)
	if isDebug {
		b.WriteString(" ")
		b.WriteString(cfg.DebugPrefix)
	}
	return b.String()
}

// render produces the console line for message.
func render(prefix, message string, everyLine bool) string {
	if !everyLine {
		return prefix + " " + message
	}

	var b strings.Builder
	for _, segment := range splitLines(message) {
		b.WriteString(prefix)
		b.WriteString(" ")
		b.WriteString(segment)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// splitLines splits on both '\n' and '\r'. Every separator ends a segment,
// so "a\r\nb" yields "a", "" and "b".
func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r", "\n"), "\n")
}
