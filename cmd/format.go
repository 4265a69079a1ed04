package cmd

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rubiojr/loggedprint/pkg/logstore"
)

// formatNumber formats a number with K/M suffixes for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	} else if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	} else {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
}

// formatTime formats a time relative to now or as an absolute date
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	// If it's within the last day, show relative time
	if diff < 24*time.Hour {
		if diff < time.Hour {
			minutes := int(diff.Minutes())
			if minutes < 1 {
				return "just now"
			}
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hours ago", hours)
	}

	// If it's within the last week, show days ago
	if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%d days ago", days)
	}

	// Otherwise show the date
	if t.Year() == now.Year() {
		return t.Format("Jan 2, 15:04")
	}
	return t.Format("Jan 2, 2006")
}

// formatDuration formats a duration in human-readable form
func formatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%.1f hours", d.Hours())
	} else if d < 30*24*time.Hour {
		return fmt.Sprintf("%.1f days", d.Hours()/24)
	} else if d < 365*24*time.Hour {
		return fmt.Sprintf("%.1f months", d.Hours()/(24*30))
	} else {
		return fmt.Sprintf("%.1f years", d.Hours()/(24*365))
	}
}

// printerStats summarizes the entries recorded by a single printer
type printerStats struct {
	entries int
	debug   int
	oldest  *time.Time
	newest  *time.Time
}

// collectStats groups entries by printer ID
func collectStats(entries []logstore.Entry) map[string]*printerStats {
	stats := make(map[string]*printerStats)
	for _, e := range entries {
		st, ok := stats[e.PrinterID]
		if !ok {
			st = &printerStats{}
			stats[e.PrinterID] = st
		}
		st.entries++
		if e.IsDebug {
			st.debug++
		}
		if e.PrintTime != nil {
			if st.oldest == nil || e.PrintTime.Before(*st.oldest) {
				st.oldest = e.PrintTime
			}
			if st.newest == nil || e.PrintTime.After(*st.newest) {
				st.newest = e.PrintTime
			}
		}
	}
	return stats
}

// formatStats writes per printer statistics for display
func formatStats(out io.Writer, entries []logstore.Entry) {
	fmt.Fprintf(out, "📊 Log Statistics\n")
	fmt.Fprintf(out, "═════════════════\n\n")

	stats := collectStats(entries)
	fmt.Fprintf(out, "Total entries: %s\n", formatNumber(len(entries)))
	fmt.Fprintf(out, "Total printers: %d\n\n", len(stats))

	if len(entries) == 0 {
		fmt.Fprintf(out, "Nothing recorded yet.\n")
		return
	}

	var names []string
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(out, "Printer Details:\n")
	fmt.Fprintf(out, "────────────────\n")

	for i, name := range names {
		if i > 0 {
			fmt.Fprintf(out, "\n")
		}
		st := stats[name]

		fmt.Fprintf(out, "🖨  %s\n", name)
		fmt.Fprintf(out, "   Entries: %s (%.1f%%)\n", formatNumber(st.entries), float64(st.entries)/float64(len(entries))*100)
		fmt.Fprintf(out, "   Debug:   %s\n", formatNumber(st.debug))

		if st.oldest != nil {
			fmt.Fprintf(out, "   Oldest:  %s\n", formatTime(*st.oldest))
		}
		if st.newest != nil {
			fmt.Fprintf(out, "   Newest:  %s\n", formatTime(*st.newest))
			fmt.Fprintf(out, "   Span:    %s\n", formatDuration(st.newest.Sub(*st.oldest)))
		}
	}
}
