package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rubiojr/loggedprint/pkg/logstore"
	"github.com/rubiojr/loggedprint/pkg/printer"
	"github.com/urfave/cli/v3"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

// ShowCommand creates the show command
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Display a log exported with the export command",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Export file to read",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "zstd",
				Usage: "The export is zstd compressed",
			},
			&cli.BoolFlag{
				Name:  "debug-lines",
				Usage: "Include debug entries",
			},
			&cli.StringFlag{
				Name:  "printer",
				Usage: "Only show entries recorded by this printer ID",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "Show per printer statistics instead of the entries",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := os.Open(c.String("input"))
			if err != nil {
				return fmt.Errorf("opening export: %w", err)
			}
			defer f.Close()
			if c.Bool("stats") {
				return showStats(f, c.Bool("zstd"), os.Stdout)
			}
			return showExport(f, c.Bool("zstd"), c.Bool("debug-lines"), c.String("printer"), os.Stdout)
		},
	}
}

// showExport loads an export into a fresh store and reads it back through a
// printer configured with the requested filters.
func showExport(in io.Reader, compressed, debugLines bool, printerID string, out io.Writer) error {
	entries, err := readExport(in, compressed)
	if err != nil {
		return err
	}

	store := logstore.NewMemory()
	logstore.Load(store, entries)

	cfg := printer.DefaultConfig()
	cfg.ReadLoggedDebugLines = debugLines
	if printerID != "" {
		cfg.PrinterID = printerID
		cfg.ReadLoggedLinesFromAllPrinters = false
	}
	reader := printer.New(cfg, printer.WithStore(store), printer.WithOutput(nil))

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s entries", formatNumber(reader.NumberOfLoggedLines()))))

	text, ok := reader.ReadAllLog()
	if !ok {
		fmt.Fprintln(out, noDataStyle.Render("No entries match."))
		return nil
	}
	fmt.Fprint(out, text)

	if times := describeTimes(entries); times != "" {
		fmt.Fprintln(out, metaStyle.Render(times))
	}
	if debugLines {
		fmt.Fprintln(out, debugStyle.Render(fmt.Sprintf("%d debug entries", countDebug(entries))))
	}
	return nil
}

// describeTimes summarizes the print times of the entries that have one.
func describeTimes(entries []logstore.Entry) string {
	var first, last *logstore.Entry
	for i := range entries {
		if !entries[i].HasPrintTime() {
			continue
		}
		if first == nil {
			first = &entries[i]
		}
		last = &entries[i]
	}
	if first == nil {
		return ""
	}
	parts := []string{"first print " + formatTime(*first.PrintTime)}
	if last != first {
		parts = append(parts, "last print "+formatTime(*last.PrintTime))
	}
	return strings.Join(parts, ", ")
}

func countDebug(entries []logstore.Entry) int {
	n := 0
	for _, e := range entries {
		if e.IsDebug {
			n++
		}
	}
	return n
}

// showStats prints per printer statistics of an export
func showStats(in io.Reader, compressed bool, out io.Writer) error {
	entries, err := readExport(in, compressed)
	if err != nil {
		return err
	}
	formatStats(out, entries)
	return nil
}

func readExport(in io.Reader, compressed bool) ([]logstore.Entry, error) {
	var entries []logstore.Entry
	var err error
	if compressed {
		entries, err = logstore.ReadCompressed(in)
	} else {
		entries, err = logstore.ReadJSON(in)
	}
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	return entries, nil
}
