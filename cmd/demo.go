package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rubiojr/loggedprint/pkg/logstore"
	"github.com/rubiojr/loggedprint/pkg/printer"
	"github.com/urfave/cli/v3"
)

// DemoCommand creates the demo command
func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Walk through printing, logging and reading back",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runDemo(os.Stdout)
		},
	}
}

// runDemo prints a few lines twice, the second time with timestamps, while
// toggling logging and the printer itself, then reads the log back.
func runDemo(out io.Writer) error {
	cfg := printer.DefaultConfig()
	cfg.Prefix = "[My App]"
	cfg.PrinterID = "demo"
	p := printer.New(cfg, printer.WithOutput(printer.NewConsole(out)))

	for pass := 0; pass < 2; pass++ {
		p.Update(func(c *printer.Config) {
			c.DisplayPrintTime = pass == 1
			c.TrackPrintTime = pass == 1
		})

		p.Debug("This should print and be visible in the log")
		p.Print("Hello this is my app!")

		p.Update(func(c *printer.Config) { c.AllowsLogging = false })
		p.Debug("This should print and not be visible in the log")
		p.Print("Hello this is my app!")

		p.Update(func(c *printer.Config) { c.Enabled = false })
		p.Print("This should not print and not be visible in the log")

		p.Update(func(c *printer.Config) {
			c.Enabled = true
			c.AllowsLogging = true
		})
	}

	p.Update(func(c *printer.Config) { c.ReadLoggedDebugLines = false })
	text, _ := p.ReadAllLog()
	fmt.Fprintf(out, " ----- Here is the log so far [excluding debug lines]: \n\n%s\n", text)

	p.Update(func(c *printer.Config) { c.ReadLoggedDebugLines = true })
	text, _ = p.ReadAllLog()
	fmt.Fprintf(out, " ---- Here is the log so far [with debug lines]: \n\n%s\n", text)

	fmt.Fprintf(out, " ---- Here is the RAW log so far: \n\n")
	if err := logstore.WriteJSON(out, p.CompleteLog()); err != nil {
		return fmt.Errorf("writing raw log: %w", err)
	}

	fmt.Fprintln(out)
	p.Update(func(c *printer.Config) { c.DisplayPrintTime = false })
	p.Print(" Test:\n \n \r \r\n Test")
	return nil
}
