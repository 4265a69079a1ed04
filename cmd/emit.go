package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// EmitCommand creates the emit command
func EmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Print messages through a configured printer",
		ArgsUsage: "MESSAGE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "printer",
				Usage: "Printer name",
				Value: "app",
			},
			&cli.BoolFlag{
				Name:  "debug-line",
				Usage: "Emit the messages as debug prints",
			},
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Read the whole log back after printing",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return emitMessages(c.String("config"), c.String("printer"), c.Args().Slice(), c.Bool("debug-line"), c.Bool("show"), os.Stdout)
		},
	}
}

// emitMessages prints every message through the named printer.
func emitMessages(configPath, name string, messages []string, isDebug, show bool, out io.Writer) error {
	if len(messages) == 0 {
		return fmt.Errorf("no message given")
	}

	registry, _, err := loadRegistry(configPath, out)
	if err != nil {
		return err
	}
	p := printerFor(registry, name)

	for _, m := range messages {
		p.Emit(m, isDebug)
	}

	if !show {
		return nil
	}
	text, ok := p.ReadAllLog()
	if !ok {
		fmt.Fprintln(out, "(nothing to read back)")
		return nil
	}
	fmt.Fprintf(out, "%s\n%s", strings.Repeat("-", 20), text)
	return nil
}
