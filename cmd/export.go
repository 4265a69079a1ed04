package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rubiojr/loggedprint/pkg/logstore"
	"github.com/urfave/cli/v3"
)

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Print standard input through a printer and export the recorded log",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "printer",
				Usage: "Printer name",
				Value: "app",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Output file (defaults to standard output)",
			},
			&cli.BoolFlag{
				Name:  "zstd",
				Usage: "Compress the export with zstd",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			out := io.Writer(os.Stdout)
			if path := c.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						logger.Warnf("failed to close %s: %v", path, err)
					}
				}()
				out = f
			}
			// Console lines go to stderr so they do not mix with the export.
			return exportLog(c.String("config"), c.String("printer"), c.Bool("zstd"), os.Stdin, os.Stderr, out)
		},
	}
}

// exportLog emits every line of in and writes the complete log to dst.
func exportLog(configPath, name string, compress bool, in io.Reader, console, dst io.Writer) error {
	registry, _, err := loadRegistry(configPath, console)
	if err != nil {
		return err
	}
	p := printerFor(registry, name)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		p.Print(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	entries := p.CompleteLog()
	logger.Debugf("exporting %d entries", len(entries))
	if compress {
		return logstore.WriteCompressed(dst, entries)
	}
	return logstore.WriteJSON(dst, entries)
}
