package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rubiojr/loggedprint/pkg/config"
	"github.com/urfave/cli/v3"
)

// TailCommand creates the tail command
func TailCommand() *cli.Command {
	return &cli.Command{
		Name:  "tail",
		Usage: "Print standard input line by line, reloading the configuration on change",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "printer",
				Usage: "Printer name",
				Value: "app",
			},
			&cli.BoolFlag{
				Name:  "debug-line",
				Usage: "Emit the lines as debug prints",
			},
			&cli.BoolFlag{
				Name:  "no-watch",
				Usage: "Do not reload the configuration when the file changes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return tailInput(ctx, c.String("config"), c.String("printer"), c.Bool("debug-line"), !c.Bool("no-watch"), os.Stdin, os.Stdout)
		},
	}
}

// tailInput emits every line of in and prints the unread log once in is
// exhausted.
func tailInput(ctx context.Context, configPath, name string, isDebug, watch bool, in io.Reader, out io.Writer) error {
	registry, _, err := loadRegistry(configPath, out)
	if err != nil {
		return err
	}
	p := printerFor(registry, name)

	if watch {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := config.Watch(watchCtx, configPath, registry); err != nil {
				logger.Warnf("configuration will not be reloaded: %v", err)
			}
		}()
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		p.Emit(scanner.Text(), isDebug)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if text, ok := p.ReadUnreadLog(); ok {
		fmt.Fprintf(out, "\n%d lines recorded:\n%s", p.NumberOfLoggedLines(), text)
	}
	return nil
}
