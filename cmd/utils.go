package cmd

import (
	"fmt"
	"io"

	"github.com/rubiojr/loggedprint/pkg/config"
	"github.com/rubiojr/loggedprint/pkg/log"
	"github.com/rubiojr/loggedprint/pkg/printer"
)

var logger = log.ForService("cmd")

// loadRegistry builds a registry holding every configured printer, with
// console output going to out.
func loadRegistry(configPath string, out io.Writer) (*printer.Registry, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.Debug {
		log.SetGlobalDebug(true)
	}

	registry := printer.NewRegistry()
	registry.SetOutput(printer.NewConsole(out))
	cfg.Apply(registry)
	logger.Debugf("loaded %d printers from %s", len(cfg.Printers), configPath)

	return registry, cfg, nil
}

// printerFor returns the configured printer called name, or registers one
// with default settings when the configuration does not know it.
func printerFor(registry *printer.Registry, name string) *printer.Printer {
	if p, err := registry.Get(name); err == nil {
		return p
	}
	logger.Debugf("printer %s not configured, using defaults", name)
	return registry.Register(name, config.PrinterConfig{}.Resolve(name), printer.DefaultStore)
}
