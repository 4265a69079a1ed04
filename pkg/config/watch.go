package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rubiojr/loggedprint/pkg/log"
	"github.com/rubiojr/loggedprint/pkg/printer"
)

var logger = log.ForService("config")

// settleDelay gives editors time to finish writing before the file is read.
var settleDelay = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching configPath.
func NewWatcher(configPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config file watcher: %w", err)
	}
	if err := watcher.Add(configPath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching config file %s: %w", configPath, err)
	}
	logger.Infof("Watching config file for changes: %s", configPath)
	return &Watcher{path: configPath, watcher: watcher}, nil
}

// Run calls onChange with every successfully reloaded configuration until
// ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func(*Config)) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// React to write, create, rename, and remove events (editors often use atomic writes)
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)) {
				continue
			}
			logger.Infof("Config file changed: %s (event: %s), reloading configuration...", event.Name, event.Op.String())

			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				time.Sleep(2 * settleDelay)

				if _, err := os.Stat(w.path); os.IsNotExist(err) {
					logger.Warnf("Config file was removed and not replaced, skipping reload")
					continue
				}
				// The file was replaced, so the old watch is gone
				if err := w.watcher.Add(w.path); err != nil {
					logger.Warnf("failed to re-add config file to watcher after rename/remove: %v", err)
				}
			} else {
				time.Sleep(settleDelay)
			}

			cfg, err := LoadConfig(w.path)
			if err != nil {
				logger.Errorf("Failed to reload configuration after file change: %v", err)
				continue
			}
			onChange(cfg)
			logger.Infof("Configuration reloaded successfully after file change")
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Errorf("Config file watcher error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Watch applies configPath to r now and again every time the file changes,
// until ctx is done.
func Watch(ctx context.Context, configPath string, r *printer.Registry) error {
	w, err := NewWatcher(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logger.Warnf("failed to close config file watcher: %v", err)
		}
	}()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.Apply(r)

	w.Run(ctx, func(cfg *Config) { cfg.Apply(r) })
	return nil
}
