package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rubiojr/loggedprint/pkg/printer"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "[printers.app]\nprefix = \"[Before]\"\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	go w.Run(ctx, func(cfg *Config) { reloaded <- cfg })

	if err := os.WriteFile(path, []byte("[printers.app]\nprefix = \"[After]\"\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			pc, _, err := cfg.PrinterConfigFor("app")
			if err == nil && pc.Prefix == "[After]" {
				return
			}
		case <-deadline:
			t.Fatal("configuration was not reloaded")
		}
	}
}

func TestWatchAppliesToRegistry(t *testing.T) {
	path := writeConfig(t, "[printers.app]\nprefix = \"[One]\"\n")
	r := printer.NewRegistry()
	r.SetOutput(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, r) }()

	waitFor(t, func() bool {
		p, err := r.Get("app")
		return err == nil && p.Config().Prefix == "[One]"
	})

	if err := os.WriteFile(path, []byte("[printers.app]\nprefix = \"[Two]\"\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}
	waitFor(t, func() bool {
		p, err := r.Get("app")
		return err == nil && p.Config().Prefix == "[Two]"
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	if _, err := NewWatcher(t.TempDir() + "/missing.toml"); err == nil {
		t.Fatal("expected an error watching a missing file")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
