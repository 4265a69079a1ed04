package printer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rubiojr/loggedprint/pkg/logstore"
)

// DefaultStore names the store printers share unless told otherwise.
const DefaultStore = "default"

var ErrPrinterNotFound = errors.New("printer not found")

// Registry owns named printers and the stores they record into. Printers
// registered against the same store name share that store.
type Registry struct {
	mu       sync.RWMutex
	printers map[string]*Printer
	stores   map[string]logstore.Store
	out      io.Writer
}

// NewRegistry creates an empty registry whose printers write to stdout.
func NewRegistry() *Registry {
	return &Registry{
		printers: make(map[string]*Printer),
		stores:   make(map[string]logstore.Store),
		out:      os.Stdout,
	}
}

var (
	defaultMu       sync.Mutex
	defaultRegistry = NewRegistry()
)

// Default returns the process wide registry.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry
}

// ResetDefault replaces the process wide registry with an empty one.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = NewRegistry()
}

// ForName returns (and memoizes) the printer called name. A new printer gets
// the default configuration with name as its ID and records into the default
// store.
func (r *Registry) ForName(name string) *Printer {
	r.mu.RLock()
	p, ok := r.printers[name]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.printers[name]; ok {
		return p
	}
	cfg := DefaultConfig()
	cfg.PrinterID = name
	p = New(cfg, WithStore(r.storeLocked(DefaultStore)), WithOutput(r.out))
	r.printers[name] = p
	return p
}

// Register creates the printer called name, or reconfigures it if it already
// exists. An empty PrinterID is replaced by name and an empty storeName by
// DefaultStore.
func (r *Registry) Register(name string, cfg Config, storeName string) *Printer {
	if cfg.PrinterID == "" {
		cfg.PrinterID = name
	}
	if storeName == "" {
		storeName = DefaultStore
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	store := r.storeLocked(storeName)
	if p, ok := r.printers[name]; ok {
		p.SetConfig(cfg)
		p.SetStore(store)
		return p
	}
	p := New(cfg, WithStore(store), WithOutput(r.out))
	r.printers[name] = p
	return p
}

// Anonymous registers a printer under a freshly generated ID.
func (r *Registry) Anonymous(cfg Config) *Printer {
	id := uuid.NewString()
	cfg.PrinterID = id
	return r.Register(id, cfg, DefaultStore)
}

// Get returns the printer called name.
func (r *Registry) Get(name string) (*Printer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.printers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
	}
	return p, nil
}

// Names lists registered printers in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.printers))
	for name := range r.printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove forgets the printer called name. Its entries stay in the store.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.printers[name]; !ok {
		return fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
	}
	delete(r.printers, name)
	return nil
}

// Store returns the store called name, creating an empty one if needed.
func (r *Registry) Store(name string) logstore.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.storeLocked(name)
}

// SetStore installs s under name. Printers registered afterwards against
// name record into s; existing printers keep their current store.
func (r *Registry) SetStore(name string, s logstore.Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[name] = s
}

// SetOutput sets the console writer of every printer, present and future.
func (r *Registry) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
	for _, p := range r.printers {
		p.SetOutput(w)
	}
}

// Reset drops every printer and store.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printers = make(map[string]*Printer)
	r.stores = make(map[string]logstore.Store)
}

func (r *Registry) storeLocked(name string) logstore.Store {
	s, ok := r.stores[name]
	if !ok {
		s = logstore.NewMemory()
		r.stores[name] = s
	}
	return s
}
