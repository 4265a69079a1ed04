package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rubiojr/loggedprint/pkg/printer"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed config.toml.sample
var configTemplate string

var ErrPrinterNotFound = errors.New("printer not configured")

type Config struct {
	Debug    bool                     `toml:"debug"`
	Printers map[string]PrinterConfig `toml:"printers"`
}

// PrinterConfig mirrors printer.Config with optional fields. Unset switches
// keep the printer defaults.
type PrinterConfig struct {
	Prefix      *string `toml:"prefix,omitempty"`
	DebugPrefix *string `toml:"debug_prefix,omitempty"`
	PrinterID   string  `toml:"printer_id,omitempty"`
	Store       string  `toml:"store,omitempty"`

	Enabled                        *bool `toml:"enabled,omitempty"`
	AllowsLogging                  *bool `toml:"allows_logging,omitempty"`
	PrintDebugLines                *bool `toml:"print_debug_lines,omitempty"`
	LogsDebugLines                 *bool `toml:"logs_debug_lines,omitempty"`
	ShowPrefixesIntoLoggedLines    *bool `toml:"show_prefixes_into_logged_lines,omitempty"`
	PutPrefixOnAllLines            *bool `toml:"put_prefix_on_all_lines,omitempty"`
	TrackPrintTime                 *bool `toml:"track_print_time,omitempty"`
	DisplayPrintTime               *bool `toml:"display_print_time,omitempty"`
	ReadLoggedDebugLines           *bool `toml:"read_logged_debug_lines,omitempty"`
	ReadLoggedLinesFromAllPrinters *bool `toml:"read_logged_lines_from_all_printers,omitempty"`
	ZeroUnreadAfterReadAll         *bool `toml:"zero_unread_after_read_all,omitempty"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Printers: make(map[string]PrinterConfig),
	}
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.Printers == nil {
		config.Printers = make(map[string]PrinterConfig)
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

func (c *Config) AddPrinter(name string, pc PrinterConfig) {
	c.Printers[name] = pc
}

func (c *Config) RemovePrinter(name string) {
	delete(c.Printers, name)
}

// ListPrinters returns the configured printer names in lexical order.
func (c *Config) ListPrinters() []string {
	names := make([]string, 0, len(c.Printers))
	for name := range c.Printers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PrinterConfigFor resolves the printer configuration and store name for name.
func (c *Config) PrinterConfigFor(name string) (printer.Config, string, error) {
	pc, ok := c.Printers[name]
	if !ok {
		return printer.Config{}, "", fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
	}
	return pc.Resolve(name), pc.StoreName(), nil
}

// Apply registers every configured printer in r, reconfiguring printers that
// already exist.
func (c *Config) Apply(r *printer.Registry) {
	for _, name := range c.ListPrinters() {
		pc := c.Printers[name]
		r.Register(name, pc.Resolve(name), pc.StoreName())
	}
}

// Resolve fills the unset fields of pc with the printer defaults.
func (pc PrinterConfig) Resolve(name string) printer.Config {
	cfg := printer.DefaultConfig()
	cfg.PrinterID = name
	cfg.Prefix = DerivePrefix(name)

	if pc.PrinterID != "" {
		cfg.PrinterID = pc.PrinterID
	}
	setString(&cfg.Prefix, pc.Prefix)
	setString(&cfg.DebugPrefix, pc.DebugPrefix)

	setBool(&cfg.Enabled, pc.Enabled)
	setBool(&cfg.AllowsLogging, pc.AllowsLogging)
	setBool(&cfg.PrintDebugLines, pc.PrintDebugLines)
	setBool(&cfg.LogsDebugLines, pc.LogsDebugLines)
	setBool(&cfg.ShowPrefixesIntoLoggedLines, pc.ShowPrefixesIntoLoggedLines)
	setBool(&cfg.PutPrefixOnAllLines, pc.PutPrefixOnAllLines)
	setBool(&cfg.TrackPrintTime, pc.TrackPrintTime)
	setBool(&cfg.DisplayPrintTime, pc.DisplayPrintTime)
	setBool(&cfg.ReadLoggedDebugLines, pc.ReadLoggedDebugLines)
	setBool(&cfg.ReadLoggedLinesFromAllPrinters, pc.ReadLoggedLinesFromAllPrinters)
	setBool(&cfg.ZeroUnreadAfterReadAll, pc.ZeroUnreadAfterReadAll)
	return cfg
}

// StoreName returns the store the printer records into.
func (pc PrinterConfig) StoreName() string {
	if pc.Store == "" {
		return printer.DefaultStore
	}
	return pc.Store
}

// DerivePrefix turns a printer name such as "my-app" into "[My App]".
func DerivePrefix(name string) string {
	words := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(name)
	words = strings.Join(strings.Fields(words), " ")
	if words == "" {
		return ""
	}
	return "[" + cases.Title(language.English).String(words) + "]"
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// GetConfigDir returns the configuration directory for loggedprint
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	appConfigDir := filepath.Join(configDir, "loggedprint")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(appConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", appConfigDir, err)
	}

	return appConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
