package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/deskwm/internal/layout"
	"github.com/yourusername/deskwm/internal/taskbar"
	"github.com/yourusername/deskwm/internal/types"
	"github.com/yourusername/deskwm/internal/wm"
)

const (
	DefaultConfigDir  = ".config/deskwm"
	DefaultConfigFile = "config.yaml"
)

// Built-in window sizes used when the config leaves them out
var (
	DefaultWindowSize    = types.Size{Width: 600, Height: 400}
	DefaultMinWindowSize = types.Size{Width: 300, Height: 200}
)

// ErrNoConfig is returned by LoadConfig when no file exists at the
// default location.
var ErrNoConfig = errors.New("no config file found")

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	c := layout.DefaultCascade()
	return &Config{
		Settings: Settings{
			Viewport:       "1280x800",
			TaskbarHeight:  40,
			TitlebarHeight: 32,
			DragMargin:     100,
			DefaultSize:    FormatSize(DefaultWindowSize),
			DefaultMinSize: FormatSize(DefaultMinWindowSize),
			Cascade: CascadeConfig{
				BaseX:  c.BaseX,
				BaseY:  c.BaseY,
				Step:   c.Step,
				RangeX: c.RangeX,
				RangeY: c.RangeY,
			},
		},
		Server: Server{
			PersistSession: true,
		},
	}
}

// LoadConfig loads configuration from the specified path or default location
// If path is empty, uses ~/.config/deskwm/config.yaml, then config.json
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		// Try YAML first, then JSON
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return nil, fmt.Errorf("%w at %s or %s", ErrNoConfig, yamlPath, jsonPath)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadOrDefault loads the config at path, falling back to DefaultConfig
// when path is empty and no file exists at the default location.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, ErrNoConfig) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadConfigFromBytes loads configuration from raw bytes
// format should be "yaml" or "json". Missing settings take their
// DefaultConfig values.
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Marshal renders the config as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// GetApp returns an app by id
func (c *Config) GetApp(id string) *AppConfig {
	for i := range c.Apps {
		if c.Apps[i].ID == id {
			return &c.Apps[i]
		}
	}
	return nil
}

// GetAppIDs returns all configured app ids
func (c *Config) GetAppIDs() []string {
	ids := make([]string, len(c.Apps))
	for i, a := range c.Apps {
		ids[i] = a.ID
	}
	return ids
}

// ManagerOptions converts the settings into window manager options.
// Taskbar and surface factory are left for the caller.
func (c *Config) ManagerOptions() (wm.Options, error) {
	s := c.Settings
	opts := wm.DefaultOptions()

	vp, err := parseOptionalSize(s.Viewport, opts.Viewport)
	if err != nil {
		return opts, fmt.Errorf("viewport: %w", err)
	}
	size, err := parseOptionalSize(s.DefaultSize, opts.DefaultSize)
	if err != nil {
		return opts, fmt.Errorf("defaultSize: %w", err)
	}
	minSize, err := parseOptionalSize(s.DefaultMinSize, opts.DefaultMinSize)
	if err != nil {
		return opts, fmt.Errorf("defaultMinSize: %w", err)
	}

	opts.Viewport = vp
	opts.DefaultSize = size
	opts.DefaultMinSize = minSize
	opts.TaskbarHeight = s.TaskbarHeight
	if s.TitlebarHeight > 0 {
		opts.TitlebarHeight = s.TitlebarHeight
	}
	if s.DragMargin >= 0 {
		opts.DragMargin = wm.Float(s.DragMargin)
	}
	if s.Cascade != (CascadeConfig{}) {
		opts.Cascade = layout.CascadeSettings{
			BaseX:  s.Cascade.BaseX,
			BaseY:  s.Cascade.BaseY,
			Step:   s.Cascade.Step,
			RangeX: s.Cascade.RangeX,
			RangeY: s.Cascade.RangeY,
		}
	}
	return opts, nil
}

// WindowConfig converts an app entry into the config registered with
// the window manager. Sizes left empty use the manager defaults.
func (a *AppConfig) WindowConfig() (wm.WindowConfig, error) {
	cfg := wm.WindowConfig{
		Title:       a.Title,
		Icon:        a.Icon,
		AppID:       a.ID,
		Resizable:   a.Resizable,
		Minimizable: a.Minimizable,
		Maximizable: a.Maximizable,
		Closable:    a.Closable,
	}
	if a.Size != "" {
		sz, err := ParseSize(a.Size)
		if err != nil {
			return cfg, fmt.Errorf("size: %w", err)
		}
		cfg.Width, cfg.Height = sz.Width, sz.Height
	}
	if a.MinSize != "" {
		sz, err := ParseSize(a.MinSize)
		if err != nil {
			return cfg, fmt.Errorf("minSize: %w", err)
		}
		cfg.MinWidth, cfg.MinHeight = sz.Width, sz.Height
	}
	return cfg, nil
}

// Launchers returns the pinned apps as taskbar launchers, in config order
func (c *Config) Launchers() []taskbar.Launcher {
	var out []taskbar.Launcher
	for _, a := range c.Apps {
		if a.Pinned {
			out = append(out, taskbar.Launcher{AppID: a.ID, Title: a.Title, Icon: a.Icon})
		}
	}
	return out
}
