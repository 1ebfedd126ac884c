package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yourusername/deskwm/internal/types"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Size
		hasError bool
	}{
		{"1280x800", types.Size{Width: 1280, Height: 800}, false},
		{"600X400", types.Size{Width: 600, Height: 400}, false},
		{"600 x 400", types.Size{Width: 600, Height: 400}, false},
		{"512.5x300.25", types.Size{Width: 512.5, Height: 300.25}, false},
		{"  300x200  ", types.Size{Width: 300, Height: 200}, false}, // whitespace
		{"0x200", types.Size{}, true},
		{"300", types.Size{}, true},
		{"x200", types.Size{}, true},
		{"-300x200", types.Size{}, true},
		{"300px x 200px", types.Size{}, true},
		{"", types.Size{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.hasError {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseSize(%q) unexpected error: %v", tt.input, err)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		input    types.Size
		expected string
	}{
		{types.Size{Width: 1280, Height: 800}, "1280x800"},
		{types.Size{Width: 512.5, Height: 300}, "512.5x300"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := FormatSize(tt.input)
			if got != tt.expected {
				t.Errorf("FormatSize(%+v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}

	opts, err := cfg.ManagerOptions()
	if err != nil {
		t.Fatalf("ManagerOptions() error: %v", err)
	}
	if opts.Viewport != (types.Size{Width: 1280, Height: 800}) {
		t.Errorf("Viewport = %+v, want 1280x800", opts.Viewport)
	}
	if opts.TaskbarHeight != 40 {
		t.Errorf("TaskbarHeight = %v, want 40", opts.TaskbarHeight)
	}
	if opts.DragMargin == nil || *opts.DragMargin != 100 {
		t.Errorf("DragMargin = %v, want 100", opts.DragMargin)
	}
	if opts.Cascade.Step != 20 {
		t.Errorf("Cascade.Step = %v, want 20", opts.Cascade.Step)
	}
}

func TestLoadConfigFromBytes_YAML(t *testing.T) {
	yamlConfig := `
settings:
  viewport: 1920x1080
  taskbarHeight: 48

apps:
  - id: terminal
    title: Terminal
    icon: terminal.svg
    size: 700x450
    minSize: 400x250
    pinned: true
  - id: about
    title: About
    resizable: false
    maximizable: false
    singleton: true
`
	cfg, err := LoadConfigFromBytes([]byte(yamlConfig), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	if cfg.Settings.Viewport != "1920x1080" {
		t.Errorf("Settings.Viewport = %q, want %q", cfg.Settings.Viewport, "1920x1080")
	}
	if cfg.Settings.TaskbarHeight != 48 {
		t.Errorf("Settings.TaskbarHeight = %v, want 48", cfg.Settings.TaskbarHeight)
	}
	// Unset keys keep their defaults
	if cfg.Settings.DragMargin != 100 {
		t.Errorf("Settings.DragMargin = %v, want default 100", cfg.Settings.DragMargin)
	}
	if len(cfg.Apps) != 2 {
		t.Fatalf("len(Apps) = %d, want 2", len(cfg.Apps))
	}

	about := cfg.GetApp("about")
	if about == nil {
		t.Fatal("GetApp(about) = nil")
	}
	if !about.Singleton {
		t.Error("about.Singleton = false, want true")
	}

	wc, err := about.WindowConfig()
	if err != nil {
		t.Fatalf("WindowConfig() error: %v", err)
	}
	caps := wc.Capabilities()
	if caps.Resizable || caps.Maximizable {
		t.Errorf("about capabilities = %+v, want resizable and maximizable disabled", caps)
	}
	if !caps.Closable || !caps.Minimizable {
		t.Errorf("about capabilities = %+v, want closable and minimizable enabled", caps)
	}
	if wc.Width != 0 {
		t.Errorf("about Width = %v, want 0 so the manager default applies", wc.Width)
	}

	term, _ := cfg.GetApp("terminal").WindowConfig()
	if term.Width != 700 || term.Height != 450 || term.MinWidth != 400 || term.MinHeight != 250 {
		t.Errorf("terminal config = %+v, want 700x450 min 400x250", term)
	}
	if term.AppID != "terminal" {
		t.Errorf("terminal AppID = %q, want terminal", term.AppID)
	}

	launchers := cfg.Launchers()
	if len(launchers) != 1 || launchers[0].AppID != "terminal" {
		t.Errorf("Launchers() = %+v, want only terminal", launchers)
	}
}

func TestLoadConfigFromBytes_JSON(t *testing.T) {
	jsonConfig := `{
  "settings": {
    "viewport": "1024x768",
    "cascade": {"baseX": 10, "baseY": 10, "step": 30, "rangeX": 300, "rangeY": 200}
  },
  "apps": [
    {"id": "notes", "title": "Notes"}
  ]
}`
	cfg, err := LoadConfigFromBytes([]byte(jsonConfig), "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	opts, err := cfg.ManagerOptions()
	if err != nil {
		t.Fatalf("ManagerOptions() error: %v", err)
	}
	if opts.Viewport.Width != 1024 {
		t.Errorf("Viewport.Width = %v, want 1024", opts.Viewport.Width)
	}
	if opts.Cascade.Step != 30 || opts.Cascade.RangeX != 300 {
		t.Errorf("Cascade = %+v, want step 30 rangeX 300", opts.Cascade)
	}
	if ids := cfg.GetAppIDs(); len(ids) != 1 || ids[0] != "notes" {
		t.Errorf("GetAppIDs() = %v, want [notes]", ids)
	}
}

func TestManagerOptions_ZeroDragMargin(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte("settings:\n  dragMargin: 0\n"), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	opts, err := cfg.ManagerOptions()
	if err != nil {
		t.Fatalf("ManagerOptions() error: %v", err)
	}
	if opts.DragMargin == nil || *opts.DragMargin != 0 {
		t.Errorf("DragMargin = %v, want explicit 0", opts.DragMargin)
	}
}

func TestLoadConfigFromBytes_UnsupportedFormat(t *testing.T) {
	if _, err := LoadConfigFromBytes([]byte("x"), "toml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad viewport", func(c *Config) { c.Settings.Viewport = "wide" }, true},
		{"negative taskbar", func(c *Config) { c.Settings.TaskbarHeight = -1 }, true},
		{"taskbar fills viewport", func(c *Config) { c.Settings.TaskbarHeight = 800 }, true},
		{"negative margin", func(c *Config) { c.Settings.DragMargin = -5 }, true},
		{"negative cascade step", func(c *Config) { c.Settings.Cascade.Step = -1 }, true},
		{"app without id", func(c *Config) { c.Apps = []AppConfig{{Title: "x"}} }, true},
		{"duplicate app", func(c *Config) { c.Apps = []AppConfig{{ID: "a"}, {ID: "a"}} }, true},
		{"bad app size", func(c *Config) { c.Apps = []AppConfig{{ID: "a", Size: "big"}} }, true},
		{"size below minSize", func(c *Config) {
			c.Apps = []AppConfig{{ID: "a", Size: "200x200", MinSize: "300x100"}}
		}, true},
		{"valid app", func(c *Config) {
			c.Apps = []AppConfig{{ID: "a", Size: "400x300", MinSize: "300x200"}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("settings:\n  titlebarHeight: 28\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Settings.TitlebarHeight != 28 {
		t.Errorf("TitlebarHeight = %v, want 28", cfg.Settings.TitlebarHeight)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit path")
	}
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}
	if cfg.Settings.Viewport != "1280x800" {
		t.Errorf("Viewport = %q, want default", cfg.Settings.Viewport)
	}

	_, err = LoadConfig("")
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrNoConfig", err)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Apps = []AppConfig{{ID: "notes", Title: "Notes", Pinned: true}}

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	loaded, err := LoadConfigFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}
	if loaded.Settings != cfg.Settings {
		t.Errorf("Settings = %+v, want %+v", loaded.Settings, cfg.Settings)
	}
	if len(loaded.Apps) != 1 || !loaded.Apps[0].Pinned {
		t.Errorf("Apps = %+v", loaded.Apps)
	}
}
