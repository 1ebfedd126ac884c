package config

// Config is the root configuration structure
type Config struct {
	Settings Settings    `yaml:"settings" json:"settings"`
	Server   Server      `yaml:"server" json:"server"`
	Apps     []AppConfig `yaml:"apps" json:"apps"`
}

// Settings contains desktop geometry settings
type Settings struct {
	Viewport       string        `yaml:"viewport" json:"viewport"` // "WIDTHxHEIGHT"
	TaskbarHeight  float64       `yaml:"taskbarHeight" json:"taskbarHeight"`
	TitlebarHeight float64       `yaml:"titlebarHeight" json:"titlebarHeight"`
	DragMargin     float64       `yaml:"dragMargin" json:"dragMargin"`         // horizontal units kept visible when dragging off-screen
	DefaultSize    string        `yaml:"defaultSize" json:"defaultSize"`       // "WIDTHxHEIGHT"
	DefaultMinSize string        `yaml:"defaultMinSize" json:"defaultMinSize"` // "WIDTHxHEIGHT"
	Cascade        CascadeConfig `yaml:"cascade" json:"cascade"`
}

// CascadeConfig controls where windows without a position open
type CascadeConfig struct {
	BaseX  float64 `yaml:"baseX" json:"baseX"`
	BaseY  float64 `yaml:"baseY" json:"baseY"`
	Step   float64 `yaml:"step" json:"step"`
	RangeX float64 `yaml:"rangeX" json:"rangeX"`
	RangeY float64 `yaml:"rangeY" json:"rangeY"`
}

// Server contains settings for the deskwm serve process
type Server struct {
	Socket         string `yaml:"socket,omitempty" json:"socket,omitempty"`
	PersistSession bool   `yaml:"persistSession" json:"persistSession"`
}

// AppConfig registers an application that can be launched by id
type AppConfig struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Size        string `yaml:"size,omitempty" json:"size,omitempty"`       // "WIDTHxHEIGHT"
	MinSize     string `yaml:"minSize,omitempty" json:"minSize,omitempty"` // "WIDTHxHEIGHT"
	Resizable   *bool  `yaml:"resizable,omitempty" json:"resizable,omitempty"`
	Minimizable *bool  `yaml:"minimizable,omitempty" json:"minimizable,omitempty"`
	Maximizable *bool  `yaml:"maximizable,omitempty" json:"maximizable,omitempty"`
	Closable    *bool  `yaml:"closable,omitempty" json:"closable,omitempty"`
	Singleton   bool   `yaml:"singleton,omitempty" json:"singleton,omitempty"` // open focuses the existing window
	Pinned      bool   `yaml:"pinned,omitempty" json:"pinned,omitempty"`       // shown in the taskbar when not running
}
