package wm

import (
	"github.com/yourusername/deskwm/internal/types"
)

// WindowID identifies an open window. Ids start at 1, increase
// monotonically, and are never reused after a window closes.
type WindowID uint32

// NoWindow is the empty id: no active window, or a failed create.
const NoWindow WindowID = 0

// State is the externally visible window state.
type State int

const (
	// StateNormal is a visible window at its own geometry.
	StateNormal State = iota
	// StateMinimized is hidden; it keeps whether it was maximized.
	StateMinimized
	// StateMaximized fills the workspace.
	StateMaximized
)

// String returns a string representation of the window state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// WindowConfig describes a window to create. Zero sizes fall back to the
// manager defaults, a nil position cascades, and nil capability flags
// are enabled.
type WindowConfig struct {
	Title     string
	Icon      string
	AppID     string
	Width     float64
	Height    float64
	MinWidth  float64
	MinHeight float64
	X         *float64
	Y         *float64

	Resizable   *bool
	Minimizable *bool
	Maximizable *bool
	Closable    *bool

	// Observer may implement any of Closer, Focuser, Blurrer, Updater
	Observer any
}

// Capabilities are the resolved capability flags of a window.
type Capabilities struct {
	Resizable   bool `json:"resizable"`
	Minimizable bool `json:"minimizable"`
	Maximizable bool `json:"maximizable"`
	Closable    bool `json:"closable"`
}

// Capabilities resolves nil flags to enabled.
func (c WindowConfig) Capabilities() Capabilities {
	return Capabilities{
		Resizable:   enabled(c.Resizable),
		Minimizable: enabled(c.Minimizable),
		Maximizable: enabled(c.Maximizable),
		Closable:    enabled(c.Closable),
	}
}

func enabled(b *bool) bool {
	return b == nil || *b
}

// Bool returns a pointer to b, for WindowConfig capability flags.
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f, for WindowConfig positions.
func Float(f float64) *float64 {
	return &f
}

// WindowInfo is a read-only snapshot of one window.
type WindowInfo struct {
	ID           WindowID
	Title        string
	Icon         string
	AppID        string
	Bounds       types.Rect
	Normal       types.Rect
	MinSize      types.Size
	State        State
	Maximized    bool // layout axis, still set while minimized
	Active       bool
	ZOrder       int // back-to-front among visible windows, -1 when minimized
	Capabilities Capabilities
	Surface      string
}

// window is the registry record for one open window
type window struct {
	id      WindowID
	surface Surface
	cfg     WindowConfig
	caps    Capabilities
	geom    types.Rect
	normal  types.Rect // last non-maximized geometry

	// Two independent axes; see State for the derived view
	minimized bool
	maximized bool

	rank uint64 // higher is nearer the front
}

func (w *window) state() State {
	switch {
	case w.minimized:
		return StateMinimized
	case w.maximized:
		return StateMaximized
	default:
		return StateNormal
	}
}

func (w *window) minSize() types.Size {
	return types.Size{Width: w.cfg.MinWidth, Height: w.cfg.MinHeight}
}
