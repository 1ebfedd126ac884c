package state

import (
	"time"

	"github.com/yourusername/deskwm/internal/types"
	"github.com/yourusername/deskwm/internal/wm"
)

const (
	// SessionVersion is the current session file format version
	SessionVersion = 1
)

// Session is the desktop persisted to disk between serve runs
type Session struct {
	Version     int           `json:"version"`
	Windows     []SavedWindow `json:"windows"` // back to front
	LastUpdated time.Time     `json:"lastUpdated"`
}

// SavedWindow is enough to reopen a window where it was
type SavedWindow struct {
	AppID     string     `json:"appId,omitempty"`
	Title     string     `json:"title"`
	Icon      string     `json:"icon,omitempty"`
	Normal    types.Rect `json:"normal"` // geometry to restore to, even when maximized
	Maximized bool       `json:"maximized"`
	Minimized bool       `json:"minimized"`
	Active    bool       `json:"active,omitempty"`

	// Absent in files written before they were recorded; the
	// application's config or the manager defaults apply then.
	MinSize      *types.Size      `json:"minSize,omitempty"`
	Capabilities *wm.Capabilities `json:"capabilities,omitempty"`
}

// NewSession creates a new empty session
func NewSession() *Session {
	return &Session{
		Version:     SessionVersion,
		Windows:     []SavedWindow{},
		LastUpdated: time.Now(),
	}
}
