package models

import (
	"sort"

	"github.com/yourusername/deskwm/internal/types"
)

// Desktop is the complete window manager state returned by dump
type Desktop struct {
	Viewport     types.Size     `json:"viewport"`
	Workspace    types.Rect     `json:"workspace"`
	Active       uint32         `json:"active"`  // 0 when nothing is focused
	Windows      []Window       `json:"windows"` // back to front
	Applications []Application  `json:"applications"`
	Taskbar      []TaskbarEntry `json:"taskbar"`
	Dragging     uint32         `json:"dragging,omitempty"`
	Resizing     uint32         `json:"resizing,omitempty"`
}

// Window represents one open window
type Window struct {
	ID           uint32          `json:"id"`
	Title        string          `json:"title"`
	Icon         string          `json:"icon,omitempty"`
	AppID        string          `json:"appId,omitempty"`
	Frame        types.Rect      `json:"frame"`
	Normal       types.Rect      `json:"normal"`
	MinSize      types.Size      `json:"minSize"`
	State        string          `json:"state"` // normal, minimized, maximized
	Maximized    bool            `json:"maximized"`
	Active       bool            `json:"active"`
	ZOrder       int             `json:"zOrder"` // -1 when minimized
	Capabilities map[string]bool `json:"capabilities"`
	Surface      string          `json:"surface"`
}

// Application is a registered application
type Application struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon,omitempty"`
	Singleton bool   `json:"singleton,omitempty"`
	Running   int    `json:"running"` // number of open windows
}

// TaskbarEntry is one taskbar button
type TaskbarEntry struct {
	ID     uint32 `json:"id"` // 0 for a pinned launcher
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	AppID  string `json:"appId,omitempty"`
	Active bool   `json:"active"`
	Pinned bool   `json:"pinned"`
}

// IsMinimized reports whether the window is hidden
func (w *Window) IsMinimized() bool {
	return w.State == "minimized"
}

// Visible returns the windows that are drawn, back to front
func (d *Desktop) Visible() []Window {
	var out []Window
	for _, w := range d.Windows {
		if !w.IsMinimized() {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZOrder < out[j].ZOrder })
	return out
}

// GetWindow returns a window by id
func (d *Desktop) GetWindow(id uint32) *Window {
	for i := range d.Windows {
		if d.Windows[i].ID == id {
			return &d.Windows[i]
		}
	}
	return nil
}
