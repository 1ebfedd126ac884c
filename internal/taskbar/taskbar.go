// Package taskbar keeps the taskbar's view of open windows: one button
// per window in open order, plus launchers for pinned applications that
// have no window yet.
package taskbar

import (
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/wm"
)

// Entry is one taskbar button.
type Entry struct {
	ID     wm.WindowID `json:"id"` // wm.NoWindow for a pinned launcher
	Title  string      `json:"title"`
	Icon   string      `json:"icon,omitempty"`
	AppID  string      `json:"appId,omitempty"`
	Active bool        `json:"active"`
	Pinned bool        `json:"pinned"`
}

// Launcher is a pinned application shown even when it has no window.
type Launcher struct {
	AppID string
	Title string
	Icon  string
}

// Controller is the part of the window manager a taskbar click drives.
type Controller interface {
	IsActive(id wm.WindowID) bool
	ActivateWindow(id wm.WindowID) error
	MinimizeWindow(id wm.WindowID) error
}

// Model implements wm.Taskbar.
type Model struct {
	entries []*Entry
	pinned  []Launcher
}

var _ wm.Taskbar = (*Model)(nil)

// New creates an empty taskbar with the given pinned launchers.
func New(pinned ...Launcher) *Model {
	return &Model{pinned: pinned}
}

// Pin adds a launcher. Pinning the same app twice is a no-op.
func (m *Model) Pin(l Launcher) {
	for _, p := range m.pinned {
		if p.AppID == l.AppID {
			return
		}
	}
	m.pinned = append(m.pinned, l)
}

func (m *Model) WindowAdded(id wm.WindowID, title, icon, appID string) {
	if m.find(id) != nil {
		return
	}
	m.entries = append(m.entries, &Entry{
		ID:     id,
		Title:  title,
		Icon:   icon,
		AppID:  appID,
		Pinned: m.isPinned(appID),
	})
	logging.Debug().Uint32("windowId", uint32(id)).Str("title", title).Msg("taskbar entry added")
}

func (m *Model) WindowActivated(id wm.WindowID) {
	for _, e := range m.entries {
		e.Active = e.ID == id
	}
}

func (m *Model) WindowDeactivated(id wm.WindowID) {
	if e := m.find(id); e != nil {
		e.Active = false
	}
}

func (m *Model) WindowRemoved(id wm.WindowID) {
	for i, e := range m.entries {
		if e.ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			logging.Debug().Uint32("windowId", uint32(id)).Msg("taskbar entry removed")
			return
		}
	}
}

func (m *Model) WindowUpdated(id wm.WindowID, title, icon string) {
	e := m.find(id)
	if e == nil {
		return
	}
	if title != "" {
		e.Title = title
	}
	if icon != "" {
		e.Icon = icon
	}
}

// Entries returns the buttons in display order: pinned launchers without
// a window first, then one entry per open window in the order they opened.
func (m *Model) Entries() []Entry {
	out := make([]Entry, 0, len(m.pinned)+len(m.entries))
	for _, p := range m.pinned {
		if m.running(p.AppID) {
			continue
		}
		out = append(out, Entry{Title: p.Title, Icon: p.Icon, AppID: p.AppID, Pinned: true})
	}
	for _, e := range m.entries {
		out = append(out, *e)
	}
	return out
}

// Active returns the id of the highlighted entry, or wm.NoWindow.
func (m *Model) Active() wm.WindowID {
	for _, e := range m.entries {
		if e.Active {
			return e.ID
		}
	}
	return wm.NoWindow
}

// Toggle is a click on a window's button: the focused window is
// minimized, anything else is brought to the front.
func Toggle(ctl Controller, id wm.WindowID) error {
	if ctl.IsActive(id) {
		return ctl.MinimizeWindow(id)
	}
	return ctl.ActivateWindow(id)
}

func (m *Model) find(id wm.WindowID) *Entry {
	for _, e := range m.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (m *Model) running(appID string) bool {
	for _, e := range m.entries {
		if e.AppID == appID {
			return true
		}
	}
	return false
}

func (m *Model) isPinned(appID string) bool {
	if appID == "" {
		return false
	}
	for _, p := range m.pinned {
		if p.AppID == appID {
			return true
		}
	}
	return false
}
