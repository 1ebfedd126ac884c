package wm

import (
	"github.com/yourusername/deskwm/internal/layout"
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/types"
)

// CreateWindow opens a new window in the normal state, adds it to the
// taskbar and focuses it. It always succeeds.
func (m *Manager) CreateWindow(cfg WindowConfig) WindowID {
	if cfg.Width <= 0 {
		cfg.Width = m.opts.DefaultSize.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = m.opts.DefaultSize.Height
	}
	if cfg.MinWidth <= 0 {
		cfg.MinWidth = m.opts.DefaultMinSize.Width
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = m.opts.DefaultMinSize.Height
	}

	origin := layout.Cascade(m.opts.Cascade, len(m.windows))
	if cfg.X != nil {
		origin.X = *cfg.X
	}
	if cfg.Y != nil {
		origin.Y = *cfg.Y
	}

	w := &window{
		cfg:  cfg,
		caps: cfg.Capabilities(),
	}
	w.geom = layout.EnforceMinimum(types.Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, w.minSize())
	w.normal = w.geom

	m.insert(w)
	w.surface = m.opts.Surfaces(w.id, cfg)

	logging.Info().
		Uint32("windowId", uint32(w.id)).
		Str("title", cfg.Title).
		Str("app", cfg.AppID).
		Float64("x", w.geom.X).
		Float64("y", w.geom.Y).
		Float64("width", w.geom.Width).
		Float64("height", w.geom.Height).
		Msg("window created")

	m.opts.Taskbar.WindowAdded(w.id, cfg.Title, cfg.Icon, cfg.AppID)
	m.ActivateWindow(w.id)

	return w.id
}

// ActivateWindow focuses a window and brings it to the front,
// un-minimizing it if needed. Activating the active window is a no-op.
func (m *Manager) ActivateWindow(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		logging.Debug().Uint32("windowId", uint32(id)).Msg("activate: window not found")
		return notFound(id)
	}
	if m.active == id {
		return nil
	}

	if prev, ok := m.lookup(m.active); ok {
		m.active = NoWindow
		prev.blurHook()
	}

	// A blur hook may have closed the target
	if _, ok := m.lookup(id); !ok {
		return notFound(id)
	}

	// Only the visibility axis changes; a window minimized while
	// maximized comes back maximized.
	w.minimized = false

	m.active = id
	m.opts.Taskbar.WindowActivated(id)
	m.raise(w)

	logging.Debug().Uint32("windowId", uint32(id)).Str("state", w.state().String()).Msg("window activated")

	w.focusHook()
	return nil
}

// MinimizeWindow hides a window. If it was focused, focus moves to the
// front-most remaining visible window, or to none.
func (m *Manager) MinimizeWindow(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		logging.Debug().Uint32("windowId", uint32(id)).Msg("minimize: window not found")
		return notFound(id)
	}
	if !w.caps.Minimizable {
		return denied(id, "minimizable")
	}
	if w.minimized {
		return nil
	}

	w.minimized = true

	if m.active == id {
		m.active = NoWindow
		w.blurHook()
		if next := m.frontmost(); next != NoWindow {
			m.ActivateWindow(next)
		}
	}

	logging.Debug().Uint32("windowId", uint32(id)).Bool("maximized", w.maximized).Msg("window minimized")

	m.opts.Taskbar.WindowDeactivated(id)
	return nil
}

// RestoreWindow un-minimizes a window without focusing it.
// It is a no-op for windows that are not minimized.
func (m *Manager) RestoreWindow(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	w.minimized = false
	return nil
}

// MaximizeWindow makes a window fill the workspace, remembering its
// current geometry for RestoreFromMaximized.
func (m *Manager) MaximizeWindow(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		logging.Debug().Uint32("windowId", uint32(id)).Msg("maximize: window not found")
		return notFound(id)
	}
	if !w.caps.Maximizable {
		return denied(id, "maximizable")
	}
	if w.minimized {
		return invalidState(id, w.state(), "maximize")
	}
	if w.maximized {
		return nil
	}

	w.normal = w.geom
	w.geom = m.Workspace()
	w.maximized = true

	logging.Debug().Uint32("windowId", uint32(id)).Msg("window maximized")
	return nil
}

// RestoreFromMaximized returns a maximized window to its saved geometry.
func (m *Manager) RestoreFromMaximized(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	if w.minimized {
		return invalidState(id, w.state(), "restore")
	}
	if !w.maximized {
		return nil
	}

	w.geom = w.normal
	w.maximized = false

	logging.Debug().Uint32("windowId", uint32(id)).Msg("window restored from maximized")
	return nil
}

// ToggleMaximize maximizes a normal window or restores a maximized one.
func (m *Manager) ToggleMaximize(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	if w.maximized {
		return m.RestoreFromMaximized(id)
	}
	return m.MaximizeWindow(id)
}

// CloseWindow asks the window's close hook for permission, then destroys
// its surface, retires its id, and refocuses if it was active.
// ErrCloseVetoed means the window stays open and nothing changed.
func (m *Manager) CloseWindow(id WindowID) error {
	w, ok := m.lookup(id)
	if !ok {
		logging.Debug().Uint32("windowId", uint32(id)).Msg("close: window not found")
		return notFound(id)
	}
	if !w.caps.Closable {
		return denied(id, "closable")
	}

	if !w.closeHook() {
		logging.Info().Uint32("windowId", uint32(id)).Msg("close vetoed")
		return ErrCloseVetoed
	}
	// The hook may have closed the window itself
	if _, ok := m.lookup(id); !ok {
		return nil
	}

	w.surface.Destroy()
	m.remove(id)
	m.endSessionsFor(id)

	logging.Info().Uint32("windowId", uint32(id)).Str("title", w.cfg.Title).Msg("window closed")

	if m.active == id {
		m.active = NoWindow
		if next := m.frontmost(); next != NoWindow {
			m.ActivateWindow(next)
		}
	}

	m.opts.Taskbar.WindowRemoved(id)
	return nil
}

// UpdateWindowTitle changes a window's title and tells the taskbar.
func (m *Manager) UpdateWindowTitle(id WindowID, title string) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	w.cfg.Title = title
	m.opts.Taskbar.WindowUpdated(id, title, "")
	return nil
}

// UpdateAllWindows runs every window's update hook, e.g. after a
// locale change. Hooks run in creation order.
func (m *Manager) UpdateAllWindows() {
	ids := make([]WindowID, len(m.order))
	copy(ids, m.order)

	for _, id := range ids {
		if w, ok := m.lookup(id); ok {
			w.updateHook()
		}
	}
}
