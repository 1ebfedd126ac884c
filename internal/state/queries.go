package state

import (
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/wm"
)

// Capture records every open window of m, back to front.
func Capture(m *wm.Manager) *Session {
	s := NewSession()
	for _, w := range m.Windows() {
		minSize, caps := w.MinSize, w.Capabilities
		s.Windows = append(s.Windows, SavedWindow{
			AppID:     w.AppID,
			Title:     w.Title,
			Icon:      w.Icon,
			Normal:    w.Normal,
			Maximized: w.Maximized,
			Minimized: w.State == wm.StateMinimized,
			Active:    w.Active,

			MinSize:      &minSize,
			Capabilities: &caps,
		})
	}
	return s
}

// Restore reopens the saved windows in m, returning their new ids in
// session order. Windows of registered applications keep that
// application's config; the saved geometry, size limits and state win.
func Restore(m *wm.Manager, s *Session) []wm.WindowID {
	ids := make([]wm.WindowID, 0, len(s.Windows))
	active := wm.NoWindow

	for _, saved := range s.Windows {
		cfg, ok := m.Application(saved.AppID)
		if !ok {
			cfg = wm.WindowConfig{AppID: saved.AppID, Icon: saved.Icon}
		}
		cfg.Title = saved.Title
		cfg.X = wm.Float(saved.Normal.X)
		cfg.Y = wm.Float(saved.Normal.Y)
		cfg.Width = saved.Normal.Width
		cfg.Height = saved.Normal.Height
		if saved.MinSize != nil {
			cfg.MinWidth = saved.MinSize.Width
			cfg.MinHeight = saved.MinSize.Height
		}
		if c := saved.Capabilities; c != nil {
			cfg.Resizable = wm.Bool(c.Resizable)
			cfg.Minimizable = wm.Bool(c.Minimizable)
			cfg.Maximizable = wm.Bool(c.Maximizable)
			cfg.Closable = wm.Bool(c.Closable)
		}

		id := m.CreateWindow(cfg)
		ids = append(ids, id)

		if saved.Maximized {
			if err := m.MaximizeWindow(id); err != nil {
				logging.Warn().Err(err).Uint32("windowId", uint32(id)).Msg("restore: maximize failed")
			}
		}
		if saved.Active {
			active = id
		}
	}

	// Minimize last so focus settles on the saved front-most window
	for i, saved := range s.Windows {
		if saved.Minimized {
			if err := m.MinimizeWindow(ids[i]); err != nil {
				logging.Warn().Err(err).Uint32("windowId", uint32(ids[i])).Msg("restore: minimize failed")
			}
		}
	}
	if active != wm.NoWindow {
		m.ActivateWindow(active)
	}

	logging.Info().Int("windows", len(ids)).Msg("session restored")
	return ids
}
