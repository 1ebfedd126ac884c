package server

import (
	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/taskbar"
	"github.com/yourusername/deskwm/internal/wm"
)

// Snapshot builds the dump view of the desktop. It must run on the
// goroutine that owns the manager.
func Snapshot(m *wm.Manager, tb *taskbar.Model, l *Launcher) *models.Desktop {
	opts := m.Options()
	d := &models.Desktop{
		Viewport:     opts.Viewport,
		Workspace:    m.Workspace(),
		Active:       uint32(m.ActiveWindow()),
		Windows:      []models.Window{},
		Applications: []models.Application{},
		Taskbar:      []models.TaskbarEntry{},
	}

	running := make(map[string]int)
	for _, w := range m.Windows() {
		d.Windows = append(d.Windows, windowView(w))
		if w.AppID != "" {
			running[w.AppID]++
		}
	}

	for _, appID := range m.Applications() {
		cfg, _ := m.Application(appID)
		d.Applications = append(d.Applications, models.Application{
			ID:        appID,
			Title:     cfg.Title,
			Icon:      cfg.Icon,
			Singleton: l.IsSingleton(appID),
			Running:   running[appID],
		})
	}

	if tb != nil {
		d.Taskbar = taskbarView(tb)
	}

	if id, ok := m.Dragging(); ok {
		d.Dragging = uint32(id)
	}
	if id, ok := m.Resizing(); ok {
		d.Resizing = uint32(id)
	}

	return d
}

func windowView(w wm.WindowInfo) models.Window {
	return models.Window{
		ID:        uint32(w.ID),
		Title:     w.Title,
		Icon:      w.Icon,
		AppID:     w.AppID,
		Frame:     w.Bounds,
		Normal:    w.Normal,
		MinSize:   w.MinSize,
		State:     w.State.String(),
		Maximized: w.Maximized,
		Active:    w.Active,
		ZOrder:    w.ZOrder,
		Capabilities: map[string]bool{
			"resizable":   w.Capabilities.Resizable,
			"minimizable": w.Capabilities.Minimizable,
			"maximizable": w.Capabilities.Maximizable,
			"closable":    w.Capabilities.Closable,
		},
		Surface: w.Surface,
	}
}

func taskbarView(tb *taskbar.Model) []models.TaskbarEntry {
	entries := tb.Entries()
	out := make([]models.TaskbarEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.TaskbarEntry{
			ID:     uint32(e.ID),
			Title:  e.Title,
			Icon:   e.Icon,
			AppID:  e.AppID,
			Active: e.Active,
			Pinned: e.Pinned,
		})
	}
	return out
}
