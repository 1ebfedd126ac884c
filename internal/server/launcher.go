package server

import (
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/wm"
)

// Launcher opens application windows. Singleton applications get at
// most one window: opening them again focuses the existing one.
type Launcher struct {
	mgr       *wm.Manager
	singleton map[string]bool
	windows   map[string]wm.WindowID // singleton app -> its window
}

// NewLauncher creates a launcher over m
func NewLauncher(m *wm.Manager) *Launcher {
	return &Launcher{
		mgr:       m,
		singleton: make(map[string]bool),
		windows:   make(map[string]wm.WindowID),
	}
}

// SetSingleton marks or unmarks appID as single-window
func (l *Launcher) SetSingleton(appID string, on bool) {
	if on {
		l.singleton[appID] = true
		return
	}
	delete(l.singleton, appID)
	delete(l.windows, appID)
}

// IsSingleton reports whether appID is single-window
func (l *Launcher) IsSingleton(appID string) bool {
	return l.singleton[appID]
}

// Open focuses the running window of a singleton app or creates a new
// window. created reports which of the two happened.
func (l *Launcher) Open(appID string) (id wm.WindowID, created bool, err error) {
	if l.singleton[appID] {
		if id, ok := l.running(appID); ok {
			logging.Debug().Str("app", appID).Uint32("windowId", uint32(id)).Msg("focusing running singleton")
			return id, false, l.mgr.ActivateWindow(id)
		}
	}

	id, err = l.mgr.CreateAppWindow(appID)
	if err != nil {
		return wm.NoWindow, false, err
	}
	if l.singleton[appID] {
		l.windows[appID] = id
	}
	return id, true, nil
}

// running returns the live window of appID. Windows the launcher did not
// open itself, such as restored ones, are found by app id, front-most first.
func (l *Launcher) running(appID string) (wm.WindowID, bool) {
	if id, ok := l.windows[appID]; ok {
		if _, alive := l.mgr.Window(id); alive {
			return id, true
		}
		delete(l.windows, appID)
	}

	windows := l.mgr.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		if windows[i].AppID == appID {
			l.windows[appID] = windows[i].ID
			return windows[i].ID, true
		}
	}
	return wm.NoWindow, false
}
