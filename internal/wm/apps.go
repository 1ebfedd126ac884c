package wm

import (
	"fmt"
	"sort"

	"github.com/yourusername/deskwm/internal/logging"
)

// RegisterApplication stores the window config used to launch appID.
// Registering the same id again replaces the previous config.
func (m *Manager) RegisterApplication(appID string, cfg WindowConfig) {
	cfg.AppID = appID
	m.apps[appID] = cfg
	logging.Debug().Str("app", appID).Msg("application registered")
}

// CreateAppWindow opens a new window from a registered application's
// config. Unknown ids return NoWindow and ErrAppNotRegistered.
func (m *Manager) CreateAppWindow(appID string) (WindowID, error) {
	cfg, ok := m.apps[appID]
	if !ok {
		logging.Error().Str("app", appID).Msg("application not registered")
		return NoWindow, fmt.Errorf("application %q: %w", appID, ErrAppNotRegistered)
	}
	return m.CreateWindow(cfg), nil
}

// Application returns the registered config for appID.
func (m *Manager) Application(appID string) (WindowConfig, bool) {
	cfg, ok := m.apps[appID]
	return cfg, ok
}

// Applications returns the registered application ids, sorted.
func (m *Manager) Applications() []string {
	ids := make([]string, 0, len(m.apps))
	for id := range m.apps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
