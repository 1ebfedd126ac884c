package wm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingTaskbar keeps every notification as a short string
type recordingTaskbar struct {
	events []string
}

func (r *recordingTaskbar) WindowAdded(id WindowID, title, icon, appID string) {
	r.events = append(r.events, fmt.Sprintf("added %d %s", id, title))
}

func (r *recordingTaskbar) WindowActivated(id WindowID) {
	r.events = append(r.events, fmt.Sprintf("activated %d", id))
}

func (r *recordingTaskbar) WindowDeactivated(id WindowID) {
	r.events = append(r.events, fmt.Sprintf("deactivated %d", id))
}

func (r *recordingTaskbar) WindowRemoved(id WindowID) {
	r.events = append(r.events, fmt.Sprintf("removed %d", id))
}

func (r *recordingTaskbar) WindowUpdated(id WindowID, title, icon string) {
	r.events = append(r.events, fmt.Sprintf("updated %d %s", id, title))
}

func (r *recordingTaskbar) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *recordingTaskbar) reset() { r.events = nil }

// hookCounter counts observer callbacks and can veto closes
type hookCounter struct {
	focus, blur, update, close int
	veto                       bool
}

func (h *hookCounter) OnFocus()  { h.focus++ }
func (h *hookCounter) OnBlur()   { h.blur++ }
func (h *hookCounter) OnUpdate() { h.update++ }
func (h *hookCounter) OnClose() bool {
	h.close++
	return !h.veto
}

func newTestManager(t *testing.T) (*Manager, *recordingTaskbar) {
	t.Helper()
	tb := &recordingTaskbar{}
	opts := DefaultOptions()
	opts.Taskbar = tb
	return New(opts), tb
}

// at builds a config with an explicit position and size
func at(title string, x, y, w, h float64) WindowConfig {
	return WindowConfig{Title: title, X: Float(x), Y: Float(y), Width: w, Height: h}
}

func mustWindow(t *testing.T, m *Manager, id WindowID) WindowInfo {
	t.Helper()
	info, ok := m.Window(id)
	require.True(t, ok, "window %d should exist", id)
	return info
}

// assertInvariants checks the properties every reachable state keeps
func assertInvariants(t *testing.T, m *Manager) {
	t.Helper()
	active := 0
	for _, info := range m.Windows() {
		if info.Active {
			active++
			require.NotEqual(t, StateMinimized, info.State, "window %d is active and minimized", info.ID)
		}
		if info.State == StateNormal {
			require.GreaterOrEqual(t, info.Bounds.Width, info.MinSize.Width)
			require.GreaterOrEqual(t, info.Bounds.Height, info.MinSize.Height)
		}
	}
	require.LessOrEqual(t, active, 1)
	if m.ActiveWindow() != NoWindow {
		require.Equal(t, 1, active)
	}
}
