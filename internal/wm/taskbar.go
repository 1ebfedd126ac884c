package wm

// Taskbar receives fire-and-forget notifications about window
// lifecycle changes. The manager never reads anything back from it.
type Taskbar interface {
	WindowAdded(id WindowID, title, icon, appID string)
	WindowActivated(id WindowID)
	WindowDeactivated(id WindowID)
	WindowRemoved(id WindowID)
	// WindowUpdated passes empty strings for unchanged fields
	WindowUpdated(id WindowID, title, icon string)
}

// NopTaskbar discards all notifications.
type NopTaskbar struct{}

func (NopTaskbar) WindowAdded(WindowID, string, string, string) {}
func (NopTaskbar) WindowActivated(WindowID)                     {}
func (NopTaskbar) WindowDeactivated(WindowID)                   {}
func (NopTaskbar) WindowRemoved(WindowID)                       {}
func (NopTaskbar) WindowUpdated(WindowID, string, string)       {}
