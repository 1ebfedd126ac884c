/*
Package wm implements the window manager core of the deskwm shell.

A Manager owns every open window: its geometry, its stacking rank, and
its two-axis state (minimized or visible, maximized or normal). It drives
the drag and resize pointer sessions and keeps an external taskbar in sync
through the Taskbar interface.

A Manager is not safe for concurrent use. It is meant to be owned by a
single event loop that applies input events strictly in arrival order.

Example usage:

	m := wm.New(wm.DefaultOptions())
	id := m.CreateWindow(wm.WindowConfig{Title: "Notepad", Width: 600, Height: 400})
	m.BeginDrag(id, 60, 60)
	m.PointerMove(200, 150)
	m.PointerUp()
*/
package wm
