package wm

import (
	"github.com/yourusername/deskwm/internal/layout"
	"github.com/yourusername/deskwm/internal/logging"
	"github.com/yourusername/deskwm/internal/types"
)

type sessionKind int

const (
	sessionDrag sessionKind = iota
	sessionResize
)

func (k sessionKind) String() string {
	if k == sessionResize {
		return "resize"
	}
	return "drag"
}

// pointerSession is an in-progress drag or resize.
type pointerSession struct {
	kind          sessionKind
	target        WindowID
	edge          types.Edge  // resize only
	anchor        types.Rect  // geometry at begin
	anchorPointer types.Point // pointer at begin
	offset        types.Point // pointer minus window origin, drag only
}

// BeginDrag starts moving a window with the pointer at (x, y).
// Maximized and minimized windows cannot be dragged.
func (m *Manager) BeginDrag(id WindowID, x, y float64) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	if w.minimized || w.maximized {
		return invalidState(id, w.state(), "drag")
	}

	m.drag = &pointerSession{
		kind:          sessionDrag,
		target:        id,
		anchor:        w.geom,
		anchorPointer: types.Point{X: x, Y: y},
		offset:        types.Point{X: x - w.geom.X, Y: y - w.geom.Y},
	}

	logging.Debug().Uint32("windowId", uint32(id)).Float64("x", x).Float64("y", y).Msg("drag started")
	return nil
}

// BeginResize starts resizing a window from the given edge with the
// pointer at (x, y).
func (m *Manager) BeginResize(id WindowID, edge types.Edge, x, y float64) error {
	w, ok := m.lookup(id)
	if !ok {
		return notFound(id)
	}
	if !edge.Valid() {
		return ErrInvalidEdge
	}
	if !w.caps.Resizable {
		return denied(id, "resizable")
	}
	if w.minimized || w.maximized {
		return invalidState(id, w.state(), "resize")
	}

	m.resize = &pointerSession{
		kind:          sessionResize,
		target:        id,
		edge:          edge,
		anchor:        w.geom,
		anchorPointer: types.Point{X: x, Y: y},
	}

	logging.Debug().Uint32("windowId", uint32(id)).Str("edge", edge.String()).Msg("resize started")
	return nil
}

// PointerMove updates the geometry of every window with an active
// session. Sessions whose target has closed, or became maximized or
// minimized, are dropped.
func (m *Manager) PointerMove(x, y float64) {
	if s := m.drag; s != nil {
		if w, ok := m.sessionTarget(s); ok {
			size := w.geom.Size()
			pos := types.Point{X: x - s.offset.X, Y: y - s.offset.Y}
			pos = layout.ClampDrag(pos, size, m.Workspace(), *m.opts.DragMargin, m.opts.TitlebarHeight)
			w.geom.X, w.geom.Y = pos.X, pos.Y
		} else {
			m.drag = nil
		}
	}

	if s := m.resize; s != nil {
		if w, ok := m.sessionTarget(s); ok {
			dx := x - s.anchorPointer.X
			dy := y - s.anchorPointer.Y
			w.geom = layout.ResizeFromEdge(s.anchor, s.edge, dx, dy, w.minSize())
		} else {
			m.resize = nil
		}
	}
}

// PointerUp ends both sessions, committing the final geometry as the
// window's normal geometry. Calling it with no session is a no-op.
func (m *Manager) PointerUp() {
	for _, s := range []*pointerSession{m.drag, m.resize} {
		if s == nil {
			continue
		}
		if w, ok := m.lookup(s.target); ok && !w.maximized {
			w.normal = w.geom
			logging.Debug().
				Uint32("windowId", uint32(s.target)).
				Str("kind", s.kind.String()).
				Float64("x", w.geom.X).
				Float64("y", w.geom.Y).
				Float64("width", w.geom.Width).
				Float64("height", w.geom.Height).
				Msg("pointer session committed")
		}
	}
	m.drag = nil
	m.resize = nil
}

// Dragging returns the window being dragged, if any
func (m *Manager) Dragging() (WindowID, bool) {
	if m.drag == nil {
		return NoWindow, false
	}
	return m.drag.target, true
}

// Resizing returns the window being resized, if any
func (m *Manager) Resizing() (WindowID, bool) {
	if m.resize == nil {
		return NoWindow, false
	}
	return m.resize.target, true
}

func (m *Manager) sessionTarget(s *pointerSession) (*window, bool) {
	w, ok := m.lookup(s.target)
	if !ok || w.minimized || w.maximized {
		return nil, false
	}
	return w, true
}

// endSessionsFor cancels any session targeting a closing window
func (m *Manager) endSessionsFor(id WindowID) {
	if m.drag != nil && m.drag.target == id {
		m.drag = nil
	}
	if m.resize != nil && m.resize.target == id {
		m.resize = nil
	}
}
