package wm

import (
	"sort"

	"github.com/yourusername/deskwm/internal/layout"
	"github.com/yourusername/deskwm/internal/types"
)

// Options configures a Manager. Zero values fall back to DefaultOptions.
type Options struct {
	Viewport       types.Size // whole browser viewport
	TaskbarHeight  float64    // strip reserved at the bottom of the viewport
	TitlebarHeight float64    // kept on screen while dragging
	DragMargin     *float64   // horizontal units kept on screen while dragging; nil means 100
	Cascade        layout.CascadeSettings
	DefaultSize    types.Size
	DefaultMinSize types.Size

	Taskbar  Taskbar
	Surfaces SurfaceFactory
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Viewport:       types.Size{Width: 1280, Height: 800},
		TaskbarHeight:  40,
		TitlebarHeight: 32,
		DragMargin:     Float(100),
		Cascade:        layout.DefaultCascade(),
		DefaultSize:    types.Size{Width: 600, Height: 400},
		DefaultMinSize: types.Size{Width: 300, Height: 200},
		Taskbar:        NopTaskbar{},
		Surfaces:       NewMemorySurface,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Viewport.Width <= 0 || o.Viewport.Height <= 0 {
		o.Viewport = d.Viewport
	}
	if o.TaskbarHeight < 0 {
		o.TaskbarHeight = 0
	}
	if o.TitlebarHeight <= 0 {
		o.TitlebarHeight = d.TitlebarHeight
	}
	if o.DragMargin == nil || *o.DragMargin < 0 {
		o.DragMargin = d.DragMargin
	}
	if o.Cascade == (layout.CascadeSettings{}) {
		o.Cascade = d.Cascade
	}
	if o.DefaultSize.Width <= 0 || o.DefaultSize.Height <= 0 {
		o.DefaultSize = d.DefaultSize
	}
	if o.DefaultMinSize.Width <= 0 || o.DefaultMinSize.Height <= 0 {
		o.DefaultMinSize = d.DefaultMinSize
	}
	if o.Taskbar == nil {
		o.Taskbar = d.Taskbar
	}
	if o.Surfaces == nil {
		o.Surfaces = d.Surfaces
	}
	return o
}

// Manager owns the window registry, focus, z-order, pointer sessions,
// and the application registry.
type Manager struct {
	opts Options

	windows  map[WindowID]*window
	order    []WindowID // creation order
	active   WindowID
	nextID   WindowID
	nextRank uint64

	apps map[string]WindowConfig

	drag   *pointerSession
	resize *pointerSession
}

// New creates a window manager with the given options.
func New(opts Options) *Manager {
	return &Manager{
		opts:    opts.withDefaults(),
		windows: make(map[WindowID]*window),
		nextID:  1,
		apps:    make(map[string]WindowConfig),
	}
}

// Options returns the effective options
func (m *Manager) Options() Options {
	return m.opts
}

// Workspace returns the area available to windows
func (m *Manager) Workspace() types.Rect {
	return layout.Workspace(m.opts.Viewport, m.opts.TaskbarHeight)
}

// SetViewport updates the viewport size and refits maximized windows.
func (m *Manager) SetViewport(size types.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	m.opts.Viewport = size
	ws := m.Workspace()
	for _, w := range m.windows {
		if w.maximized {
			w.geom = ws
		}
	}
}

// lookup returns the live record for id
func (m *Manager) lookup(id WindowID) (*window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// insert adds a record and allocates its id
func (m *Manager) insert(w *window) {
	w.id = m.nextID
	m.nextID++
	m.windows[w.id] = w
	m.order = append(m.order, w.id)
}

// remove deletes a record; its id is retired for good
func (m *Manager) remove(id WindowID) {
	delete(m.windows, id)
	for i, wid := range m.order {
		if wid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// raise puts w in front of every other window
func (m *Manager) raise(w *window) {
	m.nextRank++
	w.rank = m.nextRank
}

// frontmost returns the highest-ranked visible window, or NoWindow
func (m *Manager) frontmost() WindowID {
	best := NoWindow
	var bestRank uint64
	for id, w := range m.windows {
		if w.minimized {
			continue
		}
		if best == NoWindow || w.rank > bestRank {
			best, bestRank = id, w.rank
		}
	}
	return best
}

// stacking returns every record ordered back to front
func (m *Manager) stacking() []*window {
	list := make([]*window, 0, len(m.windows))
	for _, id := range m.order {
		list = append(list, m.windows[id])
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].rank < list[j].rank
	})
	return list
}

// Count returns the number of open windows
func (m *Manager) Count() int {
	return len(m.windows)
}

// ActiveWindow returns the focused window, or NoWindow
func (m *Manager) ActiveWindow() WindowID {
	return m.active
}

// IsActive reports whether id is the focused window
func (m *Manager) IsActive(id WindowID) bool {
	return id != NoWindow && m.active == id
}

// ContentHandle returns the surface of an open window
func (m *Manager) ContentHandle(id WindowID) (Surface, bool) {
	w, ok := m.lookup(id)
	if !ok {
		return nil, false
	}
	return w.surface, true
}

// Window returns a snapshot of one window
func (m *Manager) Window(id WindowID) (WindowInfo, bool) {
	for _, info := range m.Windows() {
		if info.ID == id {
			return info, true
		}
	}
	return WindowInfo{}, false
}

// Windows returns snapshots of all open windows, back to front.
func (m *Manager) Windows() []WindowInfo {
	stack := m.stacking()
	infos := make([]WindowInfo, 0, len(stack))
	z := 0
	for _, w := range stack {
		info := WindowInfo{
			ID:           w.id,
			Title:        w.cfg.Title,
			Icon:         w.cfg.Icon,
			AppID:        w.cfg.AppID,
			Bounds:       w.geom,
			Normal:       w.normal,
			MinSize:      w.minSize(),
			State:        w.state(),
			Maximized:    w.maximized,
			Active:       w.id == m.active,
			ZOrder:       -1,
			Capabilities: w.caps,
			Surface:      w.surface.Handle(),
		}
		if !w.minimized {
			info.ZOrder = z
			z++
		}
		infos = append(infos, info)
	}
	return infos
}
