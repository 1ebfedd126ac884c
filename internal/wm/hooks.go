package wm

// Closer is implemented by window observers that want a say in closing.
// Returning false vetoes the close and leaves the window open.
type Closer interface {
	OnClose() bool
}

// Focuser is implemented by observers notified when their window gains focus.
type Focuser interface {
	OnFocus()
}

// Blurrer is implemented by observers notified when their window loses focus.
type Blurrer interface {
	OnBlur()
}

// Updater is implemented by observers refreshed by UpdateAllWindows.
type Updater interface {
	OnUpdate()
}

// Hooks adapts plain functions to the observer interfaces.
// Nil fields are skipped; a nil Close allows the close.
type Hooks struct {
	Close  func() bool
	Focus  func()
	Blur   func()
	Update func()
}

func (h Hooks) OnClose() bool {
	if h.Close == nil {
		return true
	}
	return h.Close()
}

func (h Hooks) OnFocus() {
	if h.Focus != nil {
		h.Focus()
	}
}

func (h Hooks) OnBlur() {
	if h.Blur != nil {
		h.Blur()
	}
}

func (h Hooks) OnUpdate() {
	if h.Update != nil {
		h.Update()
	}
}

// Hooks are called synchronously and panics are not recovered.

func (w *window) focusHook() {
	if f, ok := w.cfg.Observer.(Focuser); ok {
		f.OnFocus()
	}
}

func (w *window) blurHook() {
	if b, ok := w.cfg.Observer.(Blurrer); ok {
		b.OnBlur()
	}
}

func (w *window) updateHook() {
	if u, ok := w.cfg.Observer.(Updater); ok {
		u.OnUpdate()
	}
}

// closeHook reports whether the window may close
func (w *window) closeHook() bool {
	if c, ok := w.cfg.Observer.(Closer); ok {
		return c.OnClose()
	}
	return true
}
