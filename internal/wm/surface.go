package wm

import "github.com/google/uuid"

// Surface is the opaque handle to a window's rendered element. The
// owning window destroys it exactly once, when the window closes.
type Surface interface {
	Handle() string
	Destroy()
}

// SurfaceFactory creates the surface for a newly created window.
type SurfaceFactory func(id WindowID, cfg WindowConfig) Surface

// MemorySurface is a headless Surface identified by a random handle.
type MemorySurface struct {
	handle    string
	destroyed bool
}

// NewMemorySurface is the default SurfaceFactory.
func NewMemorySurface(id WindowID, cfg WindowConfig) Surface {
	return &MemorySurface{handle: uuid.NewString()}
}

func (s *MemorySurface) Handle() string { return s.handle }

func (s *MemorySurface) Destroy() { s.destroyed = true }

// Destroyed reports whether the owning window has closed
func (s *MemorySurface) Destroyed() bool { return s.destroyed }
