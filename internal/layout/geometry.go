package layout

import (
	"math"

	"github.com/yourusername/deskwm/internal/types"
)

// CascadeSettings controls where new windows without an explicit
// position are placed. Each new window is offset by Step from the
// previous one, wrapping after RangeX/RangeY units.
type CascadeSettings struct {
	BaseX  float64
	BaseY  float64
	Step   float64
	RangeX float64
	RangeY float64
}

// DefaultCascade matches the classic 20-unit diagonal cascade.
func DefaultCascade() CascadeSettings {
	return CascadeSettings{
		BaseX:  50,
		BaseY:  50,
		Step:   20,
		RangeX: 200,
		RangeY: 150,
	}
}

// Cascade returns the origin for a new window given how many
// windows are already open.
func Cascade(c CascadeSettings, openCount int) types.Point {
	offset := float64(openCount) * c.Step
	return types.Point{
		X: c.BaseX + wrap(offset, c.RangeX),
		Y: c.BaseY + wrap(offset, c.RangeY),
	}
}

// wrap returns v mod r, or v unchanged when r is not positive
func wrap(v, r float64) float64 {
	if r <= 0 {
		return v
	}
	return math.Mod(v, r)
}

// Workspace returns the area windows may occupy: the viewport minus
// the strip reserved for the taskbar at the bottom.
func Workspace(viewport types.Size, taskbarHeight float64) types.Rect {
	height := viewport.Height - taskbarHeight
	if height < 0 {
		height = 0
	}
	return types.Rect{X: 0, Y: 0, Width: viewport.Width, Height: height}
}

// ClampDrag keeps a dragged window reachable. At least margin units of
// its width stay inside the workspace horizontally, and the whole
// titlebar stays inside vertically. This is not strict containment:
// most of the window may hang off the left, right or bottom edge.
func ClampDrag(pos types.Point, size types.Size, ws types.Rect, margin, titlebar float64) types.Point {
	minX := ws.X - size.Width + margin
	maxX := ws.X + ws.Width - margin
	minY := ws.Y
	maxY := ws.Y + ws.Height - titlebar

	return types.Point{
		X: clamp(pos.X, minX, maxX),
		Y: clamp(pos.Y, minY, maxY),
	}
}

// clamp bounds v to [lo, hi]; lo wins when the range is empty
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// ResizeFromEdge computes the bounds produced by dragging the given
// edge by (dx, dy) from the anchor bounds captured when the resize began.
//
// Right/bottom edges grow the dimension by the delta, floored at the
// minimum. Left/top edges shrink the dimension and move the origin by the
// same delta, but only while the result stays at or above the minimum;
// otherwise that axis keeps its anchor values so the window does not jump.
// The two axes are computed independently.
func ResizeFromEdge(anchor types.Rect, edge types.Edge, dx, dy float64, minSize types.Size) types.Rect {
	r := anchor

	if edge.Has(types.EdgeRight) {
		r.Width = max(minSize.Width, anchor.Width+dx)
	}
	if edge.Has(types.EdgeBottom) {
		r.Height = max(minSize.Height, anchor.Height+dy)
	}

	if edge.Has(types.EdgeLeft) {
		if w := anchor.Width - dx; w >= minSize.Width {
			r.Width = w
			r.X = anchor.X + dx
		}
	}
	if edge.Has(types.EdgeTop) {
		if h := anchor.Height - dy; h >= minSize.Height {
			r.Height = h
			r.Y = anchor.Y + dy
		}
	}

	return r
}

// EnforceMinimum grows r in place so both dimensions meet the minimum.
// The origin is left untouched.
func EnforceMinimum(r types.Rect, minSize types.Size) types.Rect {
	r.Width = max(r.Width, minSize.Width)
	r.Height = max(r.Height, minSize.Height)
	return r
}
