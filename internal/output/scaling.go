package output

import (
	"github.com/yourusername/deskwm/internal/types"
)

// ScalingContext handles coordinate transformation from desktop units to terminal character space
type ScalingContext struct {
	// Desktop dimensions in units
	PixelWidth  float64
	PixelHeight float64

	// Terminal dimensions in characters
	TermWidth  int
	TermHeight int

	// Scale factors
	ScaleX float64
	ScaleY float64
}

// NewScalingContext maps the whole viewport onto a terminal area,
// leaving a one-character border on every side.
func NewScalingContext(viewport types.Size, termWidth, termHeight int) *ScalingContext {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		viewport = types.Size{Width: 1280, Height: 800}
	}

	availWidth := termWidth - 2
	availHeight := termHeight - 2
	if availWidth < 10 {
		availWidth = 10
	}
	if availHeight < 5 {
		availHeight = 5
	}

	return &ScalingContext{
		PixelWidth:  viewport.Width,
		PixelHeight: viewport.Height,
		TermWidth:   termWidth,
		TermHeight:  termHeight,
		ScaleX:      float64(availWidth) / viewport.Width,
		ScaleY:      float64(availHeight) / viewport.Height,
	}
}

// PixelToTerminal converts desktop coordinates to terminal coordinates
func (sc *ScalingContext) PixelToTerminal(x, y float64) (int, int) {
	// Offset for the border
	return int(x*sc.ScaleX) + 1, int(y*sc.ScaleY) + 1
}

// ScaleSize converts desktop dimensions to terminal character dimensions
func (sc *ScalingContext) ScaleSize(w, h float64) (int, int) {
	termW := int(w * sc.ScaleX)
	termH := int(h * sc.ScaleY)

	// Minimum size of 3x2 for visibility
	if termW < 3 {
		termW = 3
	}
	if termH < 2 {
		termH = 2
	}

	return termW, termH
}

// ClampToCanvas ensures coordinates are within canvas bounds. Windows
// dragged partly off-screen keep their visible part.
func (sc *ScalingContext) ClampToCanvas(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}

	if x+w > sc.TermWidth {
		w = sc.TermWidth - x
	}
	if y+h > sc.TermHeight {
		h = sc.TermHeight - y
	}

	return x, y, w, h
}
