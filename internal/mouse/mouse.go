// Package mouse replays pointer gestures against a running server, for
// scripting drags and resizes from the command line.
package mouse

import (
	"context"
	"fmt"

	"github.com/yourusername/deskwm/internal/types"
)

// Pointer is the pointer half of the client API
type Pointer interface {
	BeginDrag(ctx context.Context, id uint32, x, y float64) error
	BeginResize(ctx context.Context, id uint32, edge string, x, y float64) error
	PointerMove(ctx context.Context, x, y float64) error
	PointerUp(ctx context.Context) error
}

// Drag presses on a window at from, moves to to in steps, and releases.
func Drag(ctx context.Context, p Pointer, windowID uint32, from, to types.Point, steps int) error {
	if err := p.BeginDrag(ctx, windowID, from.X, from.Y); err != nil {
		return fmt.Errorf("begin drag failed: %w", err)
	}
	return sweep(ctx, p, from, to, steps)
}

// Resize presses on a window edge at from, moves to to in steps, and releases.
func Resize(ctx context.Context, p Pointer, windowID uint32, edge types.Edge, from, to types.Point, steps int) error {
	if !edge.Valid() {
		return fmt.Errorf("invalid resize edge: %s", edge)
	}
	if err := p.BeginResize(ctx, windowID, edge.String(), from.X, from.Y); err != nil {
		return fmt.Errorf("begin resize failed: %w", err)
	}
	return sweep(ctx, p, from, to, steps)
}

// Path returns steps evenly spaced points after from, ending exactly on to.
func Path(from, to types.Point, steps int) []types.Point {
	if steps < 1 {
		steps = 1
	}
	pts := make([]types.Point, steps)
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps)
		pts[i-1] = types.Point{
			X: from.X + (to.X-from.X)*f,
			Y: from.Y + (to.Y-from.Y)*f,
		}
	}
	pts[steps-1] = to
	return pts
}

// sweep moves along the path and always releases, like a real button
func sweep(ctx context.Context, p Pointer, from, to types.Point, steps int) error {
	var moveErr error
	for _, pt := range Path(from, to, steps) {
		if err := p.PointerMove(ctx, pt.X, pt.Y); err != nil {
			moveErr = fmt.Errorf("pointer move failed: %w", err)
			break
		}
	}
	if err := p.PointerUp(ctx); err != nil && moveErr == nil {
		return fmt.Errorf("pointer up failed: %w", err)
	}
	return moveErr
}
