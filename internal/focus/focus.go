// Package focus picks which window keyboard focus moves to. It works on a
// dumped desktop so the CLI can decide locally and send one activate.
package focus

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/deskwm/internal/models"
	"github.com/yourusername/deskwm/internal/types"
)

var (
	// ErrNoWindows is returned when the desktop has nothing to focus
	ErrNoWindows = errors.New("no windows open")
	// ErrNoTarget is returned when no window lies in the requested direction
	ErrNoTarget = errors.New("no window in that direction")
)

// Activator is the part of the client focus needs
type Activator interface {
	ActivateWindow(ctx context.Context, id uint32) error
}

// Recency returns window ids most recently raised first. Minimized
// windows keep their place.
func Recency(d *models.Desktop) []uint32 {
	ids := make([]uint32, 0, len(d.Windows))
	for i := len(d.Windows) - 1; i >= 0; i-- {
		ids = append(ids, d.Windows[i].ID)
	}
	return ids
}

// Next returns the window an alt-tab style switch lands on.
// Forward walks away from the front; backward jumps to the back-most
// window. With no focused window, forward picks the front-most.
func Next(d *models.Desktop, forward bool) (uint32, bool) {
	ids := Recency(d)
	if len(ids) == 0 {
		return 0, false
	}

	idx := -1
	for i, id := range ids {
		if id == d.Active {
			idx = i
			break
		}
	}
	if idx < 0 {
		if forward {
			return ids[0], true
		}
		return ids[len(ids)-1], true
	}

	n := len(ids)
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	return ids[idx], true
}

// InDirection returns the visible window nearest the focused one in
// direction. Minimized windows are never candidates.
func InDirection(d *models.Desktop, direction types.Direction, wrapAround bool) (uint32, bool) {
	if d.Active == 0 {
		return 0, false
	}
	bounds := make(map[uint32]types.Rect)
	for _, w := range d.Visible() {
		bounds[w.ID] = w.Frame
	}
	return FindTarget(d.Active, direction, bounds, wrapAround)
}

// Cycle activates the next window in recency order.
// Returns the window ID that was focused.
func Cycle(ctx context.Context, a Activator, d *models.Desktop, forward bool) (uint32, error) {
	id, ok := Next(d, forward)
	if !ok {
		return 0, ErrNoWindows
	}
	if err := a.ActivateWindow(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to focus window %d: %w", id, err)
	}
	return id, nil
}

// Move activates the window in direction from the focused one.
func Move(ctx context.Context, a Activator, d *models.Desktop, direction types.Direction, wrapAround bool) (uint32, error) {
	if len(d.Windows) == 0 {
		return 0, ErrNoWindows
	}
	id, ok := InDirection(d, direction, wrapAround)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoTarget, direction)
	}
	if err := a.ActivateWindow(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to focus window %d: %w", id, err)
	}
	return id, nil
}
