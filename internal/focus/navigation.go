package focus

import (
	"math"

	"github.com/yourusername/deskwm/internal/types"
)

// FindTarget finds the best window to move focus to in the given direction.
// Returns the target id and true if found, or 0 and false if nothing lies
// in that direction. If wrapAround is true and nothing is found, it wraps to
// the opposite edge of the desktop.
func FindTarget(current uint32, direction types.Direction, bounds map[uint32]types.Rect, wrapAround bool) (uint32, bool) {
	cur, ok := bounds[current]
	if !ok {
		return 0, false
	}

	currentCenter := cur.Center()

	var best uint32
	bestDistance := math.MaxFloat64

	for id, r := range bounds {
		if id == current {
			continue
		}

		targetCenter := r.Center()
		if !isInDirection(currentCenter, targetCenter, direction) {
			continue
		}

		distance := distanceInDirection(currentCenter, targetCenter, direction)
		if better(distance, id, bestDistance, best) {
			bestDistance = distance
			best = id
		}
	}

	if best != 0 {
		return best, true
	}

	if wrapAround {
		return findWrapAround(current, direction, bounds)
	}

	return 0, false
}

// better orders candidates by distance, then by lower id so map order
// never decides a tie.
func better(distance float64, id uint32, bestDistance float64, best uint32) bool {
	if distance != bestDistance {
		return distance < bestDistance
	}
	return best == 0 || id < best
}

// isInDirection checks if target is in the specified direction from source.
// Uses center points for comparison.
func isInDirection(source, target types.Point, direction types.Direction) bool {
	switch direction {
	case types.DirLeft:
		return target.X < source.X
	case types.DirRight:
		return target.X > source.X
	case types.DirUp:
		return target.Y < source.Y
	case types.DirDown:
		return target.Y > source.Y
	default:
		return false
	}
}

// distanceInDirection weights movement off the direction's axis twice as
// heavily, so windows more "in line" win.
func distanceInDirection(source, target types.Point, direction types.Direction) float64 {
	dx := math.Abs(target.X - source.X)
	dy := math.Abs(target.Y - source.Y)

	switch direction {
	case types.DirLeft, types.DirRight:
		return dx + dy*2
	case types.DirUp, types.DirDown:
		return dy + dx*2
	default:
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// findWrapAround picks the window on the opposite edge that is most
// aligned with the current one.
func findWrapAround(current uint32, direction types.Direction, bounds map[uint32]types.Rect) (uint32, bool) {
	cur, ok := bounds[current]
	if !ok {
		return 0, false
	}

	currentCenter := cur.Center()
	edges := extremes(bounds)

	var best uint32
	bestDistance := math.MaxFloat64

	for id, r := range bounds {
		if id == current {
			continue
		}

		targetCenter := r.Center()
		if !edges.opposite(targetCenter, direction) {
			continue
		}

		distance := perpendicularDistance(currentCenter, targetCenter, direction)
		if better(distance, id, bestDistance, best) {
			bestDistance = distance
			best = id
		}
	}

	return best, best != 0
}

type centerRange struct {
	minX, maxX, minY, maxY float64
	xThreshold, yThreshold float64
}

func extremes(bounds map[uint32]types.Rect) centerRange {
	cr := centerRange{
		minX: math.MaxFloat64, maxX: -math.MaxFloat64,
		minY: math.MaxFloat64, maxY: -math.MaxFloat64,
	}
	for _, r := range bounds {
		c := r.Center()
		cr.minX = math.Min(cr.minX, c.X)
		cr.maxX = math.Max(cr.maxX, c.X)
		cr.minY = math.Min(cr.minY, c.Y)
		cr.maxY = math.Max(cr.maxY, c.Y)
	}

	// "Edge" is within 10% of the extreme; 1 unit when all centers line up
	cr.xThreshold = math.Max((cr.maxX-cr.minX)*0.1, 1)
	cr.yThreshold = math.Max((cr.maxY-cr.minY)*0.1, 1)
	return cr
}

// opposite reports whether a center lies on the edge focus wraps to
func (cr centerRange) opposite(target types.Point, direction types.Direction) bool {
	switch direction {
	case types.DirLeft:
		return target.X >= cr.maxX-cr.xThreshold
	case types.DirRight:
		return target.X <= cr.minX+cr.xThreshold
	case types.DirUp:
		return target.Y >= cr.maxY-cr.yThreshold
	case types.DirDown:
		return target.Y <= cr.minY+cr.yThreshold
	default:
		return false
	}
}

// perpendicularDistance returns the distance along the perpendicular axis.
func perpendicularDistance(source, target types.Point, direction types.Direction) float64 {
	switch direction {
	case types.DirLeft, types.DirRight:
		return math.Abs(target.Y - source.Y)
	case types.DirUp, types.DirDown:
		return math.Abs(target.X - source.X)
	default:
		return math.Hypot(target.X-source.X, target.Y-source.Y)
	}
}
