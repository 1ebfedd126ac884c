package types

import "strings"

// Rect represents bounds in layout units
type Rect struct {
	X      float64 `json:"x" yaml:"x"`           // Left edge
	Y      float64 `json:"y" yaml:"y"`           // Top edge
	Width  float64 `json:"width" yaml:"width"`   // Width
	Height float64 `json:"height" yaml:"height"` // Height
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size represents a width/height pair
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Origin returns the top-left corner of a Rect
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of a Rect
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains checks if a point is inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Overlap returns the area of intersection between two Rects
func (r Rect) Overlap(other Rect) float64 {
	left := max(r.X, other.X)
	right := min(r.X+r.Width, other.X+other.Width)
	top := max(r.Y, other.Y)
	bottom := min(r.Y+r.Height, other.Y+other.Height)

	if left >= right || top >= bottom {
		return 0
	}
	return (right - left) * (bottom - top)
}

// Edge is a set of window borders grabbed by a resize handle.
// Corners combine two borders, e.g. EdgeTop|EdgeLeft.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgeNone Edge = 0
)

// Valid reports whether the edge names one border or one corner.
func (e Edge) Valid() bool {
	if e == EdgeNone || e > EdgeTop|EdgeRight|EdgeBottom|EdgeLeft {
		return false
	}
	if e.Has(EdgeTop) && e.Has(EdgeBottom) {
		return false
	}
	if e.Has(EdgeLeft) && e.Has(EdgeRight) {
		return false
	}
	return true
}

// Has reports whether all borders in other are part of e.
func (e Edge) Has(other Edge) bool {
	return e&other == other && other != EdgeNone
}

// String returns the handle name, e.g. "top-left"
func (e Edge) String() string {
	if !e.Valid() {
		return "none"
	}
	var parts []string
	if e.Has(EdgeTop) {
		parts = append(parts, "top")
	}
	if e.Has(EdgeBottom) {
		parts = append(parts, "bottom")
	}
	if e.Has(EdgeLeft) {
		parts = append(parts, "left")
	}
	if e.Has(EdgeRight) {
		parts = append(parts, "right")
	}
	return strings.Join(parts, "-")
}

// ParseEdge converts a handle name to an Edge.
// Accepts the eight handle names ("top", "bottom-right", ...) and
// compass abbreviations ("n", "se", ...).
func ParseEdge(s string) (Edge, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	var e Edge
	switch s {
	case "n":
		e = EdgeTop
	case "s":
		e = EdgeBottom
	case "e":
		e = EdgeRight
	case "w":
		e = EdgeLeft
	case "ne":
		e = EdgeTop | EdgeRight
	case "nw":
		e = EdgeTop | EdgeLeft
	case "se":
		e = EdgeBottom | EdgeRight
	case "sw":
		e = EdgeBottom | EdgeLeft
	default:
		for _, part := range strings.Split(s, "-") {
			switch part {
			case "top":
				e |= EdgeTop
			case "bottom":
				e |= EdgeBottom
			case "left":
				e |= EdgeLeft
			case "right":
				e |= EdgeRight
			default:
				return EdgeNone, false
			}
		}
	}

	if !e.Valid() {
		return EdgeNone, false
	}
	return e, true
}

// Direction is a focus navigation direction
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// ParseDirection converts a string to a Direction
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirLeft, "h", "west":
		return DirLeft, true
	case DirRight, "l", "east":
		return DirRight, true
	case DirUp, "k", "north":
		return DirUp, true
	case DirDown, "j", "south":
		return DirDown, true
	}
	return "", false
}
