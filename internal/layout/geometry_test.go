package layout

import (
	"testing"

	"github.com/yourusername/deskwm/internal/types"
)

func TestCascade(t *testing.T) {
	c := DefaultCascade()

	tests := []struct {
		open int
		want types.Point
	}{
		{0, types.Point{X: 50, Y: 50}},
		{1, types.Point{X: 70, Y: 70}},
		{7, types.Point{X: 190, Y: 190}}, // 140 mod 200, 140 mod 150
		{8, types.Point{X: 210, Y: 60}},  // 160 mod 200, 160 mod 150 = 10
		{10, types.Point{X: 50, Y: 100}}, // 200 mod 200, 200 mod 150
	}

	for _, tt := range tests {
		got := Cascade(c, tt.open)
		if got != tt.want {
			t.Errorf("Cascade(%d) = %+v, want %+v", tt.open, got, tt.want)
		}
	}
}

func TestCascade_ZeroRange(t *testing.T) {
	c := CascadeSettings{BaseX: 10, BaseY: 10, Step: 5}
	got := Cascade(c, 3)
	if got.X != 25 || got.Y != 25 {
		t.Errorf("Cascade() = %+v, want (25, 25)", got)
	}
}

func TestWorkspace(t *testing.T) {
	ws := Workspace(types.Size{Width: 1280, Height: 800}, 40)
	want := types.Rect{X: 0, Y: 0, Width: 1280, Height: 760}
	if ws != want {
		t.Errorf("Workspace() = %+v, want %+v", ws, want)
	}

	ws = Workspace(types.Size{Width: 100, Height: 20}, 40)
	if ws.Height != 0 {
		t.Errorf("Workspace().Height = %v, want 0 when taskbar exceeds viewport", ws.Height)
	}
}

func TestClampDrag(t *testing.T) {
	ws := types.Rect{X: 0, Y: 0, Width: 1280, Height: 760}
	size := types.Size{Width: 300, Height: 200}

	tests := []struct {
		name string
		pos  types.Point
		want types.Point
	}{
		{"inside", types.Point{X: 190, Y: 140}, types.Point{X: 190, Y: 140}},
		{"far left keeps margin visible", types.Point{X: -500, Y: 100}, types.Point{X: -200, Y: 100}},
		{"far right keeps margin visible", types.Point{X: 1500, Y: 100}, types.Point{X: 1180, Y: 100}},
		{"above top", types.Point{X: 100, Y: -40}, types.Point{X: 100, Y: 0}},
		{"below bottom keeps titlebar", types.Point{X: 100, Y: 900}, types.Point{X: 100, Y: 730}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampDrag(tt.pos, size, ws, 100, 30)
			if got != tt.want {
				t.Errorf("ClampDrag(%+v) = %+v, want %+v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestResizeFromEdge(t *testing.T) {
	anchor := types.Rect{X: 50, Y: 50, Width: 300, Height: 200}
	minSize := types.Size{Width: 200, Height: 100}

	tests := []struct {
		name   string
		edge   types.Edge
		dx, dy float64
		want   types.Rect
	}{
		{
			name: "right grows",
			edge: types.EdgeRight, dx: 40,
			want: types.Rect{X: 50, Y: 50, Width: 340, Height: 200},
		},
		{
			name: "right floors at minimum",
			edge: types.EdgeRight, dx: -250,
			want: types.Rect{X: 50, Y: 50, Width: 200, Height: 200},
		},
		{
			name: "bottom grows",
			edge: types.EdgeBottom, dy: 25,
			want: types.Rect{X: 50, Y: 50, Width: 300, Height: 225},
		},
		{
			name: "left shrinks and shifts",
			edge: types.EdgeLeft, dx: 50,
			want: types.Rect{X: 100, Y: 50, Width: 250, Height: 200},
		},
		{
			name: "left grows and shifts",
			edge: types.EdgeLeft, dx: -30,
			want: types.Rect{X: 20, Y: 50, Width: 330, Height: 200},
		},
		{
			name: "left past minimum leaves axis unchanged",
			edge: types.EdgeLeft, dx: 150,
			want: anchor,
		},
		{
			name: "left exactly at minimum",
			edge: types.EdgeLeft, dx: 100,
			want: types.Rect{X: 150, Y: 50, Width: 200, Height: 200},
		},
		{
			name: "top shrinks and shifts",
			edge: types.EdgeTop, dy: 60,
			want: types.Rect{X: 50, Y: 110, Width: 300, Height: 140},
		},
		{
			name: "top-left axes are independent",
			edge: types.EdgeTop | types.EdgeLeft, dx: 150, dy: 20,
			want: types.Rect{X: 50, Y: 70, Width: 300, Height: 180},
		},
		{
			name: "bottom-right grows both",
			edge: types.EdgeBottom | types.EdgeRight, dx: 10, dy: 10,
			want: types.Rect{X: 50, Y: 50, Width: 310, Height: 210},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResizeFromEdge(anchor, tt.edge, tt.dx, tt.dy, minSize)
			if got != tt.want {
				t.Errorf("ResizeFromEdge(%s, %v, %v) = %+v, want %+v", tt.edge, tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestEnforceMinimum(t *testing.T) {
	r := EnforceMinimum(types.Rect{X: 5, Y: 5, Width: 100, Height: 400}, types.Size{Width: 300, Height: 200})
	want := types.Rect{X: 5, Y: 5, Width: 300, Height: 400}
	if r != want {
		t.Errorf("EnforceMinimum() = %+v, want %+v", r, want)
	}
}
