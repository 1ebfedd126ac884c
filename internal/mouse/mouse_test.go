package mouse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/deskwm/internal/types"
)

type recorder struct {
	calls  []string
	failAt int // fail the nth move, 1-based; 0 never
	moves  int
}

func (r *recorder) BeginDrag(ctx context.Context, id uint32, x, y float64) error {
	r.calls = append(r.calls, fmt.Sprintf("drag %d %v,%v", id, x, y))
	return nil
}

func (r *recorder) BeginResize(ctx context.Context, id uint32, edge string, x, y float64) error {
	r.calls = append(r.calls, fmt.Sprintf("resize %d %s %v,%v", id, edge, x, y))
	return nil
}

func (r *recorder) PointerMove(ctx context.Context, x, y float64) error {
	r.moves++
	if r.moves == r.failAt {
		return errors.New("socket closed")
	}
	r.calls = append(r.calls, fmt.Sprintf("move %v,%v", x, y))
	return nil
}

func (r *recorder) PointerUp(ctx context.Context) error {
	r.calls = append(r.calls, "up")
	return nil
}

func TestPath(t *testing.T) {
	got := Path(types.Point{X: 0, Y: 0}, types.Point{X: 10, Y: 20}, 2)
	assert.Equal(t, []types.Point{{X: 5, Y: 10}, {X: 10, Y: 20}}, got)

	got = Path(types.Point{X: 1, Y: 1}, types.Point{X: 3, Y: 3}, 0)
	assert.Equal(t, []types.Point{{X: 3, Y: 3}}, got)
}

func TestDrag(t *testing.T) {
	r := &recorder{}
	err := Drag(context.Background(), r, 4, types.Point{X: 60, Y: 60}, types.Point{X: 200, Y: 150}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"drag 4 60,60", "move 130,105", "move 200,150", "up"}, r.calls)
}

func TestResize(t *testing.T) {
	r := &recorder{}
	err := Resize(context.Background(), r, 2, types.EdgeBottom|types.EdgeRight, types.Point{X: 10, Y: 10}, types.Point{X: 20, Y: 30}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"resize 2 bottom-right 10,10", "move 20,30", "up"}, r.calls)

	err = Resize(context.Background(), &recorder{}, 2, types.EdgeNone, types.Point{}, types.Point{}, 1)
	assert.Error(t, err)
}

func TestDrag_ReleasesAfterFailedMove(t *testing.T) {
	r := &recorder{failAt: 1}
	err := Drag(context.Background(), r, 1, types.Point{}, types.Point{X: 10, Y: 10}, 3)
	require.Error(t, err)
	assert.Equal(t, []string{"drag 1 0,0", "up"}, r.calls)
}
