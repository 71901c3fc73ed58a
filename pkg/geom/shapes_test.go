package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleFull(t *testing.T) {
	c := Circle{Radius: 2, Placement: At(Vec(1, 1, 0))}
	require.False(t, c.IsArc())
	require.Equal(t, 360.0, c.Sweep())
	requireVec(t, Vec(1, 1, 0), c.Centroid())
	requireVec(t, unitZ, c.Normal())

	bb := c.Bounds()
	requireVec(t, Vec(-1, -1, 0), bb.Min)
	requireVec(t, Vec(3, 3, 0), bb.Max)

	edges := c.Edges()
	require.Len(t, edges, 1)
	require.True(t, edges[0].IsClosed(DefaultTolerance))
	assert.InDelta(t, 4*math.Pi, edges[0].Length, tol)
}

func TestCircleArc(t *testing.T) {
	arc := Circle{Radius: 1, FirstAngle: 0, LastAngle: 90, Placement: Identity()}
	require.True(t, arc.IsArc())
	assert.InDelta(t, 90, arc.Sweep(), tol)

	// Quarter arc curve centroid sits at 2r/π on both axes.
	requireVec(t, Vec(2/math.Pi, 2/math.Pi, 0), arc.Centroid())

	bb := arc.Bounds()
	requireVec(t, Vec(0, 0, 0), bb.Min)
	requireVec(t, Vec(1, 1, 0), bb.Max)

	edges := arc.Edges()
	require.Len(t, edges, 1)
	requireVec(t, Vec(1, 0, 0), edges[0].Start)
	requireVec(t, Vec(0, 1, 0), edges[0].End)
	assert.InDelta(t, math.Pi/2, edges[0].Length, tol)

	face := arc
	face.MakeFace = true
	// Circular segment cut by the chord of a quarter circle.
	want := 2 / (3 * (math.Pi - 2))
	requireVec(t, Vec(want, want, 0), face.Centroid())
	require.Len(t, face.Edges(), 2)
}

func TestCircleArcSweepWraps(t *testing.T) {
	arc := Circle{Radius: 1, FirstAngle: 270, LastAngle: 90, Placement: Identity()}
	assert.InDelta(t, 180, arc.Sweep(), tol)

	bb := arc.Bounds()
	requireVec(t, Vec(0, -1, 0), bb.Min)
	requireVec(t, Vec(1, 1, 0), bb.Max)
}

func TestCircleArcBoundsTop(t *testing.T) {
	arc := Circle{Radius: 1, FirstAngle: 45, LastAngle: 135, Placement: Identity()}
	bb := arc.Bounds()
	h := math.Sqrt2 / 2
	requireVec(t, Vec(-h, h, 0), bb.Min)
	requireVec(t, Vec(h, 1, 0), bb.Max)
}

func TestCircleRotated(t *testing.T) {
	c := Circle{Radius: 1, Placement: Placement{Axis: unitX, Angle: 90}}
	requireVec(t, Vec(0, -1, 0), c.Normal())

	bb := c.Bounds()
	requireVec(t, Vec(-1, 0, -1), bb.Min)
	requireVec(t, Vec(1, 0, 1), bb.Max)
}

func TestRectangle(t *testing.T) {
	r := Rectangle{Length: 4, Height: 2, Placement: At(Vec(1, 1, 0))}
	requireVec(t, Vec(3, 2, 0), r.Centroid())
	assert.InDelta(t, 8, r.Area(), tol)

	bb := r.Bounds()
	requireVec(t, Vec(1, 1, 0), bb.Min)
	requireVec(t, Vec(5, 3, 0), bb.Max)

	w, err := NewWire(r.Edges(), DefaultTolerance)
	require.NoError(t, err)
	require.True(t, w.Closed(DefaultTolerance))
	assert.InDelta(t, 12, w.Length(), tol)
	requireVec(t, r.Centroid(), w.Centroid())
	requireVec(t, unitZ, w.Normal())
}

func TestPointShape(t *testing.T) {
	p := Point{Position: Vec(1, 2, 3)}
	requireVec(t, Vec(1, 2, 3), p.Centroid())
	require.Empty(t, p.Edges())
	require.Equal(t, Vec(1, 2, 3), p.Bounds().Min)
}

func TestSortEdges(t *testing.T) {
	a, b, c, d := Vec(0, 0, 0), Vec(1, 0, 0), Vec(1, 1, 0), Vec(0, 1, 0)
	shuffled := []Edge{
		LineEdge(c, d),
		LineEdge(b, a), // reversed
		LineEdge(b, c),
		LineEdge(a, d), // reversed
	}
	sorted, err := SortEdges(shuffled, DefaultTolerance)
	require.NoError(t, err)
	require.Len(t, sorted, 4)
	for i := 1; i < len(sorted); i++ {
		requireVec(t, sorted[i-1].End, sorted[i].Start)
	}
	requireVec(t, sorted[len(sorted)-1].End, sorted[0].Start)
}

func TestSortEdgesMixedShapes(t *testing.T) {
	arc := Circle{Radius: 1, FirstAngle: 0, LastAngle: 180, Placement: Identity()}
	edges := append(arc.Edges(), LineEdge(Vec(-1, 0, 0), Vec(1, 0, 0)))
	w, err := NewWire(edges, DefaultTolerance)
	require.NoError(t, err)
	require.True(t, w.Closed(DefaultTolerance))
	assert.InDelta(t, math.Pi+2, w.Length(), tol)
}

func TestSortEdgesDisconnected(t *testing.T) {
	_, err := SortEdges([]Edge{
		LineEdge(Vec(0, 0, 0), Vec(1, 0, 0)),
		LineEdge(Vec(5, 5, 0), Vec(6, 5, 0)),
	}, DefaultTolerance)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDisconnected))

	_, err = SortEdges(nil, DefaultTolerance)
	require.ErrorIs(t, err, ErrDisconnected)
}
