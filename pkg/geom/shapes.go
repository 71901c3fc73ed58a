package geom

import "math"

// Shape is a placed geometric object that can report its mass properties
// and boundary edges.
type Shape interface {
	Centroid() Vector
	Normal() Vector
	Bounds() BoundingBox
	Edges() []Edge
}

// Point is a single vertex.
type Point struct {
	Position Vector
}

func (p Point) Centroid() Vector { return p.Position }
func (p Point) Normal() Vector   { return unitZ }
func (p Point) Edges() []Edge    { return nil }

func (p Point) Bounds() BoundingBox {
	bb := NewBoundingBox()
	bb.Expand(p.Position)
	return bb
}

// Circle is a full circle or circular arc lying in the local x-y plane,
// centered on the placement base. Angles are in degrees, measured
// counterclockwise from local +X.
type Circle struct {
	Radius     float64
	FirstAngle float64
	LastAngle  float64
	Placement  Placement
	MakeFace   bool
}

// IsArc reports whether the circle is open.
func (c Circle) IsArc() bool {
	return c.FirstAngle != c.LastAngle
}

// Sweep returns the swept angle in degrees, in (0, 360].
func (c Circle) Sweep() float64 {
	if !c.IsArc() {
		return 360
	}
	s := math.Mod(c.LastAngle-c.FirstAngle, 360)
	if s <= 0 {
		s += 360
	}
	return s
}

func (c Circle) full() bool {
	return c.Sweep() >= 360
}

// PointAt returns the point at angle degrees on the circle.
func (c Circle) PointAt(angle float64) Vector {
	rad := Radians(angle)
	return c.Placement.Apply(Vector{
		X: c.Radius * math.Cos(rad),
		Y: c.Radius * math.Sin(rad),
	})
}

func (c Circle) Center() Vector { return c.Placement.Base }

func (c Circle) Normal() Vector { return c.Placement.RotateVector(unitZ) }

// Centroid returns the centroid of the arc curve, or of the region bounded by
// the arc and its chord when MakeFace is set.
func (c Circle) Centroid() Vector {
	if c.full() || c.Radius == 0 {
		return c.Center()
	}
	alpha := Radians(c.Sweep()) / 2
	var d float64
	if c.MakeFace {
		d = 4 * c.Radius * math.Pow(math.Sin(alpha), 3) / (3 * (2*alpha - math.Sin(2*alpha)))
	} else {
		d = c.Radius * math.Sin(alpha) / alpha
	}
	mid := Radians(c.FirstAngle) + alpha
	return c.Placement.Apply(Vector{X: d * math.Cos(mid), Y: d * math.Sin(mid)})
}

func (c Circle) inSweep(angle float64) bool {
	if c.full() {
		return true
	}
	a := math.Mod(angle-c.FirstAngle, 360)
	if a < 0 {
		a += 360
	}
	return a <= c.Sweep()
}

// Bounds returns the exact axis-aligned bounds of the curve.
func (c Circle) Bounds() BoundingBox {
	bb := NewBoundingBox()
	u := c.Placement.RotateVector(unitX)
	w := c.Placement.RotateVector(unitY)
	if !c.full() {
		bb.Expand(c.PointAt(c.FirstAngle))
		bb.Expand(c.PointAt(c.LastAngle))
	}
	// Each coordinate of C + r(u·cos a + w·sin a) peaks where tan a = w_i/u_i.
	for _, uw := range [][2]float64{{u.X, w.X}, {u.Y, w.Y}, {u.Z, w.Z}} {
		if uw[0] == 0 && uw[1] == 0 {
			continue
		}
		a := Degrees(math.Atan2(uw[1], uw[0]))
		for _, ext := range []float64{a, a + 180} {
			if c.inSweep(ext) {
				bb.Expand(c.PointAt(ext))
			}
		}
	}
	if bb.IsEmpty() {
		bb.Expand(c.Center())
	}
	return bb
}

// Edges returns one closed edge for a full circle, or the arc edge plus its
// closing chord for an arc face.
func (c Circle) Edges() []Edge {
	if c.full() {
		start := c.PointAt(c.FirstAngle)
		return []Edge{{
			Start:    start,
			End:      start,
			Centroid: c.Center(),
			Length:   2 * math.Pi * c.Radius,
		}}
	}
	arc := Circle{Radius: c.Radius, FirstAngle: c.FirstAngle, LastAngle: c.LastAngle, Placement: c.Placement}
	edges := []Edge{{
		Start:    c.PointAt(c.FirstAngle),
		End:      c.PointAt(c.LastAngle),
		Centroid: arc.Centroid(),
		Length:   c.Radius * Radians(c.Sweep()),
	}}
	if c.MakeFace {
		edges = append(edges, LineEdge(edges[0].End, edges[0].Start))
	}
	return edges
}

// Rectangle spans Length along local +X and Height along local +Y from the
// placement base.
type Rectangle struct {
	Length    float64
	Height    float64
	Placement Placement
	MakeFace  bool
}

// Corners returns the four corners counterclockwise from the base.
func (r Rectangle) Corners() [4]Vector {
	return [4]Vector{
		r.Placement.Apply(Vector{}),
		r.Placement.Apply(Vector{X: r.Length}),
		r.Placement.Apply(Vector{X: r.Length, Y: r.Height}),
		r.Placement.Apply(Vector{Y: r.Height}),
	}
}

func (r Rectangle) Centroid() Vector {
	return r.Placement.Apply(Vector{X: r.Length / 2, Y: r.Height / 2})
}

func (r Rectangle) Normal() Vector { return r.Placement.RotateVector(unitZ) }

func (r Rectangle) Area() float64 { return r.Length * r.Height }

func (r Rectangle) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for _, v := range r.Corners() {
		bb.Expand(v)
	}
	return bb
}

func (r Rectangle) Edges() []Edge {
	c := r.Corners()
	return []Edge{
		LineEdge(c[0], c[1]),
		LineEdge(c[1], c[2]),
		LineEdge(c[2], c[3]),
		LineEdge(c[3], c[0]),
	}
}
