package geom

import "fmt"

// DefaultTolerance is the distance under which two vertices are considered
// coincident when joining edges.
const DefaultTolerance = 1e-7

// Edge is a bounded curve between two vertices. Only the data needed for
// chaining and mass properties is kept: the end points, the curve centroid
// and its length.
type Edge struct {
	Start    Vector
	End      Vector
	Centroid Vector
	Length   float64
}

// LineEdge returns the straight edge from a to b.
func LineEdge(a, b Vector) Edge {
	return Edge{
		Start:    a,
		End:      b,
		Centroid: a.Add(b).Scale(0.5),
		Length:   a.DistanceTo(b),
	}
}

// Reversed returns the edge traversed in the opposite direction.
func (e Edge) Reversed() Edge {
	e.Start, e.End = e.End, e.Start
	return e
}

// IsClosed reports whether the edge starts where it ends.
func (e Edge) IsClosed(tol float64) bool {
	return e.Start.DistanceTo(e.End) <= tol
}

// SortEdges orders edges into a single connected chain, reversing edges
// where needed. The first edge keeps its direction. It fails with
// ErrDisconnected if any edge cannot be attached to the chain.
func SortEdges(edges []Edge, tol float64) ([]Edge, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrDisconnected)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	chain := []Edge{edges[0]}
	remaining := append([]Edge(nil), edges[1:]...)

	for len(remaining) > 0 {
		head, tail := chain[0].Start, chain[len(chain)-1].End
		attached := false
		for i, e := range remaining {
			switch {
			case e.Start.DistanceTo(tail) <= tol:
				chain = append(chain, e)
			case e.End.DistanceTo(tail) <= tol:
				chain = append(chain, e.Reversed())
			case e.End.DistanceTo(head) <= tol:
				chain = append([]Edge{e}, chain...)
			case e.Start.DistanceTo(head) <= tol:
				chain = append([]Edge{e.Reversed()}, chain...)
			default:
				continue
			}
			remaining = append(remaining[:i], remaining[i+1:]...)
			attached = true
			break
		}
		if !attached {
			return nil, fmt.Errorf("%w: %d of %d edges unconnected", ErrDisconnected, len(remaining), len(edges))
		}
	}
	return chain, nil
}

// Wire is an ordered chain of connected edges.
type Wire struct {
	Chain []Edge
}

// NewWire sorts edges into a wire.
func NewWire(edges []Edge, tol float64) (Wire, error) {
	sorted, err := SortEdges(edges, tol)
	if err != nil {
		return Wire{}, err
	}
	return Wire{Chain: sorted}, nil
}

// Closed reports whether the wire ends where it starts.
func (w Wire) Closed(tol float64) bool {
	if len(w.Chain) == 0 {
		return false
	}
	return w.Chain[0].Start.DistanceTo(w.Chain[len(w.Chain)-1].End) <= tol
}

func (w Wire) Length() float64 {
	var total float64
	for _, e := range w.Chain {
		total += e.Length
	}
	return total
}

// Centroid returns the length-weighted centroid of the edges.
func (w Wire) Centroid() Vector {
	total := w.Length()
	if total == 0 {
		if len(w.Chain) == 0 {
			return Vector{}
		}
		return w.Chain[0].Start
	}
	var sum Vector
	for _, e := range w.Chain {
		sum = sum.Add(e.Centroid.Scale(e.Length))
	}
	return sum.Scale(1 / total)
}

// Normal estimates the wire's plane normal with Newell's method. Open,
// straight or degenerate wires report +Z.
func (w Wire) Normal() Vector {
	var n Vector
	for _, e := range w.Chain {
		a, b := e.Start, e.End
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if n.Length() < 1e-12 {
		return unitZ
	}
	return n.Normalize()
}

// Bounds covers the edge end points and centroids. Arcs bulging past
// those points are not included.
func (w Wire) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for _, e := range w.Chain {
		bb.Expand(e.Start)
		bb.Expand(e.End)
		bb.Expand(e.Centroid)
	}
	return bb
}

func (w Wire) Edges() []Edge {
	return append([]Edge(nil), w.Chain...)
}
