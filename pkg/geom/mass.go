package geom

import (
	"fmt"
	"math"
)

// Inertia holds second moments about a shape's centroidal local axes. For
// faces the values are area moments; for curves they are per unit length.
type Inertia struct {
	Ixx   float64 `json:"ixx"`
	Iyy   float64 `json:"iyy"`
	Polar float64 `json:"polar"`
}

func inertia(ixx, iyy float64) Inertia {
	return Inertia{Ixx: ixx, Iyy: iyy, Polar: ixx + iyy}
}

// CenterOfMass returns a placement at the shape's centroid with its local
// +Z axis along the shape's normal.
func CenterOfMass(s Shape) Placement {
	return PlacementFromNormal(s.Centroid(), s.Normal())
}

// MomentOfInertia returns the second moments of s about its centroidal local
// x and y axes. Arcs and free-form wires return ErrUnsupported.
func MomentOfInertia(s Shape) (Inertia, error) {
	switch v := s.(type) {
	case Point, *Point:
		return Inertia{}, nil
	case Rectangle:
		return rectangleInertia(v), nil
	case *Rectangle:
		return rectangleInertia(*v), nil
	case Circle:
		return circleInertia(v)
	case *Circle:
		return circleInertia(*v)
	}
	return Inertia{}, fmt.Errorf("geom: moment of inertia of %T: %w", s, ErrUnsupported)
}

func rectangleInertia(r Rectangle) Inertia {
	l, h := r.Length, r.Height
	if r.MakeFace {
		return inertia(l*h*h*h/12, h*l*l*l/12)
	}
	// Outline: two sides of length l at ±h/2 and two of length h at ±l/2.
	return inertia(l*h*h/2+h*h*h/6, h*l*l/2+l*l*l/6)
}

func circleInertia(c Circle) (Inertia, error) {
	if c.IsArc() && !c.full() {
		return Inertia{}, fmt.Errorf("geom: moment of inertia of arc: %w", ErrUnsupported)
	}
	r := c.Radius
	if c.MakeFace {
		i := math.Pi * r * r * r * r / 4
		return inertia(i, i), nil
	}
	i := math.Pi * r * r * r
	return inertia(i, i), nil
}
