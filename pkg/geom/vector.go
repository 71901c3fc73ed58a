package geom

import (
	"fmt"
	"math"
)

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z float64
}

// Vec is shorthand for Vector{x, y, z}.
func Vec(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

var (
	unitX = Vector{X: 1}
	unitY = Vector{Y: 1}
	unitZ = Vector{Z: 1}
)

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Scale(k float64) Vector {
	return Vector{v.X * k, v.Y * k, v.Z * k}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Cross(o Vector) Vector {
	return Vector{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v. The zero vector
// is returned unchanged.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector) DistanceTo(o Vector) float64 {
	return v.Sub(o).Length()
}

// ApproxEqual reports whether every component of v is within tol of o.
func (v Vector) ApproxEqual(o Vector, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol &&
		math.Abs(v.Y-o.Y) <= tol &&
		math.Abs(v.Z-o.Z) <= tol
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
