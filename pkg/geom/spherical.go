package geom

import "math"

// Spherical is a point in spherical coordinates. Theta is the elevation
// above the x-y plane and Phi the azimuth from the positive x-axis, both in
// radians.
type Spherical struct {
	R     float64
	Theta float64
	Phi   float64
}

// ToSpherical converts Cartesian coordinates to (r, theta, phi).
//
// theta lies in [-π/2, π/2] and phi in (-π, π]. Angles that are not
// uniquely defined follow the atan2(0, 0) = 0 convention, so the origin
// yields (0, 0, 0) and the z-axis yields phi = 0.
func ToSpherical(x, y, z float64) (r, theta, phi float64) {
	planar := x*x + y*y
	r = math.Sqrt(planar + z*z)
	theta = math.Atan2(z, math.Sqrt(planar))
	phi = math.Atan2(y, x)
	return r, theta, phi
}

// ToSpherical returns v in spherical coordinates.
func (v Vector) ToSpherical() Spherical {
	r, theta, phi := ToSpherical(v.X, v.Y, v.Z)
	return Spherical{R: r, Theta: theta, Phi: phi}
}

// FromSpherical converts spherical coordinates back to a Cartesian vector.
func FromSpherical(r, theta, phi float64) Vector {
	ct := math.Cos(theta)
	return Vector{
		X: r * ct * math.Cos(phi),
		Y: r * ct * math.Sin(phi),
		Z: r * math.Sin(theta),
	}
}

// ToCartesian is the inverse of Vector.ToSpherical.
func (s Spherical) ToCartesian() Vector {
	return FromSpherical(s.R, s.Theta, s.Phi)
}

// Degrees returns theta and phi in degrees.
func (s Spherical) Degrees() (theta, phi float64) {
	return Degrees(s.Theta), Degrees(s.Phi)
}

func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }

func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
