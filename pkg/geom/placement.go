package geom

import "math"

// Placement positions local geometry in the document: a rotation of Angle
// degrees about Axis, followed by a translation to Base.
type Placement struct {
	Base  Vector
	Axis  Vector // Rotation axis; the zero vector means +Z
	Angle float64
}

// Identity returns the placement that leaves geometry unchanged.
func Identity() Placement {
	return Placement{Axis: unitZ}
}

// At returns an unrotated placement at base.
func At(base Vector) Placement {
	return Placement{Base: base, Axis: unitZ}
}

func (p Placement) axis() Vector {
	if p.Axis.IsZero() {
		return unitZ
	}
	return p.Axis.Normalize()
}

// rotate applies Rodrigues' rotation formula for angle degrees about p's axis.
func (p Placement) rotate(v Vector, angle float64) Vector {
	if angle == 0 {
		return v
	}
	k := p.axis()
	rad := Radians(angle)
	cos, sin := math.Cos(rad), math.Sin(rad)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// RotateVector applies only the rotational part of the placement.
func (p Placement) RotateVector(v Vector) Vector {
	return p.rotate(v, p.Angle)
}

// Apply maps a local point into document coordinates.
func (p Placement) Apply(v Vector) Vector {
	return p.rotate(v, p.Angle).Add(p.Base)
}

// ApplyInverse maps a document point back into local coordinates.
func (p Placement) ApplyInverse(v Vector) Vector {
	return p.rotate(v.Sub(p.Base), -p.Angle)
}

// PlacementFromNormal returns a placement at base whose local +Z axis points
// along normal. A zero normal leaves the orientation unchanged.
func PlacementFromNormal(base, normal Vector) Placement {
	n := normal.Normalize()
	if n.IsZero() {
		return At(base)
	}
	axis := unitZ.Cross(n)
	if axis.Length() < 1e-12 {
		if n.Z > 0 {
			return At(base)
		}
		return Placement{Base: base, Axis: unitX, Angle: 180}
	}
	cos := math.Max(-1, math.Min(1, unitZ.Dot(n)))
	return Placement{
		Base:  base,
		Axis:  axis.Normalize(),
		Angle: Degrees(math.Acos(cos)),
	}
}
