package geom

import "math"

// BoundingBox is an axis-aligned box in document coordinates.
type BoundingBox struct {
	Min Vector
	Max Vector
}

// NewBoundingBox creates an empty bounding box.
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Vector{inf, inf, inf},
		Max: Vector{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether no point has been added to the box.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y || bb.Min.Z > bb.Max.Z
}

// Expand grows the box to include v.
func (bb *BoundingBox) Expand(v Vector) {
	bb.Min = Vector{math.Min(bb.Min.X, v.X), math.Min(bb.Min.Y, v.Y), math.Min(bb.Min.Z, v.Z)}
	bb.Max = Vector{math.Max(bb.Max.X, v.X), math.Max(bb.Max.Y, v.Y), math.Max(bb.Max.Z, v.Z)}
}

// ExpandBox grows the box to include other.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

func (bb BoundingBox) Size() Vector {
	if bb.IsEmpty() {
		return Vector{}
	}
	return bb.Max.Sub(bb.Min)
}

func (bb BoundingBox) Center() Vector {
	return bb.Min.Add(bb.Max).Scale(0.5)
}

func (bb BoundingBox) Contains(v Vector) bool {
	return v.X >= bb.Min.X && v.X <= bb.Max.X &&
		v.Y >= bb.Min.Y && v.Y <= bb.Max.Y &&
		v.Z >= bb.Min.Z && v.Z <= bb.Max.Z
}
