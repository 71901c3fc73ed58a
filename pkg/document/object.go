package document

import (
	"fmt"

	"github.com/arc-engines/arc/pkg/geom"
)

// Kind identifies the type of a document object.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindCircle
	KindArc
	KindRectangle
	KindWire
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindCircle:
		return "Circle"
	case KindArc:
		return "Arc"
	case KindRectangle:
		return "Rectangle"
	case KindWire:
		return "Wire"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Object is a named shape stored in a document.
type Object struct {
	ID      int
	Name    string
	Kind    Kind
	Shape   geom.Shape
	Support int // ID of the object this one is attached to, 0 if none
}

// CircleParams describes a circle or arc to create. Angles are in degrees;
// leaving both nil creates a full circle.
type CircleParams struct {
	Radius     float64
	StartAngle *float64
	EndAngle   *float64
	Placement  geom.Placement
	Face       bool
	Support    int
}

// RectangleParams describes a planar rectangle to create.
type RectangleParams struct {
	Length    float64
	Height    float64
	Placement geom.Placement
	Face      bool
	Support   int
}

// Angle returns a pointer to deg, for filling CircleParams.
func Angle(deg float64) *float64 {
	return &deg
}
