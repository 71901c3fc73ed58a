package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a parsed command script.
type Script struct {
	Statements []*Statement `@@*`
}

// Statement is one command. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	Point     *PointStmt     `  @@`
	Circle    *CircleStmt    `| @@`
	Plane     *PlaneStmt     `| @@`
	Wire      *WireStmt      `| @@`
	Spherical *SphericalStmt `| @@`
	Center    *CenterStmt    `| @@`
	Inertia   *InertiaStmt   `| @@`
	Remove    *RemoveStmt    `| @@`
}

// Vec is a parenthesized coordinate triple: (x, y, z)
type Vec struct {
	X float64 `LParen @Number Comma`
	Y float64 `@Number Comma`
	Z float64 `@Number RParen`
}

// PointStmt: point [name] at (x, y, z)
type PointStmt struct {
	Name string `"point" ( (?! "at") @Ident )?`
	At   *Vec   `"at" @@`
}

// CircleStmt: circle [name] radius r [from a to b] [options]
type CircleStmt struct {
	Name    string         `"circle" ( (?! "radius") @Ident )?`
	Radius  float64        `"radius" @Number`
	Angles  *AngleRange    `@@?`
	Options []*ShapeOption `@@*`
}

// AngleRange: from a to b
type AngleRange struct {
	From float64 `"from" @Number`
	To   float64 `"to" @Number`
}

// PlaneStmt: plane [name] length l height h [options]
type PlaneStmt struct {
	Name    string         `"plane" ( (?! "length") @Ident )?`
	Length  float64        `"length" @Number`
	Height  float64        `"height" @Number`
	Options []*ShapeOption `@@*`
}

// ShapeOption is one of: at (x, y, z) | rotate deg about (x, y, z) | face | on name
type ShapeOption struct {
	At      *Vec      `  "at" @@`
	Rotate  *Rotation `| @@`
	Face    bool      `| @"face"`
	Support string    `| "on" @Ident`
}

// Rotation: rotate deg about (x, y, z)
type Rotation struct {
	Angle float64 `"rotate" @Number`
	Axis  *Vec    `"about" @@`
}

// WireStmt: wire [name] of a, b, ...
type WireStmt struct {
	Name    string   `"wire" ( (?! "of") @Ident )?`
	Sources []string `"of" @Ident ( Comma @Ident )*`
}

// SphericalStmt: spherical (x, y, z)
type SphericalStmt struct {
	Point *Vec `"spherical" @@`
}

// CenterStmt: center name
type CenterStmt struct {
	Target string `"center" @Ident`
}

// InertiaStmt: inertia name
type InertiaStmt struct {
	Target string `"inertia" @Ident`
}

// RemoveStmt: remove name
type RemoveStmt struct {
	Target string `"remove" @Ident`
}
