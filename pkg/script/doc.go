// Package script parses and runs arc command scripts, a small line-oriented
// language for building documents:
//
//	# a closed profile from two half circles
//	circle Top radius 1 from 0 to 180
//	circle Bottom radius 1 from 180 to 360
//	wire Profile of Top, Bottom
//	plane Base length 10 height 5 at (0, 0, -1) rotate 90 about (1, 0, 0) face on Profile
//	point Tip at (0, 0, 4)
//	spherical (1, 1, 1)
//	center Base
//	inertia Base
//	remove Tip
//
// Keywords are case-insensitive. Names are optional on shape statements;
// the document picks a default ("Circle", "Circle001", ...). Angles are in
// degrees. The spherical, center and inertia statements print their result
// to the interpreter's output.
package script
