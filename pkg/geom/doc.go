// Package geom provides the geometry utilities used to build parametric CAD
// objects: vectors, spherical coordinates, placements, simple planar shapes,
// edges and wires, and mass properties.
//
// # Coordinates
//
// ToSpherical converts Cartesian coordinates to spherical ones:
//
//	r     = sqrt(x² + y² + z²)
//	theta = atan2(z, sqrt(x² + y²))  // elevation from the x-y plane, [-π/2, π/2]
//	phi   = atan2(y, x)              // azimuth from +X, (-π, π]
//
// The origin maps to (0, 0, 0) and points on the z-axis have phi = 0. No
// input is rejected; NaN and infinities propagate through the arithmetic.
//
// # Shapes
//
// Point, Circle and Rectangle implement Shape. Circles with differing first
// and last angles are arcs. A Wire is an ordered chain of edges, usually
// produced by SortEdges from the edges of other shapes.
//
// All functions in this package are pure and safe for concurrent use.
package geom
