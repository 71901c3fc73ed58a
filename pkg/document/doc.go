// Package document holds parametric CAD objects in an in-memory document
// and persists documents as s-expression files.
//
// A Document plays the role of the host application's active document: it
// assigns object IDs and unique names, validates creation parameters and
// keeps a revision counter that advances on every change. Objects wrap the
// shapes from package geom.
//
// # File format
//
// Documents are stored as a single s-expression:
//
//	(arc_document (version 1) (name Doc)
//	  (point (id 1) (name Point) (at 1 2 3))
//	  (circle (id 2) (name Arc) (radius 5) (angles 0 90) (face no)
//	          (placement 0 0 0 0 0 1 0) (support 0))
//	  (rectangle (id 3) (name Rectangle) (size 10 5) (face yes)
//	             (placement 0 0 0 0 0 1 0) (support 0))
//	  (wire (id 4) (name Wire)
//	        (edge (start 0 0 0) (end 1 0 0) (centroid 0.5 0 0) (length 1))))
//
// Placements are written as base x y z, axis x y z and angle in degrees.
package document
