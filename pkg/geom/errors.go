package geom

import "errors"

var (
	// ErrDisconnected is returned when edges cannot be chained into a
	// single wire.
	ErrDisconnected = errors.New("edges do not form a connected wire")

	// ErrUnsupported is returned for mass properties that are not
	// defined for a shape.
	ErrUnsupported = errors.New("unsupported shape")
)
