package document

import "errors"

var (
	ErrNotFound           = errors.New("object not found")
	ErrDuplicate          = errors.New("duplicate object")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidRadius      = errors.New("radius must be finite and positive")
	ErrInvalidSize        = errors.New("length and height must be finite and positive")
	ErrInvalidAngles      = errors.New("arc needs both a start and an end angle")
	ErrMalformed          = errors.New("malformed document")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)
