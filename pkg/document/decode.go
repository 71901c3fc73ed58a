package document

import (
	"fmt"
	"io"
	"os"

	"github.com/arc-engines/arc/pkg/geom"
	"github.com/chewxy/sexp"
)

// Decode reads a document written by Encode.
func Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("document: read: %w", err)
	}
	exprs, err := sexp.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("document: %w: %v", ErrMalformed, err)
	}
	if len(exprs) != 1 || exprs[0] == nil || exprs[0].IsLeaf() || keyOf(exprs[0]) != "arc_document" {
		return nil, fmt.Errorf("document: %w: expected a single (arc_document ...) form", ErrMalformed)
	}
	root := exprs[0]

	version, err := intField(root, "version")
	if err != nil {
		return nil, fmt.Errorf("document: %w: %v", ErrUnsupportedVersion, err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("document: %w: %d", ErrUnsupportedVersion, version)
	}

	name, err := field(root, "name")
	if err != nil {
		return nil, fmt.Errorf("document: %w: %v", ErrMalformed, err)
	}
	doc, err := New(name)
	if err != nil {
		return nil, err
	}

	for _, item := range listItems(root)[1:] {
		if item.IsLeaf() {
			return nil, fmt.Errorf("document: %w: unexpected atom %v", ErrMalformed, item)
		}
		key := keyOf(item)
		if key == "version" || key == "name" {
			continue
		}
		obj, err := decodeObject(key, item)
		if err != nil {
			return nil, fmt.Errorf("document: %w: %s: %w", ErrMalformed, key, err)
		}
		if err := doc.restore(obj); err != nil {
			return nil, err
		}
	}

	for _, obj := range doc.Objects() {
		if obj.Support != 0 {
			if _, err := doc.Get(obj.Support); err != nil {
				return nil, fmt.Errorf("document: %w: %s support %d does not exist", ErrMalformed, obj.Name, obj.Support)
			}
		}
	}
	return doc, nil
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func decodeObject(key string, s sexp.Sexp) (Object, error) {
	var (
		obj Object
		err error
	)
	if obj.ID, err = intField(s, "id"); err != nil {
		return obj, err
	}
	if obj.Name, err = field(s, "name"); err != nil {
		return obj, err
	}

	switch key {
	case "point":
		at, err := vectorField(s, "at")
		if err != nil {
			return obj, err
		}
		obj.Kind, obj.Shape = KindPoint, geom.Point{Position: at}

	case "circle":
		var c geom.Circle
		if c.Radius, err = floatField(s, "radius", 1); err != nil {
			return obj, err
		}
		if !finitePositive(c.Radius) {
			return obj, fmt.Errorf("%w: %v", ErrInvalidRadius, c.Radius)
		}
		if c.FirstAngle, err = floatField(s, "angles", 1); err != nil {
			return obj, err
		}
		if c.LastAngle, err = floatField(s, "angles", 2); err != nil {
			return obj, err
		}
		if c.MakeFace, err = boolField(s, "face"); err != nil {
			return obj, err
		}
		if c.Placement, err = placementField(s); err != nil {
			return obj, err
		}
		if obj.Support, err = intField(s, "support"); err != nil {
			return obj, err
		}
		obj.Kind = KindCircle
		if c.IsArc() {
			obj.Kind = KindArc
		}
		obj.Shape = c

	case "rectangle":
		var r geom.Rectangle
		if r.Length, err = floatField(s, "size", 1); err != nil {
			return obj, err
		}
		if r.Height, err = floatField(s, "size", 2); err != nil {
			return obj, err
		}
		if !finitePositive(r.Length) || !finitePositive(r.Height) {
			return obj, fmt.Errorf("%w: %v x %v", ErrInvalidSize, r.Length, r.Height)
		}
		if r.MakeFace, err = boolField(s, "face"); err != nil {
			return obj, err
		}
		if r.Placement, err = placementField(s); err != nil {
			return obj, err
		}
		if obj.Support, err = intField(s, "support"); err != nil {
			return obj, err
		}
		obj.Kind, obj.Shape = KindRectangle, r

	case "wire":
		var w geom.Wire
		for _, node := range findAllNodes(s, "edge") {
			e, err := decodeEdge(node)
			if err != nil {
				return obj, err
			}
			w.Chain = append(w.Chain, e)
		}
		if len(w.Chain) == 0 {
			return obj, fmt.Errorf("wire %q has no edges", obj.Name)
		}
		obj.Kind, obj.Shape = KindWire, w

	default:
		return obj, fmt.Errorf("unknown object type")
	}
	return obj, nil
}

func decodeEdge(s sexp.Sexp) (geom.Edge, error) {
	var (
		e   geom.Edge
		err error
	)
	if e.Start, err = vectorField(s, "start"); err != nil {
		return e, err
	}
	if e.End, err = vectorField(s, "end"); err != nil {
		return e, err
	}
	if e.Centroid, err = vectorField(s, "centroid"); err != nil {
		return e, err
	}
	if e.Length, err = floatField(s, "length", 1); err != nil {
		return e, err
	}
	return e, nil
}

func placementField(s sexp.Sexp) (geom.Placement, error) {
	node, ok := findNode(s, "placement")
	if !ok {
		return geom.Placement{}, fmt.Errorf("missing (placement)")
	}
	base, err := getVector(node, 1)
	if err != nil {
		return geom.Placement{}, fmt.Errorf("(placement) base: %w", err)
	}
	axis, err := getVector(node, 4)
	if err != nil {
		return geom.Placement{}, fmt.Errorf("(placement) axis: %w", err)
	}
	angle, err := getFloat(node, 7)
	if err != nil {
		return geom.Placement{}, fmt.Errorf("(placement) angle: %w", err)
	}
	return geom.Placement{Base: base, Axis: axis, Angle: angle}, nil
}
