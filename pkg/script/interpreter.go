package script

import (
	"fmt"
	"io"
	"log"

	"github.com/arc-engines/arc/pkg/document"
	"github.com/arc-engines/arc/pkg/geom"
)

// Interpreter runs scripts against a document.
type Interpreter struct {
	Config   *Config
	Document *document.Document
	Out      io.Writer   // Receives spherical, center and inertia results
	Log      *log.Logger // Optional diagnostics
}

// NewInterpreter creates an interpreter with a validated copy of cfg. A nil
// cfg uses DefaultConfig.
func NewInterpreter(doc *document.Document, out io.Writer, cfg *Config) (*Interpreter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{Config: &c, Document: doc, Out: out}, nil
}

// Run executes the statements in order and stops at the first error. The
// error is prefixed with the statement's position.
func (in *Interpreter) Run(s *Script) error {
	for _, st := range s.Statements {
		if err := in.exec(st); err != nil {
			return fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	return nil
}

func (in *Interpreter) exec(st *Statement) error {
	switch {
	case st.Point != nil:
		obj, err := in.Document.AddPoint(st.Point.Name, st.Point.At.vector())
		return in.created(obj, err)

	case st.Circle != nil:
		c := st.Circle
		opts, err := in.options(c.Options)
		if err != nil {
			return err
		}
		params := document.CircleParams{
			Radius:    c.Radius,
			Placement: opts.placement,
			Face:      opts.face,
			Support:   opts.support,
		}
		if c.Angles != nil {
			params.StartAngle = document.Angle(c.Angles.From)
			params.EndAngle = document.Angle(c.Angles.To)
		}
		obj, err := in.Document.AddCircle(c.Name, params)
		return in.created(obj, err)

	case st.Plane != nil:
		p := st.Plane
		opts, err := in.options(p.Options)
		if err != nil {
			return err
		}
		obj, err := in.Document.AddPlane(p.Name, document.RectangleParams{
			Length:    p.Length,
			Height:    p.Height,
			Placement: opts.placement,
			Face:      opts.face,
			Support:   opts.support,
		})
		return in.created(obj, err)

	case st.Wire != nil:
		ids := make([]int, 0, len(st.Wire.Sources))
		for _, name := range st.Wire.Sources {
			obj, err := in.Document.Lookup(name)
			if err != nil {
				return err
			}
			ids = append(ids, obj.ID)
		}
		obj, err := in.Document.JoinEdges(st.Wire.Name, in.Config.JoinTolerance, ids...)
		return in.created(obj, err)

	case st.Spherical != nil:
		v := st.Spherical.Point.vector()
		fmt.Fprintf(in.Out, "spherical %s: %s\n", v, in.Config.FormatSpherical(v.ToSpherical()))
		return nil

	case st.Center != nil:
		obj, err := in.Document.Lookup(st.Center.Target)
		if err != nil {
			return err
		}
		fmt.Fprintf(in.Out, "center %s: %s\n", obj.Name, in.Config.FormatPlacement(geom.CenterOfMass(obj.Shape)))
		return nil

	case st.Inertia != nil:
		obj, err := in.Document.Lookup(st.Inertia.Target)
		if err != nil {
			return err
		}
		moments, err := geom.MomentOfInertia(obj.Shape)
		if err != nil {
			return err
		}
		fmt.Fprintf(in.Out, "inertia %s: %s\n", obj.Name, in.Config.FormatInertia(moments))
		return nil

	case st.Remove != nil:
		obj, err := in.Document.Lookup(st.Remove.Target)
		if err != nil {
			return err
		}
		if err := in.Document.Remove(obj.ID); err != nil {
			return err
		}
		in.logf("removed %s %s", obj.Kind, obj.Name)
		return nil
	}
	return fmt.Errorf("empty statement")
}

type shapeOptions struct {
	placement geom.Placement
	face      bool
	support   int
}

// options folds shape options in order; later options override earlier ones.
func (in *Interpreter) options(opts []*ShapeOption) (shapeOptions, error) {
	out := shapeOptions{placement: geom.Identity()}
	for _, o := range opts {
		switch {
		case o.At != nil:
			out.placement.Base = o.At.vector()
		case o.Rotate != nil:
			out.placement.Axis = o.Rotate.Axis.vector()
			out.placement.Angle = o.Rotate.Angle
		case o.Face:
			out.face = true
		case o.Support != "":
			obj, err := in.Document.Lookup(o.Support)
			if err != nil {
				return out, err
			}
			out.support = obj.ID
		}
	}
	return out, nil
}

func (in *Interpreter) created(obj *document.Object, err error) error {
	if err != nil {
		return err
	}
	in.logf("created %s %s (id %d)", obj.Kind, obj.Name, obj.ID)
	return nil
}

func (in *Interpreter) logf(format string, args ...any) {
	if in.Log != nil {
		in.Log.Printf(format, args...)
	}
}

func (v *Vec) vector() geom.Vector {
	return geom.Vec(v.X, v.Y, v.Z)
}
