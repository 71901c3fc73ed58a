package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arc-engines/arc/pkg/geom"
)

// FormatVersion is the file format version written by Encode.
const FormatVersion = 1

// FileExt is the extension used for document files.
const FileExt = ".arc"

// Encode writes doc to w in the s-expression file format.
func Encode(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "(arc_document (version %d) (name %s)\n", FormatVersion, doc.Name())
	for _, obj := range doc.Objects() {
		line, err := encodeObject(obj)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "  %s\n", line)
	}
	bw.WriteString(")\n")
	return bw.Flush()
}

// WriteFile encodes doc to path.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("document: %w", err)
	}
	if err := Encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("document: write %s: %w", path, err)
	}
	return f.Close()
}

func encodeObject(obj Object) (string, error) {
	head := fmt.Sprintf("(id %d) (name %s)", obj.ID, obj.Name)
	switch s := obj.Shape.(type) {
	case geom.Point:
		return fmt.Sprintf("(point %s (at %s))", head, vec(s.Position)), nil
	case geom.Circle:
		return fmt.Sprintf("(circle %s (radius %s) (angles %s %s) (face %s) %s (support %d))",
			head, num(s.Radius), num(s.FirstAngle), num(s.LastAngle),
			yesNo(s.MakeFace), placement(s.Placement), obj.Support), nil
	case geom.Rectangle:
		return fmt.Sprintf("(rectangle %s (size %s %s) (face %s) %s (support %d))",
			head, num(s.Length), num(s.Height),
			yesNo(s.MakeFace), placement(s.Placement), obj.Support), nil
	case geom.Wire:
		var b strings.Builder
		fmt.Fprintf(&b, "(wire %s", head)
		for _, e := range s.Chain {
			fmt.Fprintf(&b, " (edge (start %s) (end %s) (centroid %s) (length %s))",
				vec(e.Start), vec(e.End), vec(e.Centroid), num(e.Length))
		}
		b.WriteString(")")
		return b.String(), nil
	}
	return "", fmt.Errorf("document: encode %s: unsupported shape %T", obj.Name, obj.Shape)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func vec(v geom.Vector) string {
	return num(v.X) + " " + num(v.Y) + " " + num(v.Z)
}

func placement(p geom.Placement) string {
	return fmt.Sprintf("(placement %s %s %s)", vec(p.Base), vec(p.Axis), num(p.Angle))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
