package document

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/arc-engines/arc/pkg/geom"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := New("Sample")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	p, err := doc.AddPoint("P1", geom.Vec(1, -2.5, 1e-7))
	if err != nil {
		t.Fatalf("AddPoint failed: %v", err)
	}
	if _, err := doc.AddCircle("", CircleParams{
		Radius:     5,
		StartAngle: Angle(0),
		EndAngle:   Angle(90),
		Placement:  geom.Placement{Base: geom.Vec(1, 2, 3), Axis: geom.Vec(1, 0, 0), Angle: 30},
		Face:       true,
		Support:    p.ID,
	}); err != nil {
		t.Fatalf("AddCircle failed: %v", err)
	}
	if _, err := doc.AddCircle("Ring", CircleParams{Radius: 0.25}); err != nil {
		t.Fatalf("AddCircle failed: %v", err)
	}
	a, err := doc.AddPlane("", RectangleParams{Length: 10, Height: 5, Placement: geom.Identity()})
	if err != nil {
		t.Fatalf("AddPlane failed: %v", err)
	}
	if _, err := doc.JoinEdges("Outline", geom.DefaultTolerance, a.ID); err != nil {
		t.Fatalf("JoinEdges failed: %v", err)
	}
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument(t)

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	text := buf.String()
	for _, want := range []string{"(arc_document (version 1) (name Sample)", "(point (id 1) (name P1)", "(circle", "(wire", "(edge"} {
		if !strings.Contains(text, want) {
			t.Errorf("encoded document missing %q:\n%s", want, text)
		}
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v\n%s", err, text)
	}
	if got.Name() != doc.Name() {
		t.Errorf("name = %q, want %q", got.Name(), doc.Name())
	}
	if !reflect.DeepEqual(got.Objects(), doc.Objects()) {
		t.Errorf("objects differ after round trip:\n got  %+v\n want %+v", got.Objects(), doc.Objects())
	}

	// IDs continue after the highest decoded ID.
	next, err := got.AddPoint("", geom.Vector{})
	if err != nil {
		t.Fatalf("AddPoint failed: %v", err)
	}
	objs := doc.Objects()
	if next.ID <= objs[len(objs)-1].ID {
		t.Errorf("new id %d collides with decoded ids", next.ID)
	}
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode(strings.NewReader("(arc_document (version 1) (name Empty))"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if doc.Name() != "Empty" || doc.Len() != 0 {
		t.Errorf("unexpected document %q with %d objects", doc.Name(), doc.Len())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "wrong root",
			input:   "(kicad_pcb (version 1))",
			wantErr: ErrMalformed,
		},
		{
			name:    "missing version",
			input:   "(arc_document (name A))",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "future version",
			input:   "(arc_document (version 2) (name A))",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "missing name",
			input:   "(arc_document (version 1))",
			wantErr: ErrMalformed,
		},
		{
			name:    "unknown object",
			input:   "(arc_document (version 1) (name A) (blob (id 1) (name B)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "bad coordinate",
			input:   "(arc_document (version 1) (name A) (point (id 1) (name P) (at 1 x 3)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "bad face flag",
			input:   "(arc_document (version 1) (name A) (rectangle (id 1) (name R) (size 1 1) (face maybe) (placement 0 0 0 0 0 1 0) (support 0)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "duplicate id",
			input:   "(arc_document (version 1) (name A) (point (id 1) (name P) (at 0 0 0)) (point (id 1) (name Q) (at 0 0 0)))",
			wantErr: ErrDuplicate,
		},
		{
			name:    "dangling support",
			input:   "(arc_document (version 1) (name A) (circle (id 1) (name C) (radius 1) (angles 0 0) (face no) (placement 0 0 0 0 0 1 0) (support 7)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "list where name expected",
			input:   "(arc_document (version 1) (name A) (point (id 1) (name (P)) (at 0 0 0)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "negative radius",
			input:   "(arc_document (version 1) (name A) (circle (id 1) (name C) (radius -1) (angles 0 0) (face no) (placement 0 0 0 0 0 1 0) (support 0)))",
			wantErr: ErrInvalidRadius,
		},
		{
			name:    "infinite radius",
			input:   "(arc_document (version 1) (name A) (circle (id 1) (name C) (radius +Inf) (angles 0 0) (face no) (placement 0 0 0 0 0 1 0) (support 0)))",
			wantErr: ErrMalformed,
		},
		{
			name:    "zero length",
			input:   "(arc_document (version 1) (name A) (rectangle (id 1) (name R) (size 0 1) (face no) (placement 0 0 0 0 0 1 0) (support 0)))",
			wantErr: ErrInvalidSize,
		},
		{
			name:    "wire without edges",
			input:   "(arc_document (version 1) (name A) (wire (id 1) (name W)))",
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReadWriteFile(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "sample"+FileExt)
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got.Len() != doc.Len() {
		t.Errorf("Len() = %d, want %d", got.Len(), doc.Len())
	}
}
