package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	return p
}

func TestParseStatements(t *testing.T) {
	src := strings.Join([]string{
		"# profile",
		"point P1 at (1, -2, 3.5)",
		"circle C1 radius 5 from 0 to 90 at (0, 0, 1) rotate 90 about (1, 0, 0) face on P1",
		"plane length 10 height 2.5e1",
		"wire W1 of C1, R1",
		"spherical (1, 1, 1)",
		"center W1",
		"inertia W1",
		"remove P1",
	}, "\n")

	s, err := newParser(t).ParseString(src)
	require.NoError(t, err)
	require.Len(t, s.Statements, 8)

	pt := s.Statements[0].Point
	require.NotNil(t, pt)
	assert.Equal(t, "P1", pt.Name)
	assert.Equal(t, Vec{1, -2, 3.5}, *pt.At)
	assert.Equal(t, 2, s.Statements[0].Pos.Line)

	c := s.Statements[1].Circle
	require.NotNil(t, c)
	assert.Equal(t, "C1", c.Name)
	assert.Equal(t, 5.0, c.Radius)
	require.NotNil(t, c.Angles)
	assert.Equal(t, AngleRange{From: 0, To: 90}, *c.Angles)
	require.Len(t, c.Options, 4)
	assert.Equal(t, Vec{0, 0, 1}, *c.Options[0].At)
	assert.Equal(t, 90.0, c.Options[1].Rotate.Angle)
	assert.Equal(t, Vec{1, 0, 0}, *c.Options[1].Rotate.Axis)
	assert.True(t, c.Options[2].Face)
	assert.Equal(t, "P1", c.Options[3].Support)

	pl := s.Statements[2].Plane
	require.NotNil(t, pl)
	assert.Empty(t, pl.Name)
	assert.Equal(t, 10.0, pl.Length)
	assert.Equal(t, 25.0, pl.Height)

	assert.Equal(t, []string{"C1", "R1"}, s.Statements[3].Wire.Sources)
	assert.Equal(t, Vec{1, 1, 1}, *s.Statements[4].Spherical.Point)
	assert.Equal(t, "W1", s.Statements[5].Center.Target)
	assert.Equal(t, "W1", s.Statements[6].Inertia.Target)
	assert.Equal(t, "P1", s.Statements[7].Remove.Target)
}

func TestParseKeywordsCaseInsensitive(t *testing.T) {
	s, err := newParser(t).ParseString("POINT Pointer AT (0, 0, 0)\nCircle radius 1")
	require.NoError(t, err)
	require.Len(t, s.Statements, 2)
	assert.Equal(t, "Pointer", s.Statements[0].Point.Name)
	assert.Empty(t, s.Statements[1].Circle.Name)
	assert.Nil(t, s.Statements[1].Circle.Angles)
}

func TestParseKeywordNames(t *testing.T) {
	s, err := newParser(t).ParseString(strings.Join([]string{
		"point Face at (0, 0, 0)",
		"circle Wire radius 1 on Point",
		"wire Center of Wire, Circle",
		"center Point",
		"inertia Radius",
		"remove Of",
	}, "\n"))
	require.NoError(t, err)
	require.Len(t, s.Statements, 6)
	assert.Equal(t, "Face", s.Statements[0].Point.Name)
	assert.Equal(t, "Wire", s.Statements[1].Circle.Name)
	assert.Equal(t, "Point", s.Statements[1].Circle.Options[0].Support)
	assert.Equal(t, "Center", s.Statements[2].Wire.Name)
	assert.Equal(t, []string{"Wire", "Circle"}, s.Statements[2].Wire.Sources)
	assert.Equal(t, "Point", s.Statements[3].Center.Target)
	assert.Equal(t, "Radius", s.Statements[4].Inertia.Target)
	assert.Equal(t, "Of", s.Statements[5].Remove.Target)
}

func TestParseEmpty(t *testing.T) {
	s, err := newParser(t).ParseString("# nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, s.Statements)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"circle radius",
		"point at (1, 2)",
		"wire of",
		"plane length 1",
		"spherical 1 2 3",
		"bogus",
	} {
		t.Run(src, func(t *testing.T) {
			_, err := newParser(t).ParseString(src)
			require.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.arcs")
	require.NoError(t, os.WriteFile(path, []byte("point at (0, 0, 0)\n"), 0o644))

	s, err := newParser(t).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, s.Statements, 1)
	assert.Equal(t, path, s.Statements[0].Pos.Filename)

	_, err = newParser(t).ParseFile(filepath.Join(t.TempDir(), "missing.arcs"))
	require.Error(t, err)
}
