package document

import (
	"fmt"
	"strconv"

	"github.com/arc-engines/arc/pkg/geom"
	"github.com/chewxy/sexp"
)

// S-expression navigation helpers

// listItems converts an s-expression list to a slice.
func listItems(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp
	for s != nil && !s.IsLeaf() {
		if s.LeafCount() == 0 {
			break
		}
		if head := s.Head(); head != nil {
			items = append(items, head)
		}
		s = s.Tail()
	}
	return items
}

// keyOf returns the leading symbol of a list such as (at 1 2 3).
func keyOf(s sexp.Sexp) string {
	items := listItems(s)
	if len(items) == 0 {
		return ""
	}
	if sym, ok := items[0].(sexp.Symbol); ok {
		return string(sym)
	}
	return ""
}

// findNode returns the first child list whose key matches.
func findNode(s sexp.Sexp, key string) (sexp.Sexp, bool) {
	for _, item := range listItems(s) {
		if !item.IsLeaf() && keyOf(item) == key {
			return item, true
		}
	}
	return nil, false
}

// findAllNodes returns every child list whose key matches.
func findAllNodes(s sexp.Sexp, key string) []sexp.Sexp {
	var results []sexp.Sexp
	for _, item := range listItems(s) {
		if !item.IsLeaf() && keyOf(item) == key {
			results = append(results, item)
		}
	}
	return results
}

// getString extracts the atom at index; index 0 is the key.
func getString(s sexp.Sexp, index int) (string, error) {
	items := listItems(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	if sym, ok := items[index].(sexp.Symbol); ok {
		return string(sym), nil
	}
	return "", fmt.Errorf("expected symbol at index %d, got %T", index, items[index])
}

func getFloat(s sexp.Sexp, index int) (float64, error) {
	str, err := getString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}
	return val, nil
}

func getInt(s sexp.Sexp, index int) (int, error) {
	str, err := getString(s, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}
	return val, nil
}

// getVector reads three floats starting at index.
func getVector(s sexp.Sexp, index int) (geom.Vector, error) {
	var c [3]float64
	for i := range c {
		v, err := getFloat(s, index+i)
		if err != nil {
			return geom.Vector{}, err
		}
		c[i] = v
	}
	return geom.Vector{X: c[0], Y: c[1], Z: c[2]}, nil
}

// field finds (key ...) in s and returns the atom at index 1.
func field(s sexp.Sexp, key string) (string, error) {
	node, ok := findNode(s, key)
	if !ok {
		return "", fmt.Errorf("missing (%s)", key)
	}
	return getString(node, 1)
}

func floatField(s sexp.Sexp, key string, index int) (float64, error) {
	node, ok := findNode(s, key)
	if !ok {
		return 0, fmt.Errorf("missing (%s)", key)
	}
	v, err := getFloat(node, index)
	if err != nil {
		return 0, fmt.Errorf("(%s): %w", key, err)
	}
	return v, nil
}

func intField(s sexp.Sexp, key string) (int, error) {
	node, ok := findNode(s, key)
	if !ok {
		return 0, fmt.Errorf("missing (%s)", key)
	}
	v, err := getInt(node, 1)
	if err != nil {
		return 0, fmt.Errorf("(%s): %w", key, err)
	}
	return v, nil
}

func vectorField(s sexp.Sexp, key string) (geom.Vector, error) {
	node, ok := findNode(s, key)
	if !ok {
		return geom.Vector{}, fmt.Errorf("missing (%s)", key)
	}
	v, err := getVector(node, 1)
	if err != nil {
		return geom.Vector{}, fmt.Errorf("(%s): %w", key, err)
	}
	return v, nil
}

func boolField(s sexp.Sexp, key string) (bool, error) {
	str, err := field(s, key)
	if err != nil {
		return false, err
	}
	switch str {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	}
	return false, fmt.Errorf("(%s): expected yes or no, got %q", key, str)
}
