package document

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"sync"

	"github.com/arc-engines/arc/pkg/geom"
)

// DefaultName is used for documents created without a name.
const DefaultName = "Unnamed"

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name can be used for a document or an object.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Document is a collection of CAD objects. It is safe for concurrent use.
type Document struct {
	mu       sync.RWMutex
	name     string
	nextID   int
	revision int
	objects  map[int]*Object
	names    map[string]int
}

// New creates an empty document.
func New(name string) (*Document, error) {
	if name == "" {
		name = DefaultName
	}
	if !ValidName(name) {
		return nil, fmt.Errorf("document: %w: %q", ErrInvalidName, name)
	}
	return &Document{
		name:    name,
		nextID:  1,
		objects: make(map[int]*Object),
		names:   make(map[string]int),
	}, nil
}

func (d *Document) Name() string {
	return d.name
}

// Revision returns a counter that increases on every change to the document.
func (d *Document) Revision() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revision
}

func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.objects)
}

// AddPoint creates a point at p.
func (d *Document) AddPoint(name string, p geom.Vector) (*Object, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.add(name, KindPoint, geom.Point{Position: p}, 0)
}

// AddCircle creates a circle, or an arc when the start and end angles differ.
func (d *Document) AddCircle(name string, p CircleParams) (*Object, error) {
	if !finitePositive(p.Radius) {
		return nil, fmt.Errorf("document: add circle: %w: %v", ErrInvalidRadius, p.Radius)
	}
	if (p.StartAngle == nil) != (p.EndAngle == nil) {
		return nil, fmt.Errorf("document: add circle: %w", ErrInvalidAngles)
	}

	c := geom.Circle{Radius: p.Radius, Placement: p.Placement, MakeFace: p.Face}
	if p.StartAngle != nil {
		c.FirstAngle, c.LastAngle = *p.StartAngle, *p.EndAngle
		if c.FirstAngle == 0 {
			c.FirstAngle = 0 // drop the sign of -0
		}
	}
	kind := KindCircle
	if c.IsArc() {
		kind = KindArc
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkSupport(p.Support); err != nil {
		return nil, fmt.Errorf("document: add %s: %w", kind, err)
	}
	return d.add(name, kind, c, p.Support)
}

// AddPlane creates a planar rectangle.
func (d *Document) AddPlane(name string, p RectangleParams) (*Object, error) {
	if !finitePositive(p.Length) || !finitePositive(p.Height) {
		return nil, fmt.Errorf("document: add rectangle: %w: %v x %v", ErrInvalidSize, p.Length, p.Height)
	}
	r := geom.Rectangle{Length: p.Length, Height: p.Height, Placement: p.Placement, MakeFace: p.Face}

	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.checkSupport(p.Support); err != nil {
		return nil, fmt.Errorf("document: add rectangle: %w", err)
	}
	return d.add(name, KindRectangle, r, p.Support)
}

// JoinEdges chains the edges of the given objects into a wire. On success
// the wire is added and the source objects are removed; on failure the
// document is left unchanged.
func (d *Document) JoinEdges(name string, tol float64, ids ...int) (*Object, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var edges []geom.Edge
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("document: join edges: %w: id %d", ErrDuplicate, id)
		}
		seen[id] = true
		obj, ok := d.objects[id]
		if !ok {
			return nil, fmt.Errorf("document: join edges: %w: id %d", ErrNotFound, id)
		}
		edges = append(edges, obj.Shape.Edges()...)
	}
	wire, err := geom.NewWire(edges, tol)
	if err != nil {
		return nil, fmt.Errorf("document: join edges: %w", err)
	}

	obj, err := d.add(name, KindWire, wire, 0)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		d.remove(id)
	}
	return obj, nil
}

// Get returns a copy of the object with the given ID.
func (d *Document) Get(id int) (*Object, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	obj, ok := d.objects[id]
	if !ok {
		return nil, fmt.Errorf("document: %w: id %d", ErrNotFound, id)
	}
	cp := *obj
	return &cp, nil
}

// Lookup returns a copy of the object with the given name.
func (d *Document) Lookup(name string) (*Object, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	id, ok := d.names[name]
	if !ok {
		return nil, fmt.Errorf("document: %w: %q", ErrNotFound, name)
	}
	cp := *d.objects[id]
	return &cp, nil
}

// Remove deletes an object. Objects supported by it become unsupported.
func (d *Document) Remove(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.objects[id]; !ok {
		return fmt.Errorf("document: remove: %w: id %d", ErrNotFound, id)
	}
	d.remove(id)
	return nil
}

// Objects returns copies of all objects ordered by ID.
func (d *Document) Objects() []Object {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Object, 0, len(d.objects))
	for _, obj := range d.objects {
		out = append(out, *obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (d *Document) add(name string, kind Kind, shape geom.Shape, support int) (*Object, error) {
	if name == "" {
		name = kind.String()
	} else if !ValidName(name) {
		return nil, fmt.Errorf("document: %w: %q", ErrInvalidName, name)
	}
	obj := &Object{
		ID:      d.nextID,
		Name:    d.uniqueName(name),
		Kind:    kind,
		Shape:   shape,
		Support: support,
	}
	d.nextID++
	d.insert(obj)
	cp := *obj
	return &cp, nil
}

// restore inserts a decoded object keeping its ID and name.
func (d *Document) restore(obj Object) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if obj.ID <= 0 || !ValidName(obj.Name) {
		return fmt.Errorf("document: %w: object %d %q", ErrMalformed, obj.ID, obj.Name)
	}
	if _, ok := d.objects[obj.ID]; ok {
		return fmt.Errorf("document: %w: id %d", ErrDuplicate, obj.ID)
	}
	if _, ok := d.names[obj.Name]; ok {
		return fmt.Errorf("document: %w: name %q", ErrDuplicate, obj.Name)
	}
	if obj.ID >= d.nextID {
		d.nextID = obj.ID + 1
	}
	d.insert(&obj)
	return nil
}

func (d *Document) insert(obj *Object) {
	d.objects[obj.ID] = obj
	d.names[obj.Name] = obj.ID
	d.revision++
}

func (d *Document) remove(id int) {
	obj := d.objects[id]
	delete(d.objects, id)
	delete(d.names, obj.Name)
	for _, o := range d.objects {
		if o.Support == id {
			o.Support = 0
		}
	}
	d.revision++
}

func (d *Document) checkSupport(id int) error {
	if id == 0 {
		return nil
	}
	if _, ok := d.objects[id]; !ok {
		return fmt.Errorf("support: %w: id %d", ErrNotFound, id)
	}
	return nil
}

// uniqueName appends a three digit suffix when base is taken: Point,
// Point001, Point002, ...
func (d *Document) uniqueName(base string) string {
	if _, taken := d.names[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%03d", base, i)
		if _, taken := d.names[name]; !taken {
			return name
		}
	}
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
