package level

import "math"

// Capability marks optional behaviors of an actor shape. The flags
// replace what used to be per-kind special casing: Scale dispatch and
// the implied capability fields key off them.
type Capability uint8

const (
	// CapTriggerable actors listen on a trigger channel (TriggerID).
	CapTriggerable Capability = 1 << iota
	// CapFlippable actors can mirror on either axis (FlippedX/FlippedY).
	CapFlippable
	// CapLayerable actors carry an explicit render layer index (Layer).
	CapLayerable
	// CapFreelyResizable actors scale size as well as position.
	CapFreelyResizable
)

func (c Capability) Has(flag Capability) bool {
	return c&flag != 0
}

// Shape is the fixed schema for one actor kind: its type tag, default
// size, capabilities, and field descriptors. The set of shapes is
// closed; ShapeFor resolves a tag and returns nil for anything the
// build does not know about.
type Shape struct {
	Type        string
	DefaultSize Vec2
	Caps        Capability
	Fields      []Field

	// scale, when set, replaces the capability-derived behavior.
	scale func(a *Actor, sx, sy float32)
}

// New constructs an actor of this shape with the default size and
// every descriptor's default value seeded into the field store.
func (s *Shape) New() *Actor {
	a := &Actor{Type: s.Type, Size: s.DefaultSize}
	for _, f := range s.Fields {
		a.SetValue(f.Key(), f.DefaultString())
	}
	return a
}

// Scale applies the shape's scaling behavior to a.
//
// The default treats the actor as a fixed-size box anchored at its
// center: the center moves with the scale, the size does not. Freely
// resizable shapes scale both. A handful of shapes override this to
// also rescale a time-integrated motion field by sqrt(sx*sy) so
// apparent speed survives a rescale, and Checkpoint moves its anchor
// without the center correction at all.
func (s *Shape) Scale(a *Actor, sx, sy float32) {
	if s.scale != nil {
		s.scale(a, sx, sy)
		return
	}
	if s.Caps.Has(CapFreelyResizable) {
		scaleFree(a, sx, sy)
		return
	}
	scaleAnchored(a, sx, sy)
}

// ScaleActor scales a by its registered shape, falling back to the
// anchored default for unknown tags.
func ScaleActor(a *Actor, sx, sy float32) {
	if s := ShapeFor(a.Type); s != nil {
		s.Scale(a, sx, sy)
		return
	}
	scaleAnchored(a, sx, sy)
}

func scaleAnchored(a *Actor, sx, sy float32) {
	a.Pos = a.Center().MulXY(sx, sy).Sub(a.Size.Half())
}

func scaleFree(a *Actor, sx, sy float32) {
	a.Pos = a.Pos.MulXY(sx, sy)
	a.Size = a.Size.MulXY(sx, sy)
}

// meanScale is the geometric mean of the two axis factors, used for
// scalar motion fields that have no axis of their own.
func meanScale(sx, sy float32) float32 {
	return float32(math.Sqrt(float64(sx * sy)))
}

// ShapeFor returns the shape registered for a type tag, or nil.
func ShapeFor(tag string) *Shape {
	return shapeIndex[tag]
}

// Shapes returns the registry in declaration order.
func Shapes() []*Shape {
	return shapeTable
}

var shapeIndex map[string]*Shape

func init() {
	shapeIndex = make(map[string]*Shape, len(shapeTable))
	for _, s := range shapeTable {
		// Capability-implied fields come first so construction
		// seeds them before the shape's own descriptors.
		s.Fields = append(capFields(s.Caps), s.Fields...)
		shapeIndex[s.Type] = s
	}
}

// capFields returns the field descriptors implied by a capability set.
func capFields(c Capability) []Field {
	var fs []Field
	if c.Has(CapTriggerable) {
		fs = append(fs, IntField{K: "TriggerID", Default: 0})
	}
	if c.Has(CapFlippable) {
		fs = append(fs,
			BoolField{K: "FlippedX", Default: false},
			BoolField{K: "FlippedY", Default: false},
		)
	}
	if c.Has(CapLayerable) {
		fs = append(fs, IntField{K: "Layer", Default: 0})
	}
	return fs
}
