package level

// FieldPair is one key/value entry in an actor's field list.
type FieldPair struct {
	Key   string
	Value string
}

// Actor is a single placed object in a level: a position, a size, a
// type tag, and an ordered list of string fields. Typed access is
// layered on top through field descriptors (field.go); the actor
// itself only knows about strings.
//
// Field keys are unique by convention, not by construction: SetValue
// overwrites every existing entry with the key and only appends when
// none exists, while Value returns the first match. An actor built
// through these two operations never accumulates duplicates, but a
// file that already contains them keeps them, and both behaviors are
// observable in the encoded output.
type Actor struct {
	Pos    Vec2
	Size   Vec2
	Type   string
	Fields []FieldPair
}

// Value returns the value of the first field with the given key, or
// the empty string when the key is absent.
func (a *Actor) Value(key string) string {
	for i := range a.Fields {
		if a.Fields[i].Key == key {
			return a.Fields[i].Value
		}
	}
	return ""
}

// Has reports whether any field with the given key exists.
func (a *Actor) Has(key string) bool {
	for i := range a.Fields {
		if a.Fields[i].Key == key {
			return true
		}
	}
	return false
}

// SetValue sets every field with the given key to v, appending a new
// field only if the key is not present.
func (a *Actor) SetValue(key, v string) {
	found := false
	for i := range a.Fields {
		if a.Fields[i].Key == key {
			a.Fields[i].Value = v
			found = true
		}
	}
	if !found {
		a.Fields = append(a.Fields, FieldPair{Key: key, Value: v})
	}
}

// Remove deletes every field with the given key and reports whether
// anything was removed.
func (a *Actor) Remove(key string) bool {
	kept := a.Fields[:0]
	removed := false
	for _, f := range a.Fields {
		if f.Key == key {
			removed = true
			continue
		}
		kept = append(kept, f)
	}
	a.Fields = kept
	return removed
}

// Center returns the midpoint of the actor's bounding box.
func (a *Actor) Center() Vec2 {
	return a.Pos.Add(a.Size.Half())
}
