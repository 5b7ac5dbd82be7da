package level

// CurrentVersion is the newest level format version this build can
// read and the default version it writes.
const CurrentVersion = 6

// Level is one complete in-memory level: the ordered actor and tile
// layer lists plus metadata. A Level exclusively owns its actors and
// layers; nothing here is safe for concurrent mutation, and nothing
// needs to be — independent Level values share no state.
//
// FormatVersion records what the decoder found in the file. The
// encoder ignores it and writes whatever target version it is
// configured with, so a level read at an old version can be written
// back out padded with defaults, or deliberately down-leveled.
type Level struct {
	FormatVersion int

	Actors []*Actor
	Layers []*TileLayer

	Theme        string
	Singleplayer bool
	BombTimer    int
	Author       string
	Name         string
	Description  string
	PublishedID  uint64
}

// Layer returns the tile layer with the given tag. A missing tag is
// an absent result, not an error.
func (l *Level) Layer(tag string) (*TileLayer, bool) {
	for _, tl := range l.Layers {
		if tl.Tag == tag {
			return tl, true
		}
	}
	return nil, false
}

// AddActor appends a to the level's actor list.
func (l *Level) AddActor(a *Actor) {
	l.Actors = append(l.Actors, a)
}

// RemoveActor removes the first occurrence of a and reports whether
// it was present.
func (l *Level) RemoveActor(a *Actor) bool {
	for i, cur := range l.Actors {
		if cur == a {
			l.Actors = append(l.Actors[:i], l.Actors[i+1:]...)
			return true
		}
	}
	return false
}

// ActorsOfType returns every actor with the given type tag, in list
// order.
func (l *Level) ActorsOfType(tag string) []*Actor {
	var out []*Actor
	for _, a := range l.Actors {
		if a.Type == tag {
			out = append(out, a)
		}
	}
	return out
}

// Scale rescales every actor through its shape and resizes every tile
// layer to the scaled dimensions.
func (l *Level) Scale(sx, sy float32) {
	for _, a := range l.Actors {
		ScaleActor(a, sx, sy)
	}
	for _, tl := range l.Layers {
		tl.Resize(int(float32(tl.Width)*sx), int(float32(tl.Height)*sy))
	}
}
