package level

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gastropod/levelforge/internal/wire"
)

// Version thresholds for the optional metadata tail. The gates are
// monotonically additive: a field present at version N is present at
// every version >= N.
const (
	versionSingleplayer = 2
	versionBombTimer    = 3
	versionAuthor       = 4
	versionNameDesc     = 5
	versionPublishedID  = 6
)

// Minimum encoded sizes. Declared counts are bounded against the
// bytes actually left in the stream so a corrupt payload cannot make
// the decoder allocate or iterate more than the stream could ever
// hold.
const (
	actorWireMin = 24 // pos + size + type length prefix + field count
	layerWireMin = 12 // tag length prefix + width + height
	fieldWireMin = 8  // two string length prefixes
	tileWireSize = 4
)

// Decoder reads a complete level from one decompressed payload. The
// walk over the stream is strictly sequential; the only lookahead is
// the two-phase actor read, which resolves the shape from the type
// tag before committing to construction.
type Decoder struct {
	log *zap.Logger
}

func NewDecoder(log *zap.Logger) *Decoder {
	return &Decoder{log: log}
}

func (d *Decoder) Decode(data []byte) (*Level, error) {
	r := wire.NewReader(data)
	lvl := &Level{}
	lvl.FormatVersion = int(r.ReadD())

	actorCount := int(r.ReadD())
	if actorCount < 0 || actorCount > r.Remaining()/actorWireMin {
		return nil, fmt.Errorf("corrupt level: actor count %d", actorCount)
	}
	for i := 0; i < actorCount; i++ {
		a, err := d.readActor(r)
		if err != nil {
			return nil, err
		}
		lvl.AddActor(a)
	}

	layerCount := int(r.ReadD())
	if layerCount < 0 || layerCount > r.Remaining()/layerWireMin {
		return nil, fmt.Errorf("corrupt level: layer count %d", layerCount)
	}
	for i := 0; i < layerCount; i++ {
		tl, err := readLayer(r)
		if err != nil {
			return nil, err
		}
		lvl.Layers = append(lvl.Layers, tl)
	}

	lvl.Theme = r.ReadS()
	v := lvl.FormatVersion
	if v >= versionSingleplayer {
		lvl.Singleplayer = r.ReadB()
	}
	if lvl.Singleplayer && v >= versionBombTimer {
		lvl.BombTimer = int(r.ReadD())
	}
	if v >= versionAuthor {
		lvl.Author = r.ReadS()
	}
	if v >= versionNameDesc {
		lvl.Name = r.ReadS()
		lvl.Description = r.ReadS()
	}
	if v >= versionPublishedID {
		lvl.PublishedID = r.ReadQ()
	}
	return lvl, nil
}

// readActor runs the two-phase actor read: first the fixed header
// (position, size, type tag), then shape dispatch, then the field
// list. An unknown tag falls back to a bare untyped actor; decoding
// never aborts over it. Known shapes replay stored pairs through
// SetValue so defaults get overwritten in place; the fallback appends
// pairs raw so even duplicate keys round-trip byte-exactly.
func (d *Decoder) readActor(r *wire.Reader) (*Actor, error) {
	pos := Vec2{X: r.ReadF(), Y: r.ReadF()}
	size := Vec2{X: r.ReadF(), Y: r.ReadF()}
	tag := r.ReadS()

	var a *Actor
	shape := ShapeFor(tag)
	if shape != nil {
		a = shape.New()
	} else {
		d.log.Warn("未知的物件類型,改用通用物件", zap.String("type", tag))
		a = &Actor{Type: tag}
	}
	a.Pos, a.Size = pos, size

	fieldCount := int(r.ReadD())
	if fieldCount < 0 || fieldCount > r.Remaining()/fieldWireMin {
		return nil, fmt.Errorf("corrupt level: actor %q field count %d", tag, fieldCount)
	}
	for i := 0; i < fieldCount; i++ {
		key := r.ReadS()
		value := r.ReadS()
		if shape != nil {
			a.SetValue(key, value)
		} else {
			a.Fields = append(a.Fields, FieldPair{Key: key, Value: value})
		}
	}
	return a, nil
}

func readLayer(r *wire.Reader) (*TileLayer, error) {
	tag := r.ReadS()
	w, h := int(r.ReadD()), int(r.ReadD())
	if w < 0 || h < 0 || w*h > r.Remaining()/tileWireSize {
		return nil, fmt.Errorf("corrupt level: layer %q size %dx%d", tag, w, h)
	}
	tl := NewTileLayer(tag, w, h)
	// Tile order on the wire matches the column-major storage order,
	// so the nested x/y loops collapse onto the flat buffer.
	for i := range tl.Tiles {
		tl.Tiles[i] = r.ReadD()
	}
	return tl, nil
}

// Encoder writes a level at a fixed target version, regardless of the
// version the level was read at. Fields beyond the target version are
// simply omitted; fields the level never had are written from their
// zero defaults. The bomb timer gate looks at the in-memory
// Singleplayer flag at write time, not whatever the reader saw.
type Encoder struct {
	Version int
}

func NewEncoder() *Encoder {
	return &Encoder{Version: CurrentVersion}
}

func (e *Encoder) Encode(lvl *Level) []byte {
	w := wire.NewWriter()
	w.WriteD(int32(e.Version))

	w.WriteD(int32(len(lvl.Actors)))
	for _, a := range lvl.Actors {
		writeActor(w, a)
	}

	w.WriteD(int32(len(lvl.Layers)))
	for _, tl := range lvl.Layers {
		w.WriteS(tl.Tag)
		w.WriteD(int32(tl.Width))
		w.WriteD(int32(tl.Height))
		for _, code := range tl.Tiles {
			w.WriteD(code)
		}
	}

	w.WriteS(lvl.Theme)
	if e.Version >= versionSingleplayer {
		w.WriteB(lvl.Singleplayer)
	}
	if lvl.Singleplayer && e.Version >= versionBombTimer {
		w.WriteD(int32(lvl.BombTimer))
	}
	if e.Version >= versionAuthor {
		w.WriteS(lvl.Author)
	}
	if e.Version >= versionNameDesc {
		w.WriteS(lvl.Name)
		w.WriteS(lvl.Description)
	}
	if e.Version >= versionPublishedID {
		w.WriteQ(lvl.PublishedID)
	}
	return w.Bytes()
}

func writeActor(w *wire.Writer, a *Actor) {
	w.WriteF(a.Pos.X)
	w.WriteF(a.Pos.Y)
	w.WriteF(a.Size.X)
	w.WriteF(a.Size.Y)
	w.WriteS(a.Type)
	w.WriteD(int32(len(a.Fields)))
	for _, f := range a.Fields {
		w.WriteS(f.Key)
		w.WriteS(f.Value)
	}
}
