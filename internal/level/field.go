package level

// Field is the descriptor surface shared by every typed field kind:
// a key plus the default value pre-rendered as a string. Shape
// construction walks a shape's descriptor list and seeds the new
// actor's store with each default.
//
// Descriptors are immutable and declared once per shape; the typed
// Get/Set pairs below are thin adapters over Actor.Value/SetValue
// using the conversions in conv.go. A Get on a missing key converts
// the empty string, so int and float fields read back their parse
// sentinels (math.MaxInt32 / NaN) exactly as they would for malformed
// text. That interaction is load-bearing for existing files; see the
// tests before changing it.
type Field interface {
	Key() string
	DefaultString() string
}

type StringField struct {
	K       string
	Default string
}

func (f StringField) Key() string            { return f.K }
func (f StringField) DefaultString() string  { return f.Default }
func (f StringField) Get(a *Actor) string    { return a.Value(f.K) }
func (f StringField) Set(a *Actor, v string) { a.SetValue(f.K, v) }

type BoolField struct {
	K       string
	Default bool
}

func (f BoolField) Key() string           { return f.K }
func (f BoolField) DefaultString() string { return FormatBool(f.Default) }
func (f BoolField) Get(a *Actor) bool     { return ParseBool(a.Value(f.K)) }
func (f BoolField) Set(a *Actor, v bool)  { a.SetValue(f.K, FormatBool(v)) }

type IntField struct {
	K       string
	Default int
}

func (f IntField) Key() string           { return f.K }
func (f IntField) DefaultString() string { return FormatInt(f.Default) }
func (f IntField) Get(a *Actor) int      { return ParseInt(a.Value(f.K)) }
func (f IntField) Set(a *Actor, v int)   { a.SetValue(f.K, FormatInt(v)) }

type FloatField struct {
	K       string
	Default float32
}

func (f FloatField) Key() string             { return f.K }
func (f FloatField) DefaultString() string   { return FormatFloat(f.Default) }
func (f FloatField) Get(a *Actor) float32    { return ParseFloat(a.Value(f.K)) }
func (f FloatField) Set(a *Actor, v float32) { a.SetValue(f.K, FormatFloat(v)) }

type Vec2Field struct {
	K       string
	Default Vec2
}

func (f Vec2Field) Key() string           { return f.K }
func (f Vec2Field) DefaultString() string { return f.Default.String() }
func (f Vec2Field) Get(a *Actor) Vec2     { return ParseVec2(a.Value(f.K)) }
func (f Vec2Field) Set(a *Actor, v Vec2)  { a.SetValue(f.K, v.String()) }

type Vec3Field struct {
	K       string
	Default Vec3
}

func (f Vec3Field) Key() string           { return f.K }
func (f Vec3Field) DefaultString() string { return f.Default.String() }
func (f Vec3Field) Get(a *Actor) Vec3     { return ParseVec3(a.Value(f.K)) }
func (f Vec3Field) Set(a *Actor, v Vec3)  { a.SetValue(f.K, v.String()) }

// EnumField stores an ordinal into an explicit name array as the
// name itself. Reading back an unmatched name is the one conversion
// that fails loudly instead of producing a sentinel.
type EnumField struct {
	K       string
	Names   []string
	Default int
}

func (f EnumField) Key() string           { return f.K }
func (f EnumField) DefaultString() string { return EnumName(f.Names, f.Default) }

func (f EnumField) Get(a *Actor) (int, error) {
	return EnumOrdinal(f.Names, a.Value(f.K))
}

func (f EnumField) Set(a *Actor, ordinal int) {
	a.SetValue(f.K, EnumName(f.Names, ordinal))
}
