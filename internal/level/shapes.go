package level

// The closed shape registry. Each entry is pure data: type tag,
// default size, capabilities, and the shape's own field descriptors
// (capability-implied fields are prepended at init).
//
// Scale overrides: MovingPlatform, Cannon, Conveyor and Spring carry
// a motion quantity that must track a rescale by sqrt(sx*sy), and
// Checkpoint only ever moves its anchor.

// AlignNames is the name array for the TextSign alignment enum.
var AlignNames = []string{"LEFT", "CENTER", "RIGHT"}

var shapeTable = []*Shape{
	{
		Type:        "Checkpoint",
		DefaultSize: Vec2{1, 1},
		Fields: []Field{
			IntField{K: "ID", Default: 0},
			BoolField{K: "IsStart", Default: false},
		},
		scale: func(a *Actor, sx, sy float32) {
			a.Pos = a.Pos.MulXY(sx, sy)
		},
	},
	{
		Type:        "Spike",
		DefaultSize: Vec2{1, 1},
		Caps:        CapFlippable,
	},
	{
		Type:        "MovingPlatform",
		DefaultSize: Vec2{3, 1},
		Caps:        CapTriggerable,
		Fields: []Field{
			Vec2Field{K: "Offset", Default: Vec2{0, 2}},
			FloatField{K: "Period", Default: 2},
			BoolField{K: "StartMoving", Default: true},
		},
		scale: func(a *Actor, sx, sy float32) {
			scaleAnchored(a, sx, sy)
			f := Vec2Field{K: "Offset"}
			f.Set(a, f.Get(a).Mul(meanScale(sx, sy)))
		},
	},
	{
		Type:        "Cannon",
		DefaultSize: Vec2{1, 1},
		Caps:        CapTriggerable | CapFlippable,
		Fields: []Field{
			FloatField{K: "ProjectileSpeed", Default: 8},
			FloatField{K: "Interval", Default: 1.5},
		},
		scale: func(a *Actor, sx, sy float32) {
			scaleAnchored(a, sx, sy)
			f := FloatField{K: "ProjectileSpeed"}
			f.Set(a, f.Get(a)*meanScale(sx, sy))
		},
	},
	{
		Type:        "Laser",
		DefaultSize: Vec2{1, 1},
		Caps:        CapTriggerable | CapFlippable,
		Fields: []Field{
			FloatField{K: "Delay", Default: 0},
			BoolField{K: "On", Default: true},
		},
	},
	{
		Type:        "Door",
		DefaultSize: Vec2{1, 2},
		Caps:        CapTriggerable,
		Fields: []Field{
			IntField{K: "KeyID", Default: 0},
			BoolField{K: "Locked", Default: true},
		},
	},
	{
		Type:        "Key",
		DefaultSize: Vec2{1, 1},
		Fields: []Field{
			IntField{K: "KeyID", Default: 0},
		},
	},
	{
		Type:        "Coin",
		DefaultSize: Vec2{1, 1},
		Fields: []Field{
			IntField{K: "Value", Default: 1},
		},
	},
	{
		Type:        "TriggerZone",
		DefaultSize: Vec2{2, 2},
		Caps:        CapFreelyResizable,
		Fields: []Field{
			IntField{K: "EmitID", Default: 0},
			BoolField{K: "Once", Default: false},
		},
	},
	{
		Type:        "WaterZone",
		DefaultSize: Vec2{4, 2},
		Caps:        CapFreelyResizable,
		Fields: []Field{
			Vec2Field{K: "Current", Default: Vec2{0, 0}},
		},
	},
	{
		Type:        "CameraZone",
		DefaultSize: Vec2{8, 6},
		Caps:        CapFreelyResizable,
		Fields: []Field{
			FloatField{K: "Zoom", Default: 1},
		},
	},
	{
		Type:        "GravityZone",
		DefaultSize: Vec2{4, 4},
		Caps:        CapFreelyResizable,
		Fields: []Field{
			Vec2Field{K: "Gravity", Default: Vec2{0, -1}},
		},
	},
	{
		Type:        "Spring",
		DefaultSize: Vec2{1, 1},
		Caps:        CapFlippable,
		Fields: []Field{
			FloatField{K: "Strength", Default: 10},
		},
		scale: func(a *Actor, sx, sy float32) {
			scaleAnchored(a, sx, sy)
			f := FloatField{K: "Strength"}
			f.Set(a, f.Get(a)*meanScale(sx, sy))
		},
	},
	{
		Type:        "Conveyor",
		DefaultSize: Vec2{2, 1},
		Caps:        CapTriggerable,
		Fields: []Field{
			FloatField{K: "Speed", Default: 3},
		},
		scale: func(a *Actor, sx, sy float32) {
			scaleAnchored(a, sx, sy)
			f := FloatField{K: "Speed"}
			f.Set(a, f.Get(a)*meanScale(sx, sy))
		},
	},
	{
		Type:        "WalkerEnemy",
		DefaultSize: Vec2{1, 1},
		Caps:        CapFlippable,
		Fields: []Field{
			FloatField{K: "WalkSpeed", Default: 2},
			FloatField{K: "PatrolRange", Default: 4},
		},
	},
	{
		Type:        "FlyerEnemy",
		DefaultSize: Vec2{1, 1},
		Fields: []Field{
			Vec2Field{K: "PatrolOffset", Default: Vec2{0, 3}},
			FloatField{K: "FlySpeed", Default: 2},
		},
	},
	{
		Type:        "Bomb",
		DefaultSize: Vec2{1, 1},
		Caps:        CapTriggerable,
		Fields: []Field{
			FloatField{K: "Fuse", Default: 3},
		},
	},
	{
		Type:        "TextSign",
		DefaultSize: Vec2{2, 1},
		Fields: []Field{
			StringField{K: "Text", Default: ""},
			EnumField{K: "Align", Names: AlignNames, Default: 1},
		},
	},
	{
		Type:        "Decoration",
		DefaultSize: Vec2{1, 1},
		Caps:        CapFlippable | CapLayerable,
		Fields: []Field{
			IntField{K: "GraphicID", Default: 0},
			FloatField{K: "Rotation", Default: 0},
		},
	},
	{
		Type:        "SoundEmitter",
		DefaultSize: Vec2{1, 1},
		Caps:        CapTriggerable,
		Fields: []Field{
			IntField{K: "SoundID", Default: 0},
			FloatField{K: "Volume", Default: 1},
			BoolField{K: "Loop", Default: false},
		},
	},
	{
		Type:        "ParticleEmitter",
		DefaultSize: Vec2{1, 1},
		Caps:        CapLayerable,
		Fields: []Field{
			IntField{K: "EffectID", Default: 0},
			FloatField{K: "Rate", Default: 1},
			Vec3Field{K: "Tint", Default: Vec3{1, 1, 1}},
		},
	},
}
