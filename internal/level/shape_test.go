package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeForClosedSet(t *testing.T) {
	for _, s := range Shapes() {
		got := ShapeFor(s.Type)
		assert.Same(t, s, got, s.Type)
	}
	assert.Nil(t, ShapeFor("DoesNotExist"))
}

func TestShapeNewSeedsDefaults(t *testing.T) {
	s := ShapeFor("Cannon")
	require.NotNil(t, s)
	a := s.New()

	assert.Equal(t, "Cannon", a.Type)
	assert.Equal(t, Vec2{1, 1}, a.Size)

	// Capability-implied fields come first, then the shape's own.
	wantKeys := []string{"TriggerID", "FlippedX", "FlippedY", "ProjectileSpeed", "Interval"}
	require.Len(t, a.Fields, len(wantKeys))
	for i, k := range wantKeys {
		assert.Equal(t, k, a.Fields[i].Key)
	}
	assert.Equal(t, "8", a.Value("ProjectileSpeed"))
	assert.Equal(t, "FALSE", a.Value("FlippedX"))
}

func TestScaleAnchoredDefault(t *testing.T) {
	// A non-resizable actor keeps its size; only the center moves
	// with the scale.
	a := ShapeFor("Spike").New()
	a.Pos = Vec2{2, 2}
	a.Size = Vec2{2, 2}

	ScaleActor(a, 2, 2)
	assert.Equal(t, Vec2{5, 5}, a.Pos)
	assert.Equal(t, Vec2{2, 2}, a.Size)
}

func TestScaleFreelyResizable(t *testing.T) {
	a := ShapeFor("TriggerZone").New()
	a.Pos = Vec2{2, 2}
	a.Size = Vec2{2, 2}

	ScaleActor(a, 2, 3)
	assert.Equal(t, Vec2{4, 6}, a.Pos)
	assert.Equal(t, Vec2{4, 6}, a.Size)
}

func TestScaleMotionFieldOverride(t *testing.T) {
	// Cannon rescales ProjectileSpeed by sqrt(sx*sy) on top of the
	// anchored base behavior.
	a := ShapeFor("Cannon").New()
	a.Pos = Vec2{2, 2}

	ScaleActor(a, 2, 2)
	assert.Equal(t, float32(16), FloatField{K: "ProjectileSpeed"}.Get(a))
	assert.Equal(t, Vec2{1, 1}, a.Size)

	// Non-uniform scale uses the geometric mean.
	b := ShapeFor("Conveyor").New()
	ScaleActor(b, 4, 1)
	assert.InDelta(t, 6, FloatField{K: "Speed"}.Get(b), 1e-5)
}

func TestScalePlatformOffsetVector(t *testing.T) {
	a := ShapeFor("MovingPlatform").New()
	Vec2Field{K: "Offset"}.Set(a, Vec2{0, 4})

	ScaleActor(a, 2, 2)
	assert.Equal(t, Vec2{0, 8}, Vec2Field{K: "Offset"}.Get(a))
}

func TestScaleCheckpointPositionOnly(t *testing.T) {
	a := ShapeFor("Checkpoint").New()
	a.Pos = Vec2{2, 2}

	ScaleActor(a, 2, 2)
	assert.Equal(t, Vec2{4, 4}, a.Pos)
	assert.Equal(t, Vec2{1, 1}, a.Size)
}

func TestScaleUnknownTypeFallsBack(t *testing.T) {
	a := &Actor{Type: "DoesNotExist", Pos: Vec2{2, 2}, Size: Vec2{2, 2}}
	ScaleActor(a, 2, 2)
	assert.Equal(t, Vec2{5, 5}, a.Pos)
	assert.Equal(t, Vec2{2, 2}, a.Size)
}
