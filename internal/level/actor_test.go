package level

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValueOverwritesAllDuplicates(t *testing.T) {
	// Duplicate keys can only come in from a file, but once present
	// the asymmetry is observable: Set overwrites every entry, Get
	// reads the first.
	a := &Actor{Fields: []FieldPair{
		{Key: "K", Value: "one"},
		{Key: "other", Value: "x"},
		{Key: "K", Value: "two"},
	}}

	a.SetValue("K", "X")
	assert.Equal(t, "X", a.Fields[0].Value)
	assert.Equal(t, "X", a.Fields[2].Value)
	assert.Equal(t, "x", a.Fields[1].Value)
	assert.Len(t, a.Fields, 3, "set must not append when the key exists")

	assert.Equal(t, "X", a.Value("K"))
}

func TestSetValueAppendsWhenMissing(t *testing.T) {
	a := &Actor{}
	a.SetValue("A", "1")
	a.SetValue("B", "2")
	a.SetValue("A", "3")

	require.Len(t, a.Fields, 2)
	assert.Equal(t, FieldPair{"A", "3"}, a.Fields[0])
	assert.Equal(t, FieldPair{"B", "2"}, a.Fields[1])
}

func TestRemove(t *testing.T) {
	a := &Actor{Fields: []FieldPair{
		{Key: "K", Value: "1"},
		{Key: "other", Value: "x"},
		{Key: "K", Value: "2"},
	}}

	assert.True(t, a.Remove("K"))
	require.Len(t, a.Fields, 1)
	assert.Equal(t, "other", a.Fields[0].Key)

	assert.False(t, a.Remove("K"))
	assert.False(t, a.Remove("never-there"))
}

func TestMissingKeyConvertsThroughSentinels(t *testing.T) {
	// A typed read of an absent key converts the empty string, so it
	// shares the malformed-text failure path. Callers distinguish
	// "missing" from "present but broken" with Has, not with the
	// typed getters.
	a := &Actor{}

	assert.Equal(t, math.MaxInt32, IntField{K: "gone"}.Get(a))
	assert.True(t, math.IsNaN(float64(FloatField{K: "gone"}.Get(a))))
	assert.False(t, BoolField{K: "gone"}.Get(a))
	assert.Equal(t, Vec2{}, Vec2Field{K: "gone"}.Get(a))

	_, err := EnumField{K: "gone", Names: AlignNames}.Get(a)
	assert.Error(t, err)

	assert.False(t, a.Has("gone"))
}

func TestTypedAccessors(t *testing.T) {
	a := &Actor{}

	IntField{K: "n"}.Set(a, 7)
	assert.Equal(t, "7", a.Value("n"))

	BoolField{K: "b"}.Set(a, true)
	assert.Equal(t, "TRUE", a.Value("b"))

	FloatField{K: "f"}.Set(a, 2.5)
	assert.Equal(t, float32(2.5), FloatField{K: "f"}.Get(a))

	Vec2Field{K: "v"}.Set(a, Vec2{1.5, -2})
	assert.Equal(t, Vec2{1.5, -2}, Vec2Field{K: "v"}.Get(a))

	e := EnumField{K: "al", Names: AlignNames}
	e.Set(a, 2)
	assert.Equal(t, "RIGHT", a.Value("al"))
	got, err := e.Get(a)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
