package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckpointAssignsIDs(t *testing.T) {
	lvl := &Level{}

	a := lvl.NewCheckpoint(Vec2{1, 1})
	assert.Equal(t, 1, CheckpointID(a), "first checkpoint gets ID 1")

	b := lvl.NewCheckpoint(Vec2{5, 1})
	assert.Equal(t, 2, CheckpointID(b))

	// IDs continue from the highest existing one, not from the count.
	lvl.RemoveActor(a)
	c := lvl.NewCheckpoint(Vec2{9, 1})
	assert.Equal(t, 3, CheckpointID(c))
}

func TestConnectAppendsSuccessors(t *testing.T) {
	lvl := &Level{}
	a := lvl.NewCheckpoint(Vec2{1, 1})
	b := lvl.NewCheckpoint(Vec2{5, 1})
	c := lvl.NewCheckpoint(Vec2{9, 1})

	Connect(a, b)
	Connect(a, c)
	assert.Equal(t, []int{2, 3}, NextIDs(a))
	assert.Empty(t, NextIDs(b))

	// Existing slots stay untouched when another edge is added.
	Connect(a, a)
	assert.Equal(t, []int{2, 3, 1}, NextIDs(a))
}

func TestNextIDsStopsAtGap(t *testing.T) {
	lvl := &Level{}
	a := lvl.NewCheckpoint(Vec2{0, 0})
	a.SetValue("NextID_0", "4")
	a.SetValue("NextID_2", "9") // orphan slot past the gap

	require.Equal(t, []int{4}, NextIDs(a))

	// AppendNextID fills the first free slot, reconnecting the run.
	AppendNextID(a, 6)
	assert.Equal(t, []int{4, 6, 9}, NextIDs(a))
}

func TestCheckpointsFilter(t *testing.T) {
	lvl := &Level{}
	lvl.NewCheckpoint(Vec2{0, 0})
	lvl.AddActor(ShapeFor("Coin").New())
	lvl.NewCheckpoint(Vec2{4, 0})

	cps := lvl.Checkpoints()
	require.Len(t, cps, 2)
	assert.Equal(t, 1, CheckpointID(cps[0]))
	assert.Equal(t, 2, CheckpointID(cps[1]))
}
