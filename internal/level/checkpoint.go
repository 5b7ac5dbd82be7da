package level

// The checkpoint successor graph lives entirely inside the generic
// field store: each Checkpoint actor carries an integer "ID" field
// and a contiguous run of "NextID_0", "NextID_1", ... fields naming
// its successors. No separate graph structure is kept or persisted.

// CheckpointType is the Checkpoint shape's type tag.
const CheckpointType = "Checkpoint"

var (
	checkpointID      = IntField{K: "ID", Default: 0}
	checkpointIsStart = BoolField{K: "IsStart", Default: false}
)

// CheckpointID returns the checkpoint's ID field.
func CheckpointID(a *Actor) int {
	return checkpointID.Get(a)
}

// IsStartCheckpoint reports the checkpoint's IsStart field.
func IsStartCheckpoint(a *Actor) bool {
	return checkpointIsStart.Get(a)
}

// Checkpoints returns the level's checkpoint actors in list order.
func (l *Level) Checkpoints() []*Actor {
	return l.ActorsOfType(CheckpointType)
}

// NextIDs returns a's successor IDs in slot order. The run of
// NextID_<i> keys is contiguous by construction, so the walk stops at
// the first missing slot. Presence is checked on the raw store: a
// typed read could not tell a missing slot from a malformed one.
func NextIDs(a *Actor) []int {
	var out []int
	for i := 0; ; i++ {
		key := nextIDKey(i)
		if !a.Has(key) {
			return out
		}
		out = append(out, ParseInt(a.Value(key)))
	}
}

// AppendNextID appends id to a's successor list without disturbing
// existing slots.
func AppendNextID(a *Actor, id int) {
	i := 0
	for a.Has(nextIDKey(i)) {
		i++
	}
	a.SetValue(nextIDKey(i), FormatInt(id))
}

func nextIDKey(i int) string {
	return "NextID_" + FormatInt(i)
}

// NewCheckpoint constructs a checkpoint at pos with the next free ID:
// one more than the highest ID already present, or 1 for the first
// checkpoint in the level. The new actor is appended to the level.
func (l *Level) NewCheckpoint(pos Vec2) *Actor {
	maxID := 0
	for _, cp := range l.Checkpoints() {
		if id := CheckpointID(cp); id > maxID {
			maxID = id
		}
	}
	a := ShapeFor(CheckpointType).New()
	a.Pos = pos
	checkpointID.Set(a, maxID+1)
	l.AddActor(a)
	return a
}

// Connect appends to's ID to from's successor list.
func Connect(from, to *Actor) {
	AppendNextID(from, CheckpointID(to))
}
