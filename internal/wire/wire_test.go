package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteD(-123)
	w.WriteF(1.5)
	w.WriteB(true)
	w.WriteB(false)
	w.WriteQ(1<<40 + 7)
	w.WriteS("hello")
	w.WriteS("")
	w.WriteS("蝸牛")

	r := NewReader(w.Bytes())
	assert.Equal(t, int32(-123), r.ReadD())
	assert.Equal(t, float32(1.5), r.ReadF())
	assert.True(t, r.ReadB())
	assert.False(t, r.ReadB())
	assert.Equal(t, uint64(1<<40+7), r.ReadQ())
	assert.Equal(t, "hello", r.ReadS())
	assert.Equal(t, "", r.ReadS())
	assert.Equal(t, "蝸牛", r.ReadS())
	assert.Equal(t, 0, r.Remaining())
}

func TestLittleEndianLayout(t *testing.T) {
	w := NewWriter()
	w.WriteD(1)
	w.WriteS("ab")
	require.Equal(t, []byte{
		1, 0, 0, 0, // int32 1
		2, 0, 0, 0, // string length prefix
		'a', 'b',
	}, w.Bytes())
}

func TestReadPastEndReturnsZeroValues(t *testing.T) {
	r := NewReader([]byte{1})
	assert.True(t, r.ReadB())

	// Everything after the end degrades to zero values.
	assert.Equal(t, int32(0), r.ReadD())
	assert.Equal(t, float32(0), r.ReadF())
	assert.Equal(t, uint64(0), r.ReadQ())
	assert.Equal(t, "", r.ReadS())
	assert.False(t, r.ReadB())
}

func TestReadTruncatedString(t *testing.T) {
	w := NewWriter()
	w.WriteS("hello")
	data := w.Bytes()[:6] // length says 5, only 2 bytes present

	r := NewReader(data)
	assert.Equal(t, "", r.ReadS())
}

func TestReadStringInvalidUTF8(t *testing.T) {
	w := NewWriter()
	w.WriteD(2)
	w.buf = append(w.buf, 0xff, 0xfe)

	r := NewReader(w.Bytes())
	got := r.ReadS()
	// Invalid bytes are replaced, never dropped silently into the
	// caller as broken UTF-8.
	assert.Equal(t, "��", got)
}

func TestNegativeStringLength(t *testing.T) {
	w := NewWriter()
	w.WriteD(-5)
	w.WriteD(99)

	r := NewReader(w.Bytes())
	assert.Equal(t, "", r.ReadS())
	assert.Equal(t, int32(99), r.ReadD())
}
