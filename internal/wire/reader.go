package wire

import (
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/unicode"
)

// Reader reads level-file fields from a decompressed payload.
// All multi-byte reads are little-endian. Reads past the end of the
// buffer return zero values instead of failing, so a truncated file
// degrades to defaults rather than aborting mid-decode.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadB reads 1 byte as a bool (nonzero = true).
func (r *Reader) ReadB() bool {
	if r.off >= len(r.data) {
		return false
	}
	v := r.data[r.off]
	r.off++
	return v != 0
}

// ReadD reads 4 bytes as little-endian int32.
func (r *Reader) ReadD() int32 {
	if r.off+4 > len(r.data) {
		return 0
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v
}

// ReadF reads 4 bytes as a little-endian float32.
func (r *Reader) ReadF() float32 {
	if r.off+4 > len(r.data) {
		return 0
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(r.data[r.off:]))
	r.off += 4
	return v
}

// ReadQ reads 8 bytes as little-endian uint64.
func (r *Reader) ReadQ() uint64 {
	if r.off+8 > len(r.data) {
		return 0
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v
}

// ReadS reads an int32-length-prefixed UTF-8 string.
// A negative or overlong length yields the empty string.
func (r *Reader) ReadS() string {
	n := int(r.ReadD())
	if n <= 0 || r.off+n > len(r.data) {
		return ""
	}
	raw := r.data[r.off : r.off+n]
	r.off += n
	return sanitizeUTF8(raw)
}

// sanitizeUTF8 returns raw as a string, replacing invalid sequences.
// Pure ASCII passes through unchanged; only suspect payloads go
// through the replacing decoder.
func sanitizeUTF8(raw []byte) string {
	allASCII := true
	for _, b := range raw {
		if b >= 0x80 {
			allASCII = false
			break
		}
	}
	if allASCII {
		return string(raw)
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}
