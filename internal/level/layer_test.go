package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledLayer(w, h int, code int32) *TileLayer {
	l := NewTileLayer(LayerCollision, w, h)
	l.Fill(0, 0, w, h, code)
	return l
}

func TestFillClamps(t *testing.T) {
	l := NewTileLayer(LayerCollision, 4, 4)
	l.Fill(-5, -5, 10, 10, 9)

	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			assert.Equal(t, int32(9), l.At(x, y), "cell (%d,%d)", x, y)
		}
	}

	// A rectangle fully outside the grid touches nothing.
	l2 := NewTileLayer(LayerCollision, 4, 4)
	l2.Fill(10, 10, 3, 3, 7)
	for _, code := range l2.Tiles {
		assert.Equal(t, int32(0), code)
	}
}

func TestFillPartialRect(t *testing.T) {
	l := NewTileLayer(LayerCollision, 5, 5)
	l.Fill(1, 2, 2, 2, 3)

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			want := int32(0)
			if x >= 1 && x < 3 && y >= 2 && y < 4 {
				want = 3
			}
			assert.Equal(t, want, l.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		newW, newH   int
	}{
		{"grow_width_same_height", 3, 4, 6, 4},
		{"shrink_width_same_height", 6, 4, 3, 4},
		{"grow_height", 3, 4, 3, 8},
		{"shrink_height", 3, 8, 3, 4},
		{"grow_both", 3, 3, 5, 7},
		{"shrink_both", 5, 7, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewTileLayer(LayerCollision, c.w, c.h)
			for x := 0; x < c.w; x++ {
				for y := 0; y < c.h; y++ {
					l.Set(x, y, int32(x*100+y+1))
				}
			}

			l.Resize(c.newW, c.newH)
			require.Equal(t, c.newW, l.Width)
			require.Equal(t, c.newH, l.Height)
			require.Len(t, l.Tiles, c.newW*c.newH)

			for x := 0; x < c.newW; x++ {
				for y := 0; y < c.newH; y++ {
					want := int32(0)
					if x < c.w && y < c.h {
						want = int32(x*100 + y + 1)
					}
					assert.Equal(t, want, l.At(x, y), "cell (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestResizeSameSizeIsNoop(t *testing.T) {
	l := filledLayer(4, 3, 7)
	l.Set(2, 1, 5)
	before := append([]int32(nil), l.Tiles...)

	l.Resize(4, 3)
	l.Resize(4, 3)
	assert.Equal(t, before, l.Tiles)
}

func TestMoveRight(t *testing.T) {
	l := filledLayer(5, 5, 7)
	l.Move(1, 0)

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			want := int32(7)
			if x == 0 {
				want = 0
			}
			assert.Equal(t, want, l.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestMoveUp(t *testing.T) {
	l := filledLayer(5, 5, 7)
	l.Move(0, -1)

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			want := int32(7)
			if y == 4 {
				want = 0
			}
			assert.Equal(t, want, l.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestMoveDiagonalCorner(t *testing.T) {
	// move(1,-1) vacates column 0 and the last row; the corner cell
	// (0,4) sits in both fills and must end up zero.
	l := filledLayer(5, 5, 7)
	l.Move(1, -1)

	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			want := int32(7)
			if x == 0 || y == 4 {
				want = 0
			}
			assert.Equal(t, want, l.At(x, y), "cell (%d,%d)", x, y)
		}
	}
}

func TestMovePreservesContent(t *testing.T) {
	l := NewTileLayer(LayerCollision, 4, 4)
	l.Set(1, 1, 3)
	l.Set(2, 3, 8)

	l.Move(1, 0)
	assert.Equal(t, int32(3), l.At(2, 1))
	assert.Equal(t, int32(8), l.At(3, 3))

	l.Move(-1, 0)
	assert.Equal(t, int32(3), l.At(1, 1))
	assert.Equal(t, int32(8), l.At(2, 3))
}

func TestMoveWholeGridOut(t *testing.T) {
	l := filledLayer(3, 3, 5)
	l.Move(3, 0)
	for _, code := range l.Tiles {
		assert.Equal(t, int32(0), code)
	}

	l2 := filledLayer(3, 3, 5)
	l2.Move(0, -4)
	for _, code := range l2.Tiles {
		assert.Equal(t, int32(0), code)
	}
}

func TestClear(t *testing.T) {
	l := filledLayer(4, 2, 9)
	l.Clear()
	require.Len(t, l.Tiles, 8)
	for _, code := range l.Tiles {
		assert.Equal(t, int32(0), code)
	}
}

func TestAtSetOutOfRange(t *testing.T) {
	l := NewTileLayer(LayerCollision, 2, 2)
	assert.Equal(t, int32(0), l.At(-1, 0))
	assert.Equal(t, int32(0), l.At(0, 5))
	l.Set(-1, 0, 9)
	l.Set(0, 5, 9)
	for _, code := range l.Tiles {
		assert.Equal(t, int32(0), code)
	}
}
