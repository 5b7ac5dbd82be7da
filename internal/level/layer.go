package level

// Tile codes. Code 0 and 1 apply everywhere; codes 2-15 are the
// reserved collision shapes and only mean anything on the collision
// layer. Other layers treat codes as opaque indices into the art
// catalogs.
const (
	TileEmpty int32 = 0
	TileSolid int32 = 1

	TileWallLeft            int32 = 2
	TileWallRight           int32 = 3
	TileCeiling             int32 = 4
	TileSlopeUpLeft         int32 = 5
	TileSlopeUpRight        int32 = 6
	TileSlopeDownLeft       int32 = 7
	TileSlopeDownRight      int32 = 8
	TileSteepSlopeUpLeft    int32 = 9
	TileSteepSlopeUpRight   int32 = 10
	TileSteepSlopeDownLeft  int32 = 11
	TileSteepSlopeDownRight int32 = 12
	TileStairsLeft          int32 = 13
	TileStairsRight         int32 = 14
	TileOneWayPlatform      int32 = 15
)

// LayerCollision is the tag of the layer the reserved codes apply to.
const LayerCollision = "COLLISION"

// TileLayer is a named fixed-size grid of tile codes. Storage is
// column-major: Tiles[x*Height+y], so one column is one contiguous
// run. Resize's fast path and Move's single-copy shift both depend
// on that layout.
type TileLayer struct {
	Tag    string
	Width  int
	Height int
	Tiles  []int32
}

func NewTileLayer(tag string, width, height int) *TileLayer {
	return &TileLayer{
		Tag:    tag,
		Width:  width,
		Height: height,
		Tiles:  make([]int32, width*height),
	}
}

// At returns the code at (x, y); out-of-range coordinates read 0.
func (l *TileLayer) At(x, y int) int32 {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0
	}
	return l.Tiles[x*l.Height+y]
}

// Set writes the code at (x, y); out-of-range coordinates are ignored.
func (l *TileLayer) Set(x, y int, code int32) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return
	}
	l.Tiles[x*l.Height+y] = code
}

// Fill writes code into every cell of the given rectangle intersected
// with the grid bounds. Rectangles reaching outside the grid are
// clamped, never an error.
func (l *TileLayer) Fill(x, y, w, h int, code int32) {
	x0, x1 := clamp(x, l.Width), clamp(x+w, l.Width)
	y0, y1 := clamp(y, l.Height), clamp(y+h, l.Height)
	for cx := x0; cx < x1; cx++ {
		col := l.Tiles[cx*l.Height : cx*l.Height+l.Height]
		for cy := y0; cy < y1; cy++ {
			col[cy] = code
		}
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Resize reallocates the grid to newW x newH, keeping the overlapping
// top-left region and zeroing everything else. An unchanged height
// keeps columns contiguous across the whole buffer, so the overlap is
// a single bulk copy; otherwise each surviving column is copied on
// its own.
func (l *TileLayer) Resize(newW, newH int) {
	tiles := make([]int32, newW*newH)
	copyW := min(l.Width, newW)
	if newH == l.Height {
		copy(tiles, l.Tiles[:copyW*l.Height])
	} else {
		copyH := min(l.Height, newH)
		for x := 0; x < copyW; x++ {
			copy(tiles[x*newH:x*newH+copyH], l.Tiles[x*l.Height:x*l.Height+copyH])
		}
	}
	l.Width, l.Height, l.Tiles = newW, newH, tiles
}

// Move shifts the whole grid content by dx columns and dy rows.
// Over the column-major buffer that is one signed linear offset, so
// the shift is a single overlapping copy; Go's copy has move
// semantics in both directions. The vacated border is then zeroed as
// two independent clamped fills: the dx columns over the full height,
// and the dy rows over the full width.
func (l *TileLayer) Move(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	shift := dy + dx*l.Height
	n := len(l.Tiles)
	if shift > 0 && shift < n {
		copy(l.Tiles[shift:], l.Tiles[:n-shift])
	} else if shift < 0 && -shift < n {
		copy(l.Tiles[:n+shift], l.Tiles[-shift:])
	}

	if dx > 0 {
		l.Fill(0, 0, dx, l.Height, 0)
	} else if dx < 0 {
		l.Fill(l.Width+dx, 0, -dx, l.Height, 0)
	}
	if dy > 0 {
		l.Fill(0, 0, l.Width, dy, 0)
	} else if dy < 0 {
		l.Fill(0, l.Height+dy, l.Width, -dy, 0)
	}
}

// Clear reallocates the grid to all zeros at its current dimensions.
func (l *TileLayer) Clear() {
	l.Tiles = make([]int32, l.Width*l.Height)
}
