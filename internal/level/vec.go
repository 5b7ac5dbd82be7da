package level

import "strings"

// Vec2 is a 2D position or size in world units.
type Vec2 struct {
	X, Y float32
}

// Vec3 carries a third component for fields that store color or depth
// alongside a plane coordinate.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec2) String() string {
	return FormatFloat(v.X) + "," + FormatFloat(v.Y)
}

func (v Vec3) String() string {
	return FormatFloat(v.X) + "," + FormatFloat(v.Y) + "," + FormatFloat(v.Z)
}

// ParseVec2 parses "x,y". Anything with the wrong number of parts
// yields the zero vector; the parts themselves go through the
// failure-tolerant float parse.
func ParseVec2(s string) Vec2 {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Vec2{}
	}
	return Vec2{X: ParseFloat(parts[0]), Y: ParseFloat(parts[1])}
}

// ParseVec3 parses "x,y,z" under the same rules as ParseVec2.
func ParseVec3(s string) Vec3 {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vec3{}
	}
	return Vec3{X: ParseFloat(parts[0]), Y: ParseFloat(parts[1]), Z: ParseFloat(parts[2])}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// MulXY scales each component independently.
func (v Vec2) MulXY(sx, sy float32) Vec2 { return Vec2{v.X * sx, v.Y * sy} }

// Mul scales both components by the same factor.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Half returns the vector scaled by one half (box center offsets).
func (v Vec2) Half() Vec2 { return Vec2{v.X / 2, v.Y / 2} }
