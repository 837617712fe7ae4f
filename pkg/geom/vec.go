package geom

import "math"

// Vec2 is a point or direction in continuous world space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the magnitude of the vector
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Forward returns the unit thrust direction for a heading in degrees.
// Heading 0 points up the screen (negative Y) and increasing heading
// turns the vector clockwise.
func Forward(headingDeg float64) Vec2 {
	rad := headingDeg * math.Pi / 180.0
	return Vec2{math.Sin(rad), -math.Cos(rad)}
}
