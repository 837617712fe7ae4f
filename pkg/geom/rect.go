package geom

// Rect is an axis-aligned box in integer device units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the x coordinate one past the right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and o share any interior area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether o lies fully inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// BoxAt returns a w x h rect whose origin is p truncated toward zero
func BoxAt(p Vec2, w, h int) Rect {
	return Rect{X: int(p.X), Y: int(p.Y), W: w, H: h}
}
