package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -4}

	assert.Equal(t, Vec2{4, -2}, a.Add(b))
	assert.Equal(t, Vec2{-2, 6}, a.Sub(b))
	assert.Equal(t, Vec2{2.5, 5}, a.Scale(2.5))
	assert.InDelta(t, 5.0, b.Len(), 1e-12)
}

func TestForward(t *testing.T) {
	tests := []struct {
		heading float64
		want    Vec2
	}{
		{0, Vec2{0, -1}},
		{90, Vec2{1, 0}},
		{180, Vec2{0, 1}},
		{270, Vec2{-1, 0}},
		{-90, Vec2{-1, 0}},
	}
	for _, tt := range tests {
		got := Forward(tt.heading)
		assert.InDelta(t, tt.want.X, got.X, 1e-9, "heading %v", tt.heading)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-9, "heading %v", tt.heading)
		assert.InDelta(t, 1.0, got.Len(), 1e-12)
	}
}

func TestForwardTurnsClockwise(t *testing.T) {
	// a small positive heading leans the up vector to the right
	f := Forward(10)
	assert.Greater(t, f.X, 0.0)
	assert.Less(t, f.Y, 0.0)
}

func TestBoxAtTruncatesTowardZero(t *testing.T) {
	assert.Equal(t, Rect{X: 10, Y: 20, W: 50, H: 100}, BoxAt(Vec2{10.9, 20.2}, 50, 100))
	assert.Equal(t, Rect{X: -3, Y: 0, W: 5, H: 5}, BoxAt(Vec2{-3.7, -0.4}, 5, 5))
	assert.Equal(t, math.Trunc(-3.7), float64(BoxAt(Vec2{-3.7, 0}, 1, 1).X))
}

func TestIntersects(t *testing.T) {
	r := Rect{0, 0, 10, 10}

	assert.True(t, r.Intersects(Rect{5, 5, 10, 10}))
	assert.True(t, r.Intersects(Rect{2, 2, 2, 2}))
	assert.False(t, r.Intersects(Rect{10, 0, 5, 5}), "edge contact is not overlap")
	assert.False(t, r.Intersects(Rect{0, 10, 5, 5}))
	assert.False(t, r.Intersects(Rect{-20, -20, 5, 5}))

	// symmetric
	o := Rect{8, -3, 4, 4}
	assert.Equal(t, r.Intersects(o), o.Intersects(r))
}

func TestContains(t *testing.T) {
	world := Rect{0, 0, 800, 600}
	assert.True(t, world.Contains(Rect{0, 0, 50, 100}))
	assert.True(t, world.Contains(Rect{750, 500, 50, 100}))
	assert.False(t, world.Contains(Rect{751, 500, 50, 100}))
	assert.False(t, world.Contains(Rect{-1, 0, 50, 100}))
}
