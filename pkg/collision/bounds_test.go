package collision

import (
	"testing"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var world = geom.Rect{X: 0, Y: 0, W: 800, H: 600}

func newCar(x, y float64) *vehicle.Vehicle {
	return vehicle.New(0, "test", nil, geom.Vec2{X: x, Y: y}, 0, 1)
}

func TestWorldBoundsInsideIsUntouched(t *testing.T) {
	v := newCar(100, 100)
	v.Velocity = geom.Vec2{X: 3, Y: -4}

	hit := ResolveWorldBounds(v, world)

	assert.Equal(t, SideNone, hit)
	assert.Equal(t, geom.Vec2{X: 100, Y: 100}, v.Position)
	assert.Equal(t, geom.Vec2{X: 3, Y: -4}, v.Velocity)
}

func TestWorldBoundsEachEdge(t *testing.T) {
	tests := []struct {
		name    string
		pos     geom.Vec2
		vel     geom.Vec2
		side    Side
		wantPos geom.Vec2
		wantVel geom.Vec2
	}{
		{"left", geom.Vec2{X: -12.5, Y: 100}, geom.Vec2{X: -20, Y: 1}, SideLeft, geom.Vec2{X: 0, Y: 100}, geom.Vec2{X: 20, Y: 1}},
		{"right", geom.Vec2{X: 790, Y: 100}, geom.Vec2{X: 20, Y: 1}, SideRight, geom.Vec2{X: 750, Y: 100}, geom.Vec2{X: -20, Y: 1}},
		{"top", geom.Vec2{X: 100, Y: -3}, geom.Vec2{X: 1, Y: -9}, SideTop, geom.Vec2{X: 100, Y: 0}, geom.Vec2{X: 1, Y: 9}},
		{"bottom", geom.Vec2{X: 100, Y: 555}, geom.Vec2{X: 1, Y: 9}, SideBottom, geom.Vec2{X: 100, Y: 500}, geom.Vec2{X: 1, Y: -9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newCar(tt.pos.X, tt.pos.Y)
			v.Velocity = tt.vel

			hit := ResolveWorldBounds(v, world)

			assert.Equal(t, tt.side, hit)
			assert.Equal(t, tt.wantPos, v.Position)
			assert.Equal(t, tt.wantVel, v.Velocity)
			assert.True(t, world.Contains(v.Box()))
		})
	}
}

func TestWorldBoundsCornerBouncesBothAxes(t *testing.T) {
	v := newCar(780, -40)
	v.Velocity = geom.Vec2{X: 5, Y: -5}

	hit := ResolveWorldBounds(v, world)

	assert.True(t, hit.Has(SideRight|SideTop))
	assert.Equal(t, geom.Vec2{X: -5, Y: 5}, v.Velocity)
	assert.Equal(t, geom.Rect{X: 750, Y: 0, W: 50, H: 100}, v.Box())
}

func TestWorldBoundsContainsAnyPosition(t *testing.T) {
	for x := -400.0; x <= 1200; x += 37.3 {
		for y := -400.0; y <= 1000; y += 41.7 {
			v := newCar(x, y)
			ResolveWorldBounds(v, world)
			require.True(t, world.Contains(v.Box()), "start (%v, %v) ended at %+v", x, y, v.Box())
		}
	}
}

func TestObstacleFromLeft(t *testing.T) {
	wall := geom.Rect{X: 300, Y: 0, W: 20, H: 600}
	v := newCar(260, 200) // box 260..310, straddles the wall's left edge
	v.Velocity = geom.Vec2{X: 10, Y: 0}

	contacts := ResolveObstacles(v, []geom.Rect{wall})

	require.Len(t, contacts, 1)
	assert.Equal(t, SideLeft, contacts[0].Sides)
	assert.Equal(t, 250.0, v.Position.X)
	assert.Equal(t, -5.0, v.Velocity.X)
	assert.False(t, v.Box().Intersects(wall))
}

func TestObstacleFromRight(t *testing.T) {
	wall := geom.Rect{X: 300, Y: 0, W: 20, H: 600}
	v := newCar(310, 200) // box 310..360
	v.Velocity = geom.Vec2{X: -8, Y: 2}

	contacts := ResolveObstacles(v, []geom.Rect{wall})

	require.Len(t, contacts, 1)
	assert.Equal(t, SideRight, contacts[0].Sides)
	assert.Equal(t, 320.0, v.Position.X)
	assert.Equal(t, geom.Vec2{X: 4, Y: 2}, v.Velocity)
}

func TestObstacleFromTopAndBottom(t *testing.T) {
	slab := geom.Rect{X: 0, Y: 300, W: 800, H: 200}

	above := newCar(100, 250) // box 250..350, the slab is wider so only vertical tests fire
	above.Velocity = geom.Vec2{X: 0, Y: 6}
	c := ResolveObstacles(above, []geom.Rect{slab})
	require.Len(t, c, 1)
	assert.Equal(t, SideTop, c[0].Sides)
	assert.Equal(t, 200.0, above.Position.Y)
	assert.Equal(t, -3.0, above.Velocity.Y)

	below := newCar(100, 450) // box 450..550
	below.Velocity = geom.Vec2{X: 0, Y: -6}
	c = ResolveObstacles(below, []geom.Rect{slab})
	require.Len(t, c, 1)
	assert.Equal(t, SideBottom, c[0].Sides)
	assert.Equal(t, 500.0, below.Position.Y)
	assert.Equal(t, 3.0, below.Velocity.Y)
}

func TestObstacleCornerFiresBothAxes(t *testing.T) {
	block := geom.Rect{X: 300, Y: 300, W: 100, H: 100}
	v := newCar(270, 220) // box 270..320 x 220..320, over the top-left corner
	v.Velocity = geom.Vec2{X: 4, Y: 4}

	contacts := ResolveObstacles(v, []geom.Rect{block})

	require.Len(t, contacts, 1)
	assert.True(t, contacts[0].Sides.Has(SideLeft|SideTop))
	assert.Equal(t, geom.Vec2{X: 250, Y: 200}, v.Position)
	assert.Equal(t, geom.Vec2{X: -2, Y: -2}, v.Velocity)
}

func TestObstacleNarrowerThanBoxCompounds(t *testing.T) {
	post := geom.Rect{X: 310, Y: 0, W: 10, H: 600}
	v := newCar(300, 200) // box 300..350 spans the whole post
	v.Velocity = geom.Vec2{X: 8, Y: 0}

	contacts := ResolveObstacles(v, []geom.Rect{post})

	require.Len(t, contacts, 1)
	assert.Equal(t, SideLeft|SideRight, contacts[0].Sides)
	// left correction then right correction, velocity damped twice
	assert.Equal(t, 320.0, v.Position.X)
	assert.Equal(t, 2.0, v.Velocity.X)
}

func TestObstaclesCheckedInOrder(t *testing.T) {
	obstacles := []geom.Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 300, Y: 0, W: 20, H: 600},
	}
	v := newCar(260, 200)

	contacts := ResolveObstacles(v, obstacles)

	require.Len(t, contacts, 1)
	assert.Equal(t, 1, contacts[0].Index)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "none", SideNone.String())
	assert.Equal(t, "left|top", (SideLeft | SideTop).String())
	assert.False(t, SideLeft.Has(SideNone))
}
