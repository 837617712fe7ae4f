package collision

import (
	"fmt"
	"math"
	"strings"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
)

// MinSeparationDistance is the centre distance below which the pair
// direction is taken from FallbackDirection instead of the displacement.
const MinSeparationDistance = 1e-6

// FallbackDirection separates two vehicles sitting on the same spot
var FallbackDirection = geom.Vec2{X: 1, Y: 0}

// PairMode selects how the second vehicle's push is computed
type PairMode int

const (
	// PairSequential pushes b away from a's already corrected position
	PairSequential PairMode = iota
	// PairSnapshot pushes both vehicles from the same pre-contact positions
	PairSnapshot
)

func (m PairMode) String() string {
	if m == PairSnapshot {
		return "snapshot"
	}
	return "sequential"
}

// ParsePairMode maps a config value to a PairMode
func ParsePairMode(s string) (PairMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return PairSequential, nil
	case "snapshot":
		return PairSnapshot, nil
	}
	return PairSequential, fmt.Errorf("unknown pair mode %q", s)
}

// Overlap reports whether the two vehicles' boxes intersect
func Overlap(a, b *vehicle.Vehicle) bool {
	return a.Box().Intersects(b.Box())
}

// Resolve handles contact between two vehicles. The velocities are swapped
// (equal mass) and both positions are pushed apart along the line between
// them. It reports whether the vehicles were in contact.
func Resolve(a, b *vehicle.Vehicle, mode PairMode) bool {
	if a.Finished || b.Finished || !Overlap(a, b) {
		return false
	}

	a.Velocity, b.Velocity = b.Velocity, a.Velocity

	displacement := a.Position.Sub(b.Position)
	distance := displacement.Len()
	dir := direction(displacement, distance)
	overlap := 0.5 * (distance - float64(a.Width+b.Width)/2)
	if overlap >= 0 {
		// the width estimate never pulls the cars together; boxes that
		// still overlap (nose to tail) are split along dir instead
		overlap = -penetration(a.Box(), b.Box(), dir)
	}

	a.Position = a.Position.Sub(dir.Scale(overlap))

	if mode == PairSequential {
		d := a.Position.Sub(b.Position)
		dir = direction(d, d.Len())
	}
	b.Position = b.Position.Add(dir.Scale(overlap))

	a.SyncBox()
	b.SyncBox()
	return true
}

// penetration is how far each box must move along dir, in opposite
// directions, to clear the overlap on one axis
func penetration(a, b geom.Rect, dir geom.Vec2) float64 {
	ox := float64(min(a.Right(), b.Right()) - max(a.X, b.X))
	oy := float64(min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y))

	push := math.Inf(1)
	if dir.X != 0 {
		push = ox / (2 * math.Abs(dir.X))
	}
	if dir.Y != 0 {
		push = math.Min(push, oy/(2*math.Abs(dir.Y)))
	}
	return push
}

func direction(d geom.Vec2, length float64) geom.Vec2 {
	if length < MinSeparationDistance {
		return FallbackDirection
	}
	return d.Scale(1 / length)
}
