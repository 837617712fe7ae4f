package collision

import (
	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
)

const (
	// WallRestitution is the velocity factor for a world edge bounce
	WallRestitution = -1.0
	// ObstacleRestitution is the velocity factor for an obstacle bounce
	ObstacleRestitution = -0.5
)

// Side is a set of box edges involved in a contact
type Side uint8

const (
	SideNone Side = 0
	SideLeft Side = 1 << iota
	SideRight
	SideTop
	SideBottom
)

// Has reports whether s includes every edge in o
func (s Side) Has(o Side) bool {
	return s&o == o && o != SideNone
}

func (s Side) String() string {
	if s == SideNone {
		return "none"
	}
	out := ""
	for _, e := range []struct {
		side Side
		name string
	}{{SideLeft, "left"}, {SideRight, "right"}, {SideTop, "top"}, {SideBottom, "bottom"}} {
		if s&e.side != 0 {
			if out != "" {
				out += "|"
			}
			out += e.name
		}
	}
	return out
}

// Contact records which penetration conditions fired against one obstacle
type Contact struct {
	Index int
	Sides Side
}

// ResolveWorldBounds keeps the vehicle's box inside world. Each axis is
// handled on its own, so a corner hit bounces both components.
// The returned set names the world edges that were hit.
func ResolveWorldBounds(v *vehicle.Vehicle, world geom.Rect) Side {
	box := v.Box()
	hit := SideNone

	if box.X < world.X {
		v.Position.X = float64(world.X)
		v.Velocity.X *= WallRestitution
		hit |= SideLeft
	} else if box.Right() > world.Right() {
		v.Position.X = float64(world.Right() - v.Width)
		v.Velocity.X *= WallRestitution
		hit |= SideRight
	}

	if box.Y < world.Y {
		v.Position.Y = float64(world.Y)
		v.Velocity.Y *= WallRestitution
		hit |= SideTop
	} else if box.Bottom() > world.Bottom() {
		v.Position.Y = float64(world.Bottom() - v.Height)
		v.Velocity.Y *= WallRestitution
		hit |= SideBottom
	}

	if hit != SideNone {
		v.SyncBox()
	}
	return hit
}

// ResolveObstacles pushes the vehicle out of every obstacle it overlaps.
//
// All four penetration tests run against the box as it was when the overlap
// was found and are not exclusive: a box wedged into a corner can be
// corrected on both axes, and a box wider than the obstacle is pushed to
// the left edge and then to the right edge.
func ResolveObstacles(v *vehicle.Vehicle, obstacles []geom.Rect) []Contact {
	var contacts []Contact
	for i, obs := range obstacles {
		box := v.Box()
		if !box.Intersects(obs) {
			continue
		}

		sides := SideNone
		if box.Right() > obs.X && box.X < obs.X {
			v.Position.X = float64(obs.X - v.Width)
			v.Velocity.X *= ObstacleRestitution
			sides |= SideLeft
		}
		if box.X < obs.Right() && box.Right() > obs.Right() {
			v.Position.X = float64(obs.Right())
			v.Velocity.X *= ObstacleRestitution
			sides |= SideRight
		}
		if box.Bottom() > obs.Y && box.Y < obs.Y {
			v.Position.Y = float64(obs.Y - v.Height)
			v.Velocity.Y *= ObstacleRestitution
			sides |= SideTop
		}
		if box.Y < obs.Bottom() && box.Bottom() > obs.Bottom() {
			v.Position.Y = float64(obs.Bottom())
			v.Velocity.Y *= ObstacleRestitution
			sides |= SideBottom
		}

		v.SyncBox()
		contacts = append(contacts, Contact{Index: i, Sides: sides})
	}
	return contacts
}
