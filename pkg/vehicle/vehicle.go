package vehicle

import "github.com/golangdaddy/duelrace/pkg/geom"

const (
	// Drag is the per-tick velocity multiplier applied after integration
	Drag = 0.99

	// DefaultReverseBias scales brake input before it is negated into throttle
	DefaultReverseBias = 0.8

	// DefaultThrust is the throttle produced by a fully held accelerate command
	DefaultThrust = 50.0

	DefaultWidth  = 50
	DefaultHeight = 100
)

// Spec describes the catalog car a vehicle is built from
type Spec interface {
	Dimensions() (width, height int)
	Thrust() float64
}

// Vehicle is a point-mass racer with a bounding box and a heading used to
// project thrust. The box is derived from Position and never set directly.
type Vehicle struct {
	ID   int
	Name string

	Position     geom.Vec2
	Velocity     geom.Vec2
	Acceleration geom.Vec2
	Heading      float64 // degrees, 0 = up, clockwise positive
	Throttle     float64

	Width, Height int
	Thrust        float64
	ReverseBias   float64

	Laps         int
	RequiredLaps int
	Finished     bool

	box geom.Rect
}

// New creates a vehicle at rest. A nil spec uses the default dimensions
// and thrust.
func New(id int, name string, spec Spec, position geom.Vec2, heading float64, requiredLaps int) *Vehicle {
	v := &Vehicle{
		ID:           id,
		Name:         name,
		Position:     position,
		Heading:      heading,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Thrust:       DefaultThrust,
		ReverseBias:  DefaultReverseBias,
		RequiredLaps: requiredLaps,
	}
	if spec != nil {
		v.Width, v.Height = spec.Dimensions()
		v.Thrust = spec.Thrust()
	}
	v.SyncBox()
	return v
}

// Box returns the bounding box in device units
func (v *Vehicle) Box() geom.Rect {
	return v.box
}

// SyncBox recomputes the bounding box from Position. Anything that moves
// Position outside Advance must call it.
func (v *Vehicle) SyncBox() {
	v.box = geom.BoxAt(v.Position, v.Width, v.Height)
}

// SetThrottle sets the raw throttle for this tick
func (v *Vehicle) SetThrottle(value float64) {
	v.Throttle = value
}

// Accelerate sets forward throttle
func (v *Vehicle) Accelerate(value float64) {
	v.Throttle = value
}

// Decelerate sets reverse throttle, scaled by the reverse bias
func (v *Vehicle) Decelerate(value float64) {
	v.Throttle = -value * v.ReverseBias
}

// SetHeading sets an absolute heading in degrees
func (v *Vehicle) SetHeading(angle float64) {
	v.Heading = angle
}

// Steer adds delta degrees to the heading
func (v *Vehicle) Steer(delta float64) {
	v.Heading += delta
}

// Speed is the velocity magnitude
func (v *Vehicle) Speed() float64 {
	return v.Velocity.Len()
}

// Advance integrates one tick of dt seconds.
func (v *Vehicle) Advance(dt float64) {
	if v.Finished {
		return
	}
	v.Acceleration = geom.Forward(v.Heading).Scale(v.Throttle)

	v.Position = v.Position.
		Add(v.Velocity.Scale(dt)).
		Add(v.Acceleration.Scale(0.5 * dt * dt))
	v.Velocity = v.Velocity.Add(v.Acceleration.Scale(dt)).Scale(Drag)

	v.SyncBox()
}

// Freeze stops the vehicle for good. Commands are ignored afterwards.
func (v *Vehicle) Freeze() {
	v.Finished = true
	v.Velocity = geom.Vec2{}
	v.Acceleration = geom.Vec2{}
	v.Throttle = 0
}
