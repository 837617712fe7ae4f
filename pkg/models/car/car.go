package car

import "image/color"

// Brakes represents the braking system of a car
type Brakes struct {
	Type string `json:"type"`
	// StoppingPower is the catalog brake rating shown in the garage.
	// It does not change how hard a car brakes on track.
	StoppingPower float64 `json:"stopping_power"`
}

// Car is a catalog entry a race vehicle is built from
type Car struct {
	Make   string     `json:"make"`
	Model  string     `json:"model"`
	Year   int        `json:"year"`
	Color  color.RGBA `json:"color"`
	Width  int        `json:"width"`  // bounding box, device units
	Height int        `json:"height"` // bounding box, device units
	Power  float64    `json:"power"`  // throttle at full accelerate
	Brakes Brakes     `json:"brakes"`
}

// NewCar creates a car with the standard 50x100 footprint
func NewCar(make, model string, year int, paint color.RGBA) *Car {
	return &Car{
		Make:   make,
		Model:  model,
		Year:   year,
		Color:  paint,
		Width:  50,
		Height: 100,
		Power:  50,
		Brakes: Brakes{
			Type:          "disc",
			StoppingPower: 0.8,
		},
	}
}

// Dimensions returns the bounding box size
func (c *Car) Dimensions() (int, int) {
	return c.Width, c.Height
}

// Thrust returns the throttle produced by a fully held accelerator
func (c *Car) Thrust() float64 {
	return c.Power
}

// String returns "Make Model"
func (c *Car) String() string {
	return c.Make + " " + c.Model
}
