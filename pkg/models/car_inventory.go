package models

import (
	"image/color"

	"github.com/golangdaddy/duelrace/pkg/models/car"
)

// CarInventory holds the cars available in the garage. The first two are
// the default picks for the two start slots.
var CarInventory = &carInventory{
	cars: []*car.Car{
		car.NewCar("Roadster", "Red", 1989, color.RGBA{220, 20, 20, 255}),
		car.NewCar("Roadster", "Blue", 1989, color.RGBA{30, 90, 220, 255}),
		tuned(car.NewCar("Coupe", "GT", 1994, color.RGBA{240, 200, 40, 255}), 50, 100, 60, 0.6),
		tuned(car.NewCar("Kart", "Sprint", 2001, color.RGBA{40, 180, 90, 255}), 40, 80, 45, 1.0),
	},
}

func tuned(c *car.Car, width, height int, power, stopping float64) *car.Car {
	c.Width = width
	c.Height = height
	c.Power = power
	c.Brakes.StoppingPower = stopping
	return c
}

type carInventory struct {
	cars []*car.Car
}

// GetAllCars returns all available cars
func (ci *carInventory) GetAllCars() []*car.Car {
	return ci.cars
}

// ForSlot returns the default car for a start slot, wrapping around the
// inventory
func (ci *carInventory) ForSlot(slot int) *car.Car {
	if len(ci.cars) == 0 {
		return nil
	}
	return ci.cars[slot%len(ci.cars)]
}

// Next returns the index after i, wrapping around. Negative steps go back.
func (ci *carInventory) Next(i, step int) int {
	n := len(ci.cars)
	if n == 0 {
		return 0
	}
	return ((i+step)%n + n) % n
}
