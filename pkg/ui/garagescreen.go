package ui

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/models/car"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GarageScreen lets each player pick a car before the race
type GarageScreen struct {
	names    [2]string
	selected [2]int
	sprites  map[*car.Car]*ebiten.Image
	onReady  func(cars [2]*car.Car)
}

// NewGarageScreen creates the car selection screen. Each slot starts on
// the car chosen last time, or the inventory default.
func NewGarageScreen(names [2]string, previous [2]*car.Car, onReady func(cars [2]*car.Car)) *GarageScreen {
	gs := &GarageScreen{
		names:   names,
		sprites: make(map[*car.Car]*ebiten.Image),
		onReady: onReady,
	}
	cars := models.CarInventory.GetAllCars()
	for slot := range gs.selected {
		gs.selected[slot] = slot % max(len(cars), 1)
		for i, c := range cars {
			if c == previous[slot] {
				gs.selected[slot] = i
			}
		}
	}
	return gs
}

// Update handles input for the garage screen
func (gs *GarageScreen) Update() error {
	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		gs.selected[0] = models.CarInventory.Next(gs.selected[0], -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		gs.selected[0] = models.CarInventory.Next(gs.selected[0], 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		gs.selected[1] = models.CarInventory.Next(gs.selected[1], -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		gs.selected[1] = models.CarInventory.Next(gs.selected[1], 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if gs.onReady != nil {
			gs.onReady([2]*car.Car{cars[gs.selected[0]], cars[gs.selected[1]]})
		}
	}
	return nil
}

// Draw renders both players' picks side by side
func (gs *GarageScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	DrawCenteredText(screen, "GARAGE", float64(w)/2, 40, 3, color.White)

	cars := models.CarInventory.GetAllCars()
	if len(cars) == 0 {
		return
	}
	for slot := range gs.selected {
		cx := float64(w) * float64(1+2*slot) / 4
		gs.drawBay(screen, slot, cx, cars[gs.selected[slot]])
	}

	instr := "P1: A/D to choose   P2: LEFT/RIGHT to choose   ENTER to race"
	DrawCenteredText(screen, instr, float64(w)/2, float64(h)-50, 1, color.RGBA{200, 200, 200, 255})
}

func (gs *GarageScreen) drawBay(screen *ebiten.Image, slot int, cx float64, c *car.Car) {
	const top = 110.0
	DrawPanel(screen, cx-150, top, 300, 360, color.RGBA{35, 35, 60, 255}, c.Color)
	DrawCenteredText(screen, gs.names[slot], cx, top+14, 2, color.RGBA{255, 215, 0, 255})

	sprite, ok := gs.sprites[c]
	if !ok {
		sprite = NewCarSprite(c.Width, c.Height, c.Color)
		gs.sprites[c] = sprite
	}
	box := geom.Rect{X: int(cx) - c.Width/2, Y: int(top) + 60, W: c.Width, H: c.Height}
	DrawCar(screen, sprite, box, 0)

	fg := color.RGBA{220, 220, 230, 255}
	y := top + 190
	for _, line := range []string{
		fmt.Sprintf("< %s >", c.String()),
		fmt.Sprintf("Year   %d", c.Year),
		fmt.Sprintf("Power  %.0f", c.Power),
		fmt.Sprintf("Brakes %s %.0f%%", c.Brakes.Type, c.Brakes.StoppingPower*100),
		fmt.Sprintf("Size   %dx%d", c.Width, c.Height),
	} {
		DrawCenteredText(screen, line, cx, y, 1, fg)
		y += 28
	}
}
