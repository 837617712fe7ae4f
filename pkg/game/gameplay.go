package game

import (
	"fmt"
	"image/color"

	"github.com/golangdaddy/duelrace/pkg/models/car"
	"github.com/golangdaddy/duelrace/pkg/race"
	"github.com/golangdaddy/duelrace/pkg/ui"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// MPHPerUnit converts simulation speed to the HUD's MPH. The drag
	// limited top speed at default thrust reads about 100.
	MPHPerUnit = 100 / 82.5

	// CountdownTicks is the grid hold before the lights go out
	CountdownTicks = 3 * race.TickRate
	// FinishHoldTicks is how long the finished track stays on screen
	FinishHoldTicks = 2 * race.TickRate
)

// Controls maps one player's keys to the vehicle command fields
type Controls struct {
	Accelerate ebiten.Key
	Brake      ebiten.Key
	Left       ebiten.Key
	Right      ebiten.Key
}

// DefaultControls are WASD for the first car and the arrows for the second
var DefaultControls = [2]Controls{
	{Accelerate: ebiten.KeyW, Brake: ebiten.KeyS, Left: ebiten.KeyA, Right: ebiten.KeyD},
	{Accelerate: ebiten.KeyArrowUp, Brake: ebiten.KeyArrowDown, Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight},
}

// command reads the held keys for one player
func (c Controls) command(steerRate float64) vehicle.Command {
	return vehicle.HeldCommand(
		ebiten.IsKeyPressed(c.Accelerate),
		ebiten.IsKeyPressed(c.Brake),
		ebiten.IsKeyPressed(c.Left),
		ebiten.IsKeyPressed(c.Right),
		steerRate,
	)
}

// GameplayScreen runs one race: one Step per frame, then the finish hold
type GameplayScreen struct {
	race      *race.Race
	backdrop  *ebiten.Image
	cars      [2]*car.Car
	sprites   [2]*ebiten.Image
	controls  [2]Controls
	steerRate float64

	countdown    int
	finishFrames int
	paused       bool
	showHitboxes bool

	onGameEnd func(r *race.Race) // called once after the finish hold
}

// NewGameplayScreen creates a gameplay screen for a race that has not
// started yet
func NewGameplayScreen(r *race.Race, backdrop *ebiten.Image, cars [2]*car.Car, steerRate float64, onGameEnd func(r *race.Race)) *GameplayScreen {
	gs := &GameplayScreen{
		race:      r,
		backdrop:  backdrop,
		cars:      cars,
		controls:  DefaultControls,
		steerRate: steerRate,
		countdown: CountdownTicks,
		onGameEnd: onGameEnd,
	}
	for i, v := range r.Vehicles {
		gs.sprites[i] = ui.NewCarSprite(v.Width, v.Height, cars[i].Color)
	}
	return gs
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		gs.showHitboxes = !gs.showHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.paused = !gs.paused
	}
	if gs.paused {
		return nil
	}

	if gs.countdown > 0 {
		gs.countdown--
		return nil
	}

	if gs.race.State() == race.Finished {
		gs.finishFrames++
		if gs.finishFrames == FinishHoldTicks && gs.onGameEnd != nil {
			gs.onGameEnd(gs.race)
		}
		return nil
	}

	var cmds [2]vehicle.Command
	for i, c := range gs.controls {
		cmds[i] = c.command(gs.steerRate)
	}
	gs.race.Step(cmds)
	return nil
}

// Draw renders the track, both cars and the HUD
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 100, 30, 255})
	if gs.backdrop != nil {
		screen.DrawImage(gs.backdrop, nil)
	}

	view := gs.race.View()
	for i, v := range view.Vehicles {
		ui.DrawCar(screen, gs.sprites[i], v.Box, v.Heading)
		if gs.showHitboxes {
			ui.DrawHitbox(screen, v.Box, color.RGBA{255, 0, 255, 255})
		}
	}

	gs.drawUI(screen, view)

	if gs.showHitboxes {
		debug := fmt.Sprintf("TPS %.0f  tick %d  pair %s", ebiten.ActualTPS(), view.Tick, gs.race.PairMode())
		ebitenutil.DebugPrintAt(screen, debug, 10, screen.Bounds().Dy()-20)
	}
}

// drawUI draws a panel per player, the race clock and any banner
func (gs *GameplayScreen) drawUI(screen *ebiten.Image, view race.View) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for i, v := range view.Vehicles {
		x := 10.0
		if i == 1 {
			x = w - 190
		}
		gs.drawPlayerPanel(screen, x, 10, v, gs.cars[i].Color)
	}

	clock := fmt.Sprintf("%.2fs", float64(view.Tick)/race.TickRate)
	ui.DrawCenteredText(screen, clock, w/2, 14, 1.5, color.White)

	switch {
	case gs.countdown > 0:
		n := (gs.countdown + race.TickRate - 1) / race.TickRate
		ui.DrawCenteredText(screen, fmt.Sprintf("%d", n), w/2, h/2-40, 8, color.RGBA{255, 80, 80, 255})
	case gs.paused:
		ui.DrawCenteredText(screen, "PAUSED", w/2, h/2-24, 4, color.White)
	case view.State == race.Finished:
		winner := view.Vehicles[view.Winner]
		ui.DrawCenteredText(screen, winner.Name+" WINS!", w/2, h/2-24, 4, color.RGBA{255, 215, 0, 255})
	case view.Tick < race.TickRate:
		ui.DrawCenteredText(screen, "GO!", w/2, h/2-40, 8, color.RGBA{100, 255, 100, 255})
	}
}

// drawPlayerPanel draws name, laps and speedometer for one car
func (gs *GameplayScreen) drawPlayerPanel(screen *ebiten.Image, x, y float64, v race.VehicleView, paint color.Color) {
	const width, height = 180.0, 86.0
	ui.DrawPanel(screen, x, y, width, height, color.RGBA{20, 20, 30, 200}, paint)
	ui.DrawText(screen, v.Name, x+10, y+6, 1, color.White)

	laps := fmt.Sprintf("LAP %d/%d", min(v.Laps+1, v.RequiredLaps), v.RequiredLaps)
	if v.Laps >= v.RequiredLaps {
		laps = "FINISHED"
	}
	ui.DrawText(screen, laps, x+10, y+26, 1, color.RGBA{180, 200, 230, 255})

	mph := v.Speed * MPHPerUnit
	var speedColor color.RGBA
	switch {
	case mph < 50:
		speedColor = color.RGBA{100, 255, 100, 255}
	case mph < 80:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	ui.DrawText(screen, fmt.Sprintf("%3.0f MPH", mph), x+10, y+46, 1.5, speedColor)

	gs.drawSpeedGauge(screen, x+10, y+74, width-20, 6, mph)
}

// drawSpeedGauge draws a horizontal bar filled in proportion to speed
func (gs *GameplayScreen) drawSpeedGauge(screen *ebiten.Image, x, y, width, height, mph float64) {
	ui.FillRect(screen, x, y, width, height, color.RGBA{50, 50, 60, 255})
	fill := min(mph/120, 1) * width
	if fill <= 0 {
		return
	}
	ui.FillRect(screen, x, y, fill, height, color.RGBA{255, 180, 60, 255})
}
