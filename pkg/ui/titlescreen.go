package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/duelrace/pkg/road"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TitleScreen is the first screen: game name, track and controls
type TitleScreen struct {
	track          *road.Track
	startTime      time.Time
	onStartPressed func()
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(track *road.Track, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		track:          track,
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	centerX := float64(width) / 2
	centerY := float64(height) / 4

	// pulsing title
	pulse := 1.0 + 0.08*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	DrawCenteredText(screen, "ROADSTER DUEL", centerX, centerY-8, 5*pulse, titleColor)

	sub := color.RGBA{180, 180, 200, 255}
	DrawCenteredText(screen, "Two Cars. One Finish Line.", centerX, centerY+80, 1.5, sub)

	if ts.track != nil {
		laps := ts.track.Starts[0].RequiredLaps
		info := fmt.Sprintf("Track: %s   Laps: %d", ts.track.Name, laps)
		if other := ts.track.Starts[1].RequiredLaps; other != laps {
			info = fmt.Sprintf("Track: %s   Laps: %d / %d", ts.track.Name, laps, other)
		}
		DrawCenteredText(screen, info, centerX, centerY+120, 1.5, sub)
	}

	help := color.RGBA{150, 150, 170, 255}
	DrawCenteredText(screen, "P1: W accelerate  S brake  A/D steer", centerX, centerY+190, 1, help)
	DrawCenteredText(screen, "P2: UP accelerate  DOWN brake  LEFT/RIGHT steer", centerX, centerY+212, 1, help)

	if int(elapsed*2)%2 == 0 {
		DrawCenteredText(screen, "Press ENTER or SPACE to Start", centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// drawDecorativeElements draws two thin rules across the screen
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	FillRect(screen, 0, float64(height)/8, float64(width), 2, lineColor)
	FillRect(screen, 0, float64(height)*7/8, float64(width), 2, lineColor)
}
