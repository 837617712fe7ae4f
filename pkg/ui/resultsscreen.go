package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/race"
	"github.com/golangdaddy/duelrace/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultsScreen shows the winner and lets the players race again
type ResultsScreen struct {
	data           store.Summary
	selectedOption int // 0 = rematch, 1 = garage
	onRematch      func()
	onGarage       func()
}

// NewResultsScreen creates the post-race screen
func NewResultsScreen(data store.Summary, onRematch, onGarage func()) *ResultsScreen {
	return &ResultsScreen{
		data:      data,
		onRematch: onRematch,
		onGarage:  onGarage,
	}
}

// Update handles menu navigation
func (rs *ResultsScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		rs.selectedOption = 1 - rs.selectedOption
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if rs.selectedOption == 0 && rs.onRematch != nil {
			rs.onRematch()
		}
		if rs.selectedOption == 1 && rs.onGarage != nil {
			rs.onGarage()
		}
	}
	return nil
}

// Draw renders the results
func (rs *ResultsScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})
	centerX := float64(width) / 2

	gold := color.RGBA{255, 200, 50, 255}
	fg := color.RGBA{210, 210, 220, 255}
	dim := color.RGBA{150, 150, 160, 255}

	res := rs.data.Result
	if res != nil {
		DrawCenteredText(screen, strings.ToUpper(res.WinnerName)+" WINS", centerX, 40, 4, gold)
		DrawCenteredText(screen, fmt.Sprintf("%s in %s", res.Track, formatDuration(res.Duration(race.TickRate))), centerX, 110, 1.5, fg)
		rs.drawSplits(screen, res, centerX, 150)
	}

	left := 40.0
	top := 250.0
	DrawText(screen, "RECENT RACES", left, top, 1.5, gold)
	for i, r := range rs.data.History {
		if i == 6 {
			break
		}
		line := fmt.Sprintf("%-10s beat %-10s %8s  %s", r.WinnerName, r.LoserName, formatDuration(r.Duration(race.TickRate)), r.Track)
		DrawText(screen, line, left, top+34+float64(i)*22, 1, fg)
	}

	right := float64(width)/2 + 60
	DrawText(screen, "LEADERBOARD", right, top, 1.5, gold)
	for i, d := range rs.data.Leaders {
		line := fmt.Sprintf("%d. %-10s %2d/%-2d wins  %3.0f%%", i+1, d.Name, d.Wins, d.Races, d.WinRate()*100)
		DrawText(screen, line, right, top+34+float64(i)*22, 1, fg)
	}
	if note := rs.data.HistoryNote(); note != "" {
		DrawText(screen, note, left+220, top+4, 1, dim)
	}

	buttonY := float64(height) - 130
	DrawButton(screen, "REMATCH", centerX, buttonY, rs.selectedOption == 0)
	DrawButton(screen, "GARAGE", centerX, buttonY+50, rs.selectedOption == 1)
	DrawCenteredText(screen, "Arrow Keys: Navigate | Enter: Select", centerX, float64(height)-30, 1, dim)
}

func (rs *ResultsScreen) drawSplits(screen *ebiten.Image, res *models.RaceResult, cx, y float64) {
	laps, err := res.Laps()
	if err != nil {
		return
	}
	names := [2]string{res.WinnerName, res.LoserName}
	if res.WinnerSlot == 1 {
		names = [2]string{res.LoserName, res.WinnerName}
	}
	for slot, ticks := range laps {
		parts := make([]string, 0, len(ticks))
		for _, t := range ticks {
			parts = append(parts, formatDuration(time.Duration(t)*time.Second/race.TickRate))
		}
		if len(parts) == 0 {
			parts = append(parts, "no laps")
		}
		line := fmt.Sprintf("%s: %s", names[slot], strings.Join(parts, "  "))
		DrawCenteredText(screen, line, cx, y+float64(slot)*24, 1, color.RGBA{180, 200, 230, 255})
	}
}

// formatDuration renders a race time as m:ss.cc
func formatDuration(d time.Duration) string {
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}
