package game

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/golangdaddy/duelrace/pkg/background"
	"github.com/golangdaddy/duelrace/pkg/collision"
	"github.com/golangdaddy/duelrace/pkg/config"
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/models/car"
	"github.com/golangdaddy/duelrace/pkg/race"
	"github.com/golangdaddy/duelrace/pkg/road"
	"github.com/golangdaddy/duelrace/pkg/store"
	"github.com/golangdaddy/duelrace/pkg/ui"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// HistorySize is how many past races the results screen lists
const HistorySize = 6

// Options wires the game to its track, settings and result store
type Options struct {
	Track  *road.Track
	Race   config.RaceConfig
	Window config.WindowConfig
	// Store may be nil, results are then kept only in the log
	Store *store.Manager
	// ExportDir receives a JSON copy of every result when not empty
	ExportDir string
	Logger    zerolog.Logger
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	track         *road.Track
	pairMode      collision.PairMode
	backdrop      *ebiten.Image
	cars          [2]*car.Car
	currentScreen Screen
}

// NewGame creates a new game instance on the title screen
func NewGame(opts Options) (*Game, error) {
	if opts.Track == nil {
		opts.Track = road.DefaultTrack()
	}
	pairMode, err := collision.ParsePairMode(opts.Race.PairMode)
	if err != nil {
		return nil, fmt.Errorf("invalid race config: %w", err)
	}
	if opts.Race.SteerRate <= 0 {
		opts.Race.SteerRate = 3
	}

	track := opts.Track.WithRequiredLaps(opts.Race.RequiredLaps)
	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("invalid track %q: %w", track.Name, err)
	}

	g := &Game{
		opts:     opts,
		track:    track,
		pairMode: pairMode,
		cars:     [2]*car.Car{models.CarInventory.ForSlot(0), models.CarInventory.ForSlot(1)},
	}

	gen := background.NewGenerator(opts.Window.Width, opts.Window.Height)
	g.backdrop = ebiten.NewImageFromImage(gen.GenerateTrack(track, trackSeed(track.Name)))

	g.showTitle()
	return g, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.opts.Window.Width, g.opts.Window.Height
}

func (g *Game) showTitle() {
	g.currentScreen = ui.NewTitleScreen(g.track, g.showGarage)
}

func (g *Game) showGarage() {
	g.currentScreen = ui.NewGarageScreen(g.driverNames(), g.cars, func(cars [2]*car.Car) {
		g.cars = cars
		g.startGameplay()
	})
}

// startGameplay puts the chosen cars on the grid of a fresh race
func (g *Game) startGameplay() {
	var specs [2]vehicle.Spec
	for i, c := range g.cars {
		specs[i] = g.tune(c)
	}

	r := race.New(g.track, race.Options{
		PairMode: g.pairMode,
		Names:    g.driverNames(),
		Specs:    specs,
		Logger:   g.opts.Logger,
	})
	g.opts.Logger.Info().
		Str("track", g.track.Name).
		Str("car1", g.cars[0].String()).
		Str("car2", g.cars[1].String()).
		Msg("Race starting")

	g.currentScreen = NewGameplayScreen(r, g.backdrop, g.cars, g.opts.Race.SteerRate, g.finishRace)
}

// tune applies the configured thrust override to a copy of the car
func (g *Game) tune(c *car.Car) *car.Car {
	if g.opts.Race.Thrust <= 0 {
		return c
	}
	out := *c
	out.Power = g.opts.Race.Thrust
	return &out
}

// trackSeed keeps each track's scenery the same between runs
func trackSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}

func (g *Game) driverNames() [2]string {
	return g.opts.Race.Drivers
}

// finishRace records the result and shows the results screen
func (g *Game) finishRace(r *race.Race) {
	res, err := r.Result()
	if err != nil {
		g.opts.Logger.Error().Err(err).Msg("Race ended without a result")
		g.showTitle()
		return
	}

	summary := g.opts.Store.Record(res, HistorySize)

	if g.opts.ExportDir != "" {
		if err := g.export(res); err != nil {
			g.opts.Logger.Error().Err(err).Msg("Failed to export race result")
		}
	}

	g.currentScreen = ui.NewResultsScreen(summary, g.startGameplay, g.showGarage)
}

func (g *Game) export(res *models.RaceResult) error {
	if err := os.MkdirAll(g.opts.ExportDir, 0755); err != nil {
		return err
	}
	name := fmt.Sprintf("%s_%s.json", res.Track, res.FinishedAt.Format("20060102_150405"))
	path := filepath.Join(g.opts.ExportDir, name)
	if err := res.SaveToFile(path); err != nil {
		return err
	}
	g.opts.Logger.Debug().Str("path", path).Msg("Race result exported")
	return nil
}
