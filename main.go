package main

import (
	"errors"
	"io"
	"os"

	"github.com/golangdaddy/duelrace/pkg/config"
	"github.com/golangdaddy/duelrace/pkg/game"
	"github.com/golangdaddy/duelrace/pkg/logging"
	"github.com/golangdaddy/duelrace/pkg/race"
	"github.com/golangdaddy/duelrace/pkg/road"
	"github.com/golangdaddy/duelrace/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// configDirEnv overrides the directory searched for the config file
const configDirEnv = "DUELRACE_CONFIG_DIR"

func main() {
	configDir := os.Getenv(configDirEnv)
	if configDir == "" {
		configDir = "."
	}
	cfgErr := config.Load(configDir)

	var logFile io.Writer
	if path := config.GetString("logFile"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			logFile = f
		}
	}
	logger := logging.New(config.GetString("logLevel"), os.Stdout, logFile)

	switch {
	case errors.Is(cfgErr, config.ErrNoConfigFile):
		logger.Info().Str("dir", configDir).Msg("No config file, using defaults")
	case cfgErr != nil:
		logger.Fatal().Err(cfgErr).Msg("Failed to load config")
	}

	raceCfg := config.GetRaceConfig()
	track := road.DefaultTrack()
	if raceCfg.TrackFile != "" {
		loaded, err := road.LoadTrackFromFile(raceCfg.TrackFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", raceCfg.TrackFile).Msg("Failed to load track")
		}
		track = loaded
	}
	logger.Info().Str("track", track.Name).Int("obstacles", len(track.Obstacles)).Msg("Track loaded")

	storeCfg := config.GetStoreConfig()
	results := openStore(storeCfg, logger)
	if results != nil {
		defer results.Close()
	}

	window := config.GetWindowConfig()
	g, err := game.NewGame(game.Options{
		Track:     track,
		Race:      raceCfg,
		Window:    window,
		Store:     results,
		ExportDir: storeCfg.ExportDir,
		Logger:    logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game")
	}

	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetTPS(race.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("Game loop stopped")
	}
}

// openStore connects the result store. Failure is not fatal: the game runs
// without history.
func openStore(cfg config.StoreConfig, logger zerolog.Logger) *store.Manager {
	m := store.NewManager(logger)
	err := m.Connect(cfg)
	if errors.Is(err, store.ErrDisabled) {
		logger.Info().Msg("Result store disabled")
		return nil
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open result store, history disabled")
		return nil
	}
	return m
}
