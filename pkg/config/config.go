package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory
const FileName = "duelrace.cfg.json"

// ErrNoConfigFile is returned by Load when the directory holds no config
// file. Defaults are still in place.
var ErrNoConfigFile = errors.New("no config file found")

// WindowConfig holds the game window settings
type WindowConfig struct {
	Width  int    `json:"width" mapstructure:"width"`
	Height int    `json:"height" mapstructure:"height"`
	Title  string `json:"title" mapstructure:"title"`
}

// RaceConfig holds the race tuning settings
type RaceConfig struct {
	TrackFile    string    `json:"trackFile" mapstructure:"trackFile"`
	RequiredLaps []int     `json:"requiredLaps" mapstructure:"requiredLaps"`
	PairMode     string    `json:"pairMode" mapstructure:"pairMode"`
	SteerRate    float64   `json:"steerRate" mapstructure:"steerRate"`
	Thrust       float64   `json:"thrust" mapstructure:"thrust"`
	Drivers      [2]string `json:"drivers" mapstructure:"drivers"`
}

// StoreConfig holds the result store settings
type StoreConfig struct {
	Driver     string `json:"driver" mapstructure:"driver"`
	SqlitePath string `json:"sqlitePath" mapstructure:"sqlitePath"`
	ExportDir  string `json:"exportDir" mapstructure:"exportDir"`
	Host       string `json:"host" mapstructure:"host"`
	Port       string `json:"port" mapstructure:"port"`
	Username   string `json:"username" mapstructure:"username"`
	Password   string `json:"password" mapstructure:"password"`
	Database   string `json:"database" mapstructure:"database"`
}

// Load reads configuration from the JSON file in configDir and sets
// default values. A missing file yields ErrNoConfigFile.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "")

	viper.SetDefault("window.width", 800)
	viper.SetDefault("window.height", 600)
	viper.SetDefault("window.title", "Roadster Duel")

	viper.SetDefault("track.file", "")
	viper.SetDefault("race.requiredLaps", []int{})
	viper.SetDefault("race.pairMode", "sequential")
	viper.SetDefault("race.steerRate", 3.0)
	viper.SetDefault("race.thrust", 0.0)
	viper.SetDefault("drivers", []string{"Player 1", "Player 2"})

	viper.SetDefault("store.driver", "sqlite")
	viper.SetDefault("store.sqlite.path", "duelrace.db")
	viper.SetDefault("store.exportDir", "")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "duelrace")

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return ErrNoConfigFile
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetWindowConfig returns the window settings
func GetWindowConfig() WindowConfig {
	return WindowConfig{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

// GetRaceConfig returns the race settings. Missing driver names are left
// empty so the race falls back to its own defaults.
func GetRaceConfig() RaceConfig {
	cfg := RaceConfig{
		TrackFile:    viper.GetString("track.file"),
		RequiredLaps: viper.GetIntSlice("race.requiredLaps"),
		PairMode:     viper.GetString("race.pairMode"),
		SteerRate:    viper.GetFloat64("race.steerRate"),
		Thrust:       viper.GetFloat64("race.thrust"),
	}
	for i, name := range viper.GetStringSlice("drivers") {
		if i >= len(cfg.Drivers) {
			break
		}
		cfg.Drivers[i] = name
	}
	return cfg
}

// GetStoreConfig returns the result store settings
func GetStoreConfig() StoreConfig {
	return StoreConfig{
		Driver:     viper.GetString("store.driver"),
		SqlitePath: viper.GetString("store.sqlite.path"),
		ExportDir:  viper.GetString("store.exportDir"),
		Host:       viper.GetString("db.host"),
		Port:       viper.GetString("db.port"),
		Username:   viper.GetString("db.username"),
		Password:   viper.GetString("db.password"),
		Database:   viper.GetString("db.database"),
	}
}
