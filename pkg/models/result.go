package models

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gorm.io/datatypes"
)

// RaceResult is the outcome of one finished race
type RaceResult struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Track      string         `json:"track"`
	WinnerSlot int            `json:"winner_slot"`
	WinnerName string         `json:"winner_name"`
	LoserName  string         `json:"loser_name"`
	Ticks      int            `json:"ticks"`
	LapTicks   datatypes.JSON `json:"lap_ticks"` // [2][]int, tick of each completed lap per slot
	FinishedAt time.Time      `gorm:"index" json:"finished_at"`
}

// NewRaceResult builds a result from the race outcome
func NewRaceResult(track string, winnerSlot int, names [2]string, ticks int, lapTicks [2][]int) (*RaceResult, error) {
	laps, err := json.Marshal(lapTicks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lap ticks: %w", err)
	}
	return &RaceResult{
		Track:      track,
		WinnerSlot: winnerSlot,
		WinnerName: names[winnerSlot],
		LoserName:  names[1-winnerSlot],
		Ticks:      ticks,
		LapTicks:   datatypes.JSON(laps),
		FinishedAt: time.Now().UTC(),
	}, nil
}

// Laps decodes the lap tick log
func (r *RaceResult) Laps() ([2][]int, error) {
	var out [2][]int
	if len(r.LapTicks) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(r.LapTicks, &out); err != nil {
		return out, fmt.Errorf("failed to decode lap ticks: %w", err)
	}
	return out, nil
}

// Duration converts the race length to wall time at the given tick rate
func (r *RaceResult) Duration(tickRate int) time.Duration {
	if tickRate <= 0 {
		return 0
	}
	return time.Duration(r.Ticks) * time.Second / time.Duration(tickRate)
}

// SaveToFile saves the result to a JSON file
func (r *RaceResult) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadResultFromFile loads a result from a JSON file
func LoadResultFromFile(filename string) (*RaceResult, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var r RaceResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	return &r, nil
}
