package store

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/models/profile"
	"gorm.io/gorm"
)

// SaveResult stores a finished race and updates both drivers' records in
// one transaction.
func (m *Manager) SaveResult(res *models.RaceResult) error {
	if m.DB == nil {
		return ErrNotConnected
	}

	err := m.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
		for _, entry := range []struct {
			name string
			won  bool
		}{
			{res.WinnerName, true},
			{res.LoserName, false},
		} {
			var d profile.Driver
			err := tx.Where(profile.Driver{Name: entry.name}).
				Attrs(*profile.NewDriver(entry.name)).
				FirstOrCreate(&d).Error
			if err != nil {
				return fmt.Errorf("failed to load driver %q: %w", entry.name, err)
			}
			d.RecordRace(entry.won, res.Ticks, res.FinishedAt)
			if err := tx.Save(&d).Error; err != nil {
				return fmt.Errorf("failed to update driver %q: %w", entry.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.Logger.Info().
		Uint("id", res.ID).
		Str("track", res.Track).
		Str("winner", res.WinnerName).
		Int("ticks", res.Ticks).
		Msg("Race result saved")
	return nil
}

// RecentResults returns up to limit results, newest first
func (m *Manager) RecentResults(limit int) ([]models.RaceResult, error) {
	if m.DB == nil {
		return nil, ErrNotConnected
	}
	var out []models.RaceResult
	err := m.DB.Order("finished_at desc").Order("id desc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	return out, nil
}

// Driver returns the record for one driver name
func (m *Manager) Driver(name string) (*profile.Driver, error) {
	if m.DB == nil {
		return nil, ErrNotConnected
	}
	var d profile.Driver
	err := m.DB.Where("name = ?", name).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query driver: %w", err)
	}
	return &d, nil
}

// Leaderboard returns up to limit drivers ordered by wins, then fewest races
func (m *Manager) Leaderboard(limit int) ([]profile.Driver, error) {
	if m.DB == nil {
		return nil, ErrNotConnected
	}
	var out []profile.Driver
	err := m.DB.Order("wins desc").Order("races asc").Order("name asc").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	return out, nil
}
