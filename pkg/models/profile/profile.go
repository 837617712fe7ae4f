package profile

import "time"

// Driver is a named racer's running record
type Driver struct {
	Name      string    `gorm:"primaryKey" json:"name"`
	Races     int       `json:"races"`
	Wins      int       `json:"wins"`
	BestTicks int       `json:"best_ticks"` // fastest winning race, 0 if none
	Created   time.Time `json:"created"`
	LastRaced time.Time `json:"last_raced"`
}

// NewDriver creates an empty record
func NewDriver(name string) *Driver {
	return &Driver{
		Name:    name,
		Created: time.Now().UTC(),
	}
}

// RecordRace adds one race to the record
func (d *Driver) RecordRace(won bool, ticks int, at time.Time) {
	d.Races++
	d.LastRaced = at
	if !won {
		return
	}
	d.Wins++
	if d.BestTicks == 0 || ticks < d.BestTicks {
		d.BestTicks = ticks
	}
}

// WinRate returns wins / races, 0 before the first race
func (d *Driver) WinRate() float64 {
	if d.Races == 0 {
		return 0
	}
	return float64(d.Wins) / float64(d.Races)
}
