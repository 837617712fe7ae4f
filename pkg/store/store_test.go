package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golangdaddy/duelrace/pkg/config"
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(zerolog.Nop())
	cfg := config.StoreConfig{Driver: "sqlite", SqlitePath: filepath.Join(t.TempDir(), "results.db")}
	require.NoError(t, m.Connect(cfg))
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func result(t *testing.T, winner int, names [2]string, ticks int, at time.Time) *models.RaceResult {
	t.Helper()
	laps := [2][]int{{ticks / 2, ticks}, {ticks / 2}}
	if winner == 1 {
		laps[0], laps[1] = laps[1], laps[0]
	}
	res, err := models.NewRaceResult("oval", winner, names, ticks, laps)
	require.NoError(t, err)
	res.FinishedAt = at
	return res
}

func TestConnectSqliteFile(t *testing.T) {
	m := newManager(t)
	assert.Equal(t, "sqlite", m.Dialect)
	assert.True(t, m.DB.Migrator().HasTable(&models.RaceResult{}))
}

func TestConnectInMemory(t *testing.T) {
	m := NewManager(zerolog.Nop())
	require.NoError(t, m.Connect(config.StoreConfig{Driver: "sqlite"}))
	defer m.Close()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Ann", "Bo"}, 900, base)))

	got, err := m.RecentResults(5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestConnectDisabledAndUnknown(t *testing.T) {
	m := NewManager(zerolog.Nop())
	assert.ErrorIs(t, m.Connect(config.StoreConfig{Driver: "none"}), ErrDisabled)
	assert.Error(t, m.Connect(config.StoreConfig{Driver: "mongo"}))

	_, err := m.RecentResults(1)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, m.SaveResult(&models.RaceResult{}), ErrNotConnected)
	assert.NoError(t, m.Close())
}

func TestSaveResultUpdatesDrivers(t *testing.T) {
	m := newManager(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Ann", "Bo"}, 1200, base)))
	require.NoError(t, m.SaveResult(result(t, 1, [2]string{"Ann", "Bo"}, 1000, base.Add(time.Minute))))
	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Ann", "Cy"}, 900, base.Add(2*time.Minute))))

	ann, err := m.Driver("Ann")
	require.NoError(t, err)
	assert.Equal(t, 3, ann.Races)
	assert.Equal(t, 2, ann.Wins)
	assert.Equal(t, 900, ann.BestTicks)

	bo, err := m.Driver("Bo")
	require.NoError(t, err)
	assert.Equal(t, 2, bo.Races)
	assert.Equal(t, 1, bo.Wins)
	assert.Equal(t, 1000, bo.BestTicks)

	cy, err := m.Driver("Cy")
	require.NoError(t, err)
	assert.Equal(t, 1, cy.Races)
	assert.Equal(t, 0, cy.Wins)
	assert.Equal(t, 0, cy.BestTicks)
	assert.False(t, cy.Created.IsZero())

	_, err = m.Driver("Dee")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestRecentResultsNewestFirst(t *testing.T) {
	m := newManager(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := range 4 {
		require.NoError(t, m.SaveResult(result(t, i%2, [2]string{"Ann", "Bo"}, 1000+i, base.Add(time.Duration(i)*time.Minute))))
	}

	got, err := m.RecentResults(3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1003, got[0].Ticks)
	assert.Equal(t, 1002, got[1].Ticks)
	assert.Equal(t, 1001, got[2].Ticks)
	assert.Equal(t, "Bo", got[0].WinnerName)

	laps, err := got[0].Laps()
	require.NoError(t, err)
	assert.Equal(t, []int{501}, laps[0])
	assert.Equal(t, []int{501, 1003}, laps[1])
}

func TestLeaderboard(t *testing.T) {
	m := newManager(t)
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Ann", "Bo"}, 1000, base)))
	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Cy", "Bo"}, 1000, base.Add(time.Minute))))
	require.NoError(t, m.SaveResult(result(t, 0, [2]string{"Cy", "Ann"}, 1000, base.Add(2*time.Minute))))

	board, err := m.Leaderboard(2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Cy", board[0].Name)
	assert.Equal(t, 2, board[0].Wins)
	assert.Equal(t, "Ann", board[1].Name)
}
