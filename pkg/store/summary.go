package store

import (
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/models/profile"
)

// Summary is a finished race together with the history around it
type Summary struct {
	Result  *models.RaceResult
	History []models.RaceResult // newest first, includes Result once saved
	Leaders []profile.Driver
	Stored  bool // Result made it into the store
}

// HistoryNote explains a missing or incomplete history list, or returns ""
func (s Summary) HistoryNote() string {
	switch {
	case len(s.History) == 0:
		return "(history unavailable)"
	case !s.Stored:
		return "(this race not saved)"
	}
	return ""
}

// Record saves res and loads up to limit recent races and leaders. It works
// on a nil or unconnected manager, and failures are logged rather than
// returned so the caller can always show the result.
func (m *Manager) Record(res *models.RaceResult, limit int) Summary {
	s := Summary{Result: res}
	if m == nil || m.DB == nil {
		return s
	}

	if err := m.SaveResult(res); err != nil {
		m.Logger.Error().Err(err).Msg("Failed to save race result")
	} else {
		s.Stored = true
	}

	var err error
	if s.History, err = m.RecentResults(limit); err != nil {
		m.Logger.Warn().Err(err).Msg("Failed to load race history")
	}
	if s.Leaders, err = m.Leaderboard(limit); err != nil {
		m.Logger.Warn().Err(err).Msg("Failed to load leaderboard")
	}
	return s
}
