package road

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ovalTrack = `
# comment line
name test oval
world  0 0 800 600
wall   200 180 400 240   # divider
wall   10 10 5 5
finish 0 300 200 12
start  30 320 180 3
start  115 320 180.5 2
`

func TestParseTrack(t *testing.T) {
	track, err := ParseTrack(strings.NewReader(ovalTrack))
	require.NoError(t, err)

	assert.Equal(t, "test oval", track.Name)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, W: 800, H: 600}, track.World)
	require.Len(t, track.Obstacles, 2)
	assert.Equal(t, geom.Rect{X: 200, Y: 180, W: 400, H: 240}, track.Obstacles[0])
	assert.Equal(t, geom.Rect{X: 10, Y: 10, W: 5, H: 5}, track.Obstacles[1])
	assert.Equal(t, geom.Rect{X: 0, Y: 300, W: 200, H: 12}, track.FinishLine)
	assert.Equal(t, StartSlot{Position: geom.Vec2{X: 30, Y: 320}, Heading: 180, RequiredLaps: 3}, track.Starts[0])
	assert.Equal(t, 180.5, track.Starts[1].Heading)
	assert.Equal(t, 2, track.Starts[1].RequiredLaps)
}

func TestParseTrackErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		text  string
	}{
		{"unknown", "world 0 0 10 10\nramp 1 2 3 4", ErrUnknownMarker, "line 2"},
		{"arity", "world 0 0 10", nil, "expects 4 values"},
		{"non numeric", "world 0 0 ten 10", nil, "invalid value 'ten'"},
		{"no world", "finish 0 0 1 1\nstart 1 1 0 1\nstart 1 1 0 1", ErrNoWorld, ""},
		{"no finish", "world 0 0 10 10\nstart 1 1 0 1\nstart 1 1 0 1", ErrNoFinishLine, ""},
		{"one start", "world 0 0 10 10\nfinish 0 0 1 1\nstart 1 1 0 1", ErrStartCount, ""},
		{"three starts", "world 0 0 10 10\nstart 1 1 0 1\nstart 1 1 0 1\nstart 1 1 0 1", ErrStartCount, "line 4"},
		{"start outside", "world 0 0 10 10\nfinish 0 0 1 1\nstart 1 1 0 1\nstart 11 1 0 1", ErrStartOutside, "start 1"},
		{"zero laps", "world 0 0 10 10\nfinish 0 0 1 1\nstart 1 1 0 0\nstart 1 1 0 1", ErrBadLapCount, "start 0"},
		{"empty rect", "world 0 0 0 10", nil, "no area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTrack(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			if tt.text != "" {
				assert.Contains(t, err.Error(), tt.text)
			}
		})
	}
}

func TestLoadTrackFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "speedway.track")
	content := strings.Replace(ovalTrack, "name test oval\n", "", 1)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	track, err := LoadTrackFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "speedway", track.Name)

	_, err = LoadTrackFromFile(filepath.Join(dir, "missing.track"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open track file")
}

func TestBundledTracksMatchDefault(t *testing.T) {
	track, err := LoadTrackFromFile("../../assets/tracks/oval.track")
	require.NoError(t, err)
	assert.Equal(t, DefaultTrack(), track)

	chicane, err := LoadTrackFromFile("../../assets/tracks/chicane.track")
	require.NoError(t, err)
	assert.Len(t, chicane.Obstacles, 3)
	// the outside slot carries the lap handicap
	assert.Less(t, chicane.Starts[0].Position.X, chicane.Starts[1].Position.X)
	assert.Equal(t, 2, chicane.Starts[0].RequiredLaps)
	assert.Equal(t, 3, chicane.Starts[1].RequiredLaps)
}

func TestDefaultTrackIsValid(t *testing.T) {
	track := DefaultTrack()
	require.NoError(t, track.Validate())

	for _, s := range track.Starts {
		box := geom.BoxAt(s.Position, 50, 100)
		assert.True(t, track.World.Contains(box))
		assert.False(t, box.Intersects(track.FinishLine), "grid must not sit on the line")
		for _, o := range track.Obstacles {
			assert.False(t, box.Intersects(o))
		}
	}
}

func TestWithRequiredLaps(t *testing.T) {
	base := DefaultTrack()
	out := base.WithRequiredLaps([]int{5, 0})

	assert.Equal(t, 5, out.Starts[0].RequiredLaps)
	assert.Equal(t, 3, out.Starts[1].RequiredLaps)
	assert.Equal(t, 3, base.Starts[0].RequiredLaps, "original is not modified")

	both := base.WithRequiredLaps([]int{2})
	assert.Equal(t, 2, both.Starts[0].RequiredLaps)
	assert.Equal(t, 2, both.Starts[1].RequiredLaps)

	assert.Equal(t, base.Starts, base.WithRequiredLaps(nil).Starts)
}
