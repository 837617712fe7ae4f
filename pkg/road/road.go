package road

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golangdaddy/duelrace/pkg/geom"
)

var (
	ErrNoWorld       = errors.New("track has no world bounds")
	ErrNoFinishLine  = errors.New("track has no finish line")
	ErrStartCount    = errors.New("track must define exactly two start slots")
	ErrStartOutside  = errors.New("start slot outside world bounds")
	ErrBadLapCount   = errors.New("required laps must be at least 1")
	ErrUnknownMarker = errors.New("unknown directive")
)

// StartSlot is a grid position with the lap threshold for the car placed on it
type StartSlot struct {
	Position     geom.Vec2
	Heading      float64
	RequiredLaps int
}

// Track is the static race environment. It is not modified during a race.
type Track struct {
	Name       string
	World      geom.Rect
	Obstacles  []geom.Rect
	FinishLine geom.Rect
	Starts     [StartSlots]StartSlot
}

// DefaultTrack is an oval around a central divider on an 800x600 world.
// The finish line crosses the left straight; cars start just past it facing
// down, so the first crossing completes a full lap.
func DefaultTrack() *Track {
	return &Track{
		Name:  "oval",
		World: geom.Rect{X: 0, Y: 0, W: 800, H: 600},
		Obstacles: []geom.Rect{
			{X: 200, Y: 180, W: 400, H: 240},
		},
		FinishLine: geom.Rect{X: 0, Y: 300, W: 200, H: 12},
		Starts: [StartSlots]StartSlot{
			{Position: geom.Vec2{X: 30, Y: 320}, Heading: 180, RequiredLaps: 3},
			{Position: geom.Vec2{X: 115, Y: 320}, Heading: 180, RequiredLaps: 3},
		},
	}
}

// LoadTrackFromFile reads a track definition from a .track file
func LoadTrackFromFile(filename string) (*Track, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open track file: %w", err)
	}
	defer file.Close()

	track, err := ParseTrack(file)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", filename, err)
	}
	if track.Name == "" {
		track.Name = strings.TrimSuffix(filename[strings.LastIndexAny(filename, `/\`)+1:], ".track")
	}
	return track, nil
}

// ParseTrack reads the line based track format
func ParseTrack(r io.Reader) (*Track, error) {
	track := &Track{}
	var hasWorld, hasFinish bool
	starts := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		directive := strings.ToLower(fields[0])
		if directive == "name" {
			track.Name = strings.Join(fields[1:], " ")
			continue
		}
		arity, ok := directiveArity[directive]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q", lineNo, ErrUnknownMarker, fields[0])
		}
		if len(fields)-1 != arity {
			return nil, fmt.Errorf("line %d: %s expects %d values, got %d", lineNo, directive, arity, len(fields)-1)
		}

		if directive == DirectiveStart {
			slot, err := parseStart(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if starts >= StartSlots {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrStartCount)
			}
			track.Starts[starts] = slot
			starts++
			continue
		}

		rect, err := parseRect(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		switch directive {
		case DirectiveWorld:
			track.World = rect
			hasWorld = true
		case DirectiveWall:
			track.Obstacles = append(track.Obstacles, rect)
		case DirectiveFinish:
			track.FinishLine = rect
			hasFinish = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading track: %w", err)
	}

	if !hasWorld {
		return nil, ErrNoWorld
	}
	if !hasFinish {
		return nil, ErrNoFinishLine
	}
	if starts != StartSlots {
		return nil, ErrStartCount
	}
	if err := track.Validate(); err != nil {
		return nil, err
	}
	return track, nil
}

// Validate checks that the start grid lies inside the world
func (t *Track) Validate() error {
	for i, s := range t.Starts {
		if s.RequiredLaps < 1 {
			return fmt.Errorf("start %d: %w", i, ErrBadLapCount)
		}
		if s.Position.X < float64(t.World.X) || s.Position.Y < float64(t.World.Y) ||
			s.Position.X >= float64(t.World.Right()) || s.Position.Y >= float64(t.World.Bottom()) {
			return fmt.Errorf("start %d: %w", i, ErrStartOutside)
		}
	}
	return nil
}

// WithRequiredLaps returns a copy of the track with the lap thresholds
// replaced. Entries <= 0 keep the track's own value and a single entry
// applies to both slots.
func (t *Track) WithRequiredLaps(laps []int) *Track {
	out := *t
	out.Obstacles = append([]geom.Rect(nil), t.Obstacles...)
	if len(laps) == 1 {
		laps = []int{laps[0], laps[0]}
	}
	for i := range out.Starts {
		if i < len(laps) && laps[i] > 0 {
			out.Starts[i].RequiredLaps = laps[i]
		}
	}
	return &out
}

func parseRect(values []string) (geom.Rect, error) {
	var n [4]int
	for i, s := range values {
		v, err := strconv.Atoi(s)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("invalid value '%s': %w", s, err)
		}
		n[i] = v
	}
	if n[2] <= 0 || n[3] <= 0 {
		return geom.Rect{}, fmt.Errorf("rect %v has no area", n)
	}
	return geom.Rect{X: n[0], Y: n[1], W: n[2], H: n[3]}, nil
}

func parseStart(values []string) (StartSlot, error) {
	var f [3]float64
	for i, s := range values[:3] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return StartSlot{}, fmt.Errorf("invalid value '%s': %w", s, err)
		}
		f[i] = v
	}
	laps, err := strconv.Atoi(values[3])
	if err != nil {
		return StartSlot{}, fmt.Errorf("invalid lap count '%s': %w", values[3], err)
	}
	return StartSlot{
		Position:     geom.Vec2{X: f[0], Y: f[1]},
		Heading:      f[2],
		RequiredLaps: laps,
	}, nil
}
