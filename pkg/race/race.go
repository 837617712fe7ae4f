package race

import (
	"github.com/golangdaddy/duelrace/pkg/collision"
	"github.com/golangdaddy/duelrace/pkg/geom"
	"github.com/golangdaddy/duelrace/pkg/models"
	"github.com/golangdaddy/duelrace/pkg/road"
	"github.com/golangdaddy/duelrace/pkg/vehicle"
	"github.com/rs/zerolog"
)

const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60
	// TickDT is the simulated time per Step
	TickDT = 1.0 / TickRate

	// NoWinner is the winner slot while the race is running
	NoWinner = -1
)

// State is the race progress state
type State int

const (
	Racing State = iota
	Finished
)

func (s State) String() string {
	if s == Finished {
		return "finished"
	}
	return "racing"
}

// Options tune a race beyond what the track defines
type Options struct {
	PairMode collision.PairMode
	Names    [2]string
	Specs    [2]vehicle.Spec
	Logger   zerolog.Logger

	// OnLap is called after a vehicle completes a lap
	OnLap func(v *vehicle.Vehicle, tick int)
	// OnFinish is called once when the race ends
	OnFinish func(winner *vehicle.Vehicle, tick int)
}

// Race owns two vehicles on a track and advances them one tick at a time.
// It is not safe for concurrent use.
type Race struct {
	Track    *road.Track
	Vehicles [2]*vehicle.Vehicle
	Logger   zerolog.Logger

	state    State
	winner   int
	tick     int
	pairMode collision.PairMode

	onLine   [2]bool
	lapTicks [2][]int

	onLap    func(v *vehicle.Vehicle, tick int)
	onFinish func(winner *vehicle.Vehicle, tick int)
}

// New places both vehicles on the track's start slots
func New(track *road.Track, opts Options) *Race {
	r := &Race{
		Track:    track,
		Logger:   opts.Logger,
		state:    Racing,
		winner:   NoWinner,
		pairMode: opts.PairMode,
		onLap:    opts.OnLap,
		onFinish: opts.OnFinish,
	}
	for i, slot := range track.Starts {
		name := opts.Names[i]
		if name == "" {
			name = defaultName(i)
		}
		v := vehicle.New(i, name, opts.Specs[i], slot.Position, slot.Heading, slot.RequiredLaps)
		r.Vehicles[i] = v
		// a car placed on the line has not crossed it
		r.onLine[i] = v.Box().Intersects(track.FinishLine)
	}
	r.Logger.Debug().
		Str("track", track.Name).
		Int("lapsP1", r.Vehicles[0].RequiredLaps).
		Int("lapsP2", r.Vehicles[1].RequiredLaps).
		Str("pairMode", r.pairMode.String()).
		Msg("Race created")
	return r
}

func defaultName(slot int) string {
	return [2]string{"Player 1", "Player 2"}[slot]
}

// State returns the current race state
func (r *Race) State() State {
	return r.state
}

// Winner returns the winning vehicle, or nil while racing
func (r *Race) Winner() *vehicle.Vehicle {
	if r.winner == NoWinner {
		return nil
	}
	return r.Vehicles[r.winner]
}

// Tick returns the number of simulated ticks so far
func (r *Race) Tick() int {
	return r.tick
}

// PairMode returns the vehicle contact mode in use
func (r *Race) PairMode() collision.PairMode {
	return r.pairMode
}

// LapTicks returns the tick at which each lap was completed, per slot
func (r *Race) LapTicks() [2][]int {
	return [2][]int{
		append([]int(nil), r.lapTicks[0]...),
		append([]int(nil), r.lapTicks[1]...),
	}
}

// Step advances the race by one tick using the held commands for each
// vehicle. Order: command intake, integration, world bounds, obstacles,
// vehicle contact, lap and finish evaluation. A finished race does not move.
func (r *Race) Step(cmds [2]vehicle.Command) {
	if r.state == Finished {
		return
	}
	r.tick++

	for i, v := range r.Vehicles {
		v.Apply(cmds[i])
	}
	for _, v := range r.Vehicles {
		v.Advance(TickDT)
	}
	for _, v := range r.Vehicles {
		if hit := collision.ResolveWorldBounds(v, r.Track.World); hit != collision.SideNone {
			r.Logger.Trace().Int("car", v.ID).Stringer("edge", hit).Msg("World edge bounce")
		}
		for _, c := range collision.ResolveObstacles(v, r.Track.Obstacles) {
			r.Logger.Trace().Int("car", v.ID).Int("obstacle", c.Index).Stringer("sides", c.Sides).Msg("Obstacle contact")
		}
	}
	if collision.Resolve(r.Vehicles[0], r.Vehicles[1], r.pairMode) {
		r.Logger.Trace().Int("tick", r.tick).Msg("Car contact")
	}

	r.evaluate()
}

// evaluate counts finish line crossings and ends the race when a vehicle
// reaches its lap threshold. A crossing counts on the tick the box first
// overlaps the line, never again until it has left the line.
func (r *Race) evaluate() {
	for i, v := range r.Vehicles {
		inside := v.Box().Intersects(r.Track.FinishLine)
		entered := inside && !r.onLine[i]
		r.onLine[i] = inside

		if !entered || v.Laps >= v.RequiredLaps {
			continue
		}
		v.Laps++
		r.lapTicks[i] = append(r.lapTicks[i], r.tick)
		r.Logger.Info().
			Str("driver", v.Name).
			Int("lap", v.Laps).
			Int("of", v.RequiredLaps).
			Int("tick", r.tick).
			Msg("Lap completed")
		if r.onLap != nil {
			r.onLap(v, r.tick)
		}
	}

	for i, v := range r.Vehicles {
		if v.Laps >= v.RequiredLaps {
			r.finish(i)
			return
		}
	}
}

func (r *Race) finish(winner int) {
	r.state = Finished
	r.winner = winner
	for _, v := range r.Vehicles {
		v.Freeze()
	}
	w := r.Vehicles[winner]
	r.Logger.Info().
		Str("winner", w.Name).
		Int("slot", winner).
		Int("tick", r.tick).
		Msg("Race finished")
	if r.onFinish != nil {
		r.onFinish(w, r.tick)
	}
}

// VehicleView is what the presentation layer needs to draw one car
type VehicleView struct {
	ID           int
	Name         string
	Box          geom.Rect
	Heading      float64
	Speed        float64
	Laps         int
	RequiredLaps int
	Finished     bool
}

// View is a read-only snapshot of the race for rendering
type View struct {
	State    State
	Winner   int
	Tick     int
	Vehicles [2]VehicleView
}

// View returns the current render snapshot
func (r *Race) View() View {
	out := View{State: r.state, Winner: r.winner, Tick: r.tick}
	for i, v := range r.Vehicles {
		out.Vehicles[i] = VehicleView{
			ID:           v.ID,
			Name:         v.Name,
			Box:          v.Box(),
			Heading:      v.Heading,
			Speed:        v.Speed(),
			Laps:         v.Laps,
			RequiredLaps: v.RequiredLaps,
			Finished:     v.Finished,
		}
	}
	return out
}

// Result builds the persisted record of a finished race
func (r *Race) Result() (*models.RaceResult, error) {
	if r.state != Finished {
		return nil, ErrNotFinished
	}
	names := [2]string{r.Vehicles[0].Name, r.Vehicles[1].Name}
	return models.NewRaceResult(r.Track.Name, r.winner, names, r.tick, r.LapTicks())
}
