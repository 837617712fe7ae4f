package vehicle

// Command is the decoded input for one vehicle for one tick. Values are
// magnitudes in [0, 1] for pedals and degrees per tick for steering.
// Inputs are level-triggered: the caller sends the held state every tick.
type Command struct {
	Accelerate float64
	Brake      float64
	SteerLeft  float64
	SteerRight float64
}

// Apply resets the throttle to neutral and re-applies the held inputs.
// Brake wins when both pedals are held.
func (v *Vehicle) Apply(cmd Command) {
	if v.Finished {
		return
	}
	v.Throttle = 0
	if cmd.Accelerate > 0 {
		v.Accelerate(cmd.Accelerate * v.Thrust)
	}
	if cmd.Brake > 0 {
		v.Decelerate(cmd.Brake * v.Thrust)
	}
	if steer := cmd.SteerRight - cmd.SteerLeft; steer != 0 {
		v.Steer(steer)
	}
}

// HeldCommand builds a full-pedal command from switch inputs such as keys.
// Steering turns steerRate degrees per tick.
func HeldCommand(accelerate, brake, left, right bool, steerRate float64) Command {
	var cmd Command
	if accelerate {
		cmd.Accelerate = 1
	}
	if brake {
		cmd.Brake = 1
	}
	if left {
		cmd.SteerLeft = steerRate
	}
	if right {
		cmd.SteerRight = steerRate
	}
	return cmd
}
