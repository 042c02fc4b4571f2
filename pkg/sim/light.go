package sim

// LightState is the colour currently shown to vehicles.
type LightState int

const (
	Green LightState = iota
	Red
)

func (s LightState) String() string {
	switch s {
	case Green:
		return "green"
	case Red:
		return "red"
	}
	return "unknown"
}

// Flip returns the opposite state.
func (s LightState) Flip() LightState {
	if s == Red {
		return Green
	}
	return Red
}

// LightStep describes what a single Advance call did.
type LightStep int

const (
	StepNone LightStep = iota
	StepFlipped
	StepHoldStarted // the red phase expired but pedestrians are still crossing
	StepHeld        // the hold from an earlier tick is still in effect
)

// LightController is the timed red/green state machine. In automatic mode a
// tick counter drives the changes; in manual mode the operator flips the
// light directly and the counter is frozen.
type LightController struct {
	State           LightState
	Timer           int
	Cycle           int
	Manual          bool
	Held            bool // red phase expired, waiting for the crossing to clear
	CrossingEnabled bool // pedestrians were allowed onto the crossing this red phase
}

// NewLightController starts green in automatic mode.
func NewLightController(cycle int) *LightController {
	return &LightController{
		State: Green,
		Cycle: cycle,
	}
}

// Advance runs the controller for one tick. pedestriansPresent reports
// whether anyone is still on the crossing; a red phase is never ended while
// it is true. On StepFlipped the caller must also clear the pedestrians.
func (lc *LightController) Advance(pedestriansPresent bool) LightStep {
	if lc.Manual {
		return StepNone
	}
	if !lc.Held {
		lc.Timer++
	}
	if lc.Timer < lc.Cycle {
		return StepNone
	}

	if lc.State == Red && pedestriansPresent {
		if lc.Held {
			return StepHeld
		}
		lc.Held = true
		return StepHoldStarted
	}

	lc.flip()
	return StepFlipped
}

// flip changes the colour and starts a fresh phase.
func (lc *LightController) flip() {
	lc.Held = false
	lc.State = lc.State.Flip()
	lc.Timer = 0
	lc.CrossingEnabled = false
}

// ToggleMode switches between automatic and manual operation. Entering
// manual mode flips the light at once; returning to automatic leaves it as
// is. It reports whether the light changed.
func (lc *LightController) ToggleMode() bool {
	lc.Manual = !lc.Manual
	if lc.Manual {
		lc.State = lc.State.Flip()
		return true
	}
	return false
}

// CanPermitCrossing reports whether pedestrians may still be let onto the
// crossing in the current phase.
func (lc *LightController) CanPermitCrossing() bool {
	return lc.Timer < lc.Cycle
}

// SecondsToSwitch is the whole number of seconds left in the current phase.
func (lc *LightController) SecondsToSwitch() int {
	left := lc.Cycle - lc.Timer
	if left < 0 {
		return 0
	}
	return left / TicksPerSecond
}

// Reset returns the controller to green, automatic, with a fresh timer.
func (lc *LightController) Reset() {
	lc.State = Green
	lc.Timer = 0
	lc.Manual = false
	lc.Held = false
	lc.CrossingEnabled = false
}
