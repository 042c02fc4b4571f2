package sim

// Command is a discrete operator request.
type Command int

const (
	CmdToggleLightMode Command = iota
	CmdRequestPedestrians
	CmdSpawnVehicle
	CmdReset
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdToggleLightMode:
		return "toggle-light-mode"
	case CmdRequestPedestrians:
		return "request-pedestrian-spawn"
	case CmdSpawnVehicle:
		return "spawn-vehicle"
	case CmdReset:
		return "reset"
	case CmdQuit:
		return "quit"
	}
	return "unknown"
}

// Advisory is a transient message with a countdown in ticks.
type Advisory struct {
	Message   string
	Remaining int
}

// Post replaces the current message and restarts the countdown.
func (a *Advisory) Post(msg string, ticks int) {
	a.Message = msg
	a.Remaining = ticks
}

// Countdown consumes one tick of display time.
func (a *Advisory) Countdown() {
	if a.Remaining > 0 {
		a.Remaining--
	}
}

// Active reports whether the message should still be shown.
func (a Advisory) Active() bool {
	return a.Remaining > 0 && a.Message != ""
}
