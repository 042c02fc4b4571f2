package sim

import "fmt"

// RejectCode identifies why a command was refused.
type RejectCode int

const (
	RejectHalted RejectCode = iota + 1
	RejectNotHalted
	RejectLightGreen
	RejectCrossingOccupied
	RejectCrossingClosed
	RejectCrossingDisabled
)

// advisories holds the text shown to the operator for each refusal. Codes
// without an entry are refused silently.
var advisories = map[RejectCode]string{
	RejectLightGreen:       "Pedestrians can only cross on red light",
	RejectCrossingOccupied: "Cannot add pedestrians while vehicles are in crossing",
	RejectCrossingClosed:   "Cannot add pedestrians after timer runs out",
}

// RejectedError is returned when a command's precondition does not hold.
// Nothing in the simulation is mutated when it is returned.
type RejectedError struct {
	Code    RejectCode
	Command Command
}

func (e *RejectedError) Error() string {
	if msg := e.Advisory(); msg != "" {
		return fmt.Sprintf("%s rejected: %s", e.Command, msg)
	}
	return fmt.Sprintf("%s rejected: %s", e.Command, e.reason())
}

// Is matches any RejectedError with the same code, so the sentinels below
// work with errors.Is regardless of the command.
func (e *RejectedError) Is(target error) bool {
	t, ok := target.(*RejectedError)
	return ok && t.Code == e.Code
}

// Advisory returns the operator-facing text, or "" for silent refusals.
func (e *RejectedError) Advisory() string {
	return advisories[e.Code]
}

func (e *RejectedError) reason() string {
	switch e.Code {
	case RejectHalted:
		return "simulation halted after an accident"
	case RejectNotHalted:
		return "simulation still running"
	case RejectCrossingDisabled:
		return "crossing not enabled"
	}
	return "precondition failed"
}

func reject(code RejectCode, cmd Command) *RejectedError {
	return &RejectedError{Code: code, Command: cmd}
}

// Sentinels for errors.Is.
var (
	ErrHalted           = &RejectedError{Code: RejectHalted}
	ErrNotHalted        = &RejectedError{Code: RejectNotHalted}
	ErrLightGreen       = &RejectedError{Code: RejectLightGreen}
	ErrCrossingOccupied = &RejectedError{Code: RejectCrossingOccupied}
	ErrCrossingClosed   = &RejectedError{Code: RejectCrossingClosed}
	ErrCrossingDisabled = &RejectedError{Code: RejectCrossingDisabled}
)
