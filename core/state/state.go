// Package state defines the capture mode state machine.
package state

import "fmt"

// Mode represents the operating mode of a capture session.
type Mode int

const (
	// ModeUnselected is the initial mode before the operator has chosen one.
	ModeUnselected Mode = iota
	// ModeIdentify draws runes for classification instead of saving them.
	ModeIdentify
	// ModeDatasetManual saves samples for a label the operator picks.
	ModeDatasetManual
	// ModeDatasetRandom saves samples for a label picked at random after every save.
	ModeDatasetRandom
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnselected:
		return "Unselected"
	case ModeIdentify:
		return "Identify"
	case ModeDatasetManual:
		return "DatasetManual"
	case ModeDatasetRandom:
		return "DatasetRandom"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// validTransitions defines the allowed mode transitions.
// Key is the current mode, value is a list of valid target modes.
var validTransitions = map[Mode][]Mode{
	ModeUnselected:    {ModeIdentify, ModeDatasetManual, ModeDatasetRandom},
	ModeIdentify:      {}, // Terminal for the rest of the run
	ModeDatasetManual: {ModeDatasetRandom},
	ModeDatasetRandom: {ModeDatasetManual},
}

// CanTransitionTo checks if switching from the current mode to the target mode is valid.
func (m Mode) CanTransitionTo(target Mode) bool {
	allowed, ok := validTransitions[m]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further mode changes are allowed.
func (m Mode) IsTerminal() bool {
	return m == ModeIdentify
}

// IsDataset returns true for both dataset contribution modes.
func (m Mode) IsDataset() bool {
	return m == ModeDatasetManual || m == ModeDatasetRandom
}

// IsRandom returns true if labels rotate automatically after each save.
func (m Mode) IsRandom() bool {
	return m == ModeDatasetRandom
}

// TransitionError represents an invalid mode transition attempt.
type TransitionError struct {
	From   Mode
	To     Mode
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid mode transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid mode transition from %s to %s", e.From, e.To)
}

// NewTransitionError creates a new TransitionError.
func NewTransitionError(from, to Mode, reason string) *TransitionError {
	return &TransitionError{From: from, To: to, Reason: reason}
}
