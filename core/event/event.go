// Package event defines all events that can be published by a capture session.
// Events represent state changes and are consumed by the presentation layer
// and the contribution ledger.
package event

import "spellslinger-go/core/state"

// Event is the base interface for all events.
// Events are published by the application layer and consumed by subscribers.
type Event interface {
	// EventName returns the name of the event for logging/debugging
	EventName() string
}

// LabelEvent is an event that concerns a specific label.
type LabelEvent interface {
	Event
	// Label returns the label display name
	Label() string
}

// baseLabelEvent provides common implementation for label events.
type baseLabelEvent struct {
	label string
}

func (e *baseLabelEvent) Label() string {
	return e.label
}

// ModeChanged is published when the session enters a new mode.
type ModeChanged struct {
	OldMode state.Mode
	NewMode state.Mode
}

func NewModeChanged(oldMode, newMode state.Mode) *ModeChanged {
	return &ModeChanged{OldMode: oldMode, NewMode: newMode}
}

func (e *ModeChanged) EventName() string {
	return "ModeChanged"
}

// CanvasCleared is published when the canvas buffer is reset.
type CanvasCleared struct{}

func (e *CanvasCleared) EventName() string {
	return "CanvasCleared"
}
