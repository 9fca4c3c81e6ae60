// Package command defines all commands that can be sent to a capture session.
// Commands represent operator input and are processed by the application layer.
package command

import "spellslinger-go/core/state"

// Command is the base interface for all commands.
// Commands are sent from the presentation layer to the application layer.
type Command interface {
	// CommandName returns the name of the command for logging/debugging
	CommandName() string
}

// ChooseMode answers the startup mode dialogs.
type ChooseMode struct {
	Mode state.Mode
}

func NewChooseMode(mode state.Mode) *ChooseMode {
	return &ChooseMode{Mode: mode}
}

func (c *ChooseMode) CommandName() string {
	return "ChooseMode"
}

// SelectLabel carries the operator's free-text label entry.
type SelectLabel struct {
	Text string
}

func NewSelectLabel(text string) *SelectLabel {
	return &SelectLabel{Text: text}
}

func (c *SelectLabel) CommandName() string {
	return "SelectLabel"
}

// Undo reverses the most recent save of the current run.
type Undo struct{}

func (c *Undo) CommandName() string {
	return "Undo"
}
