package event

import (
	"errors"
	"image"
	"testing"

	"spellslinger-go/core/state"
)

func TestEvent_Names(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{NewModeChanged(state.ModeUnselected, state.ModeDatasetManual), "ModeChanged"},
		{&CanvasCleared{}, "CanvasCleared"},
		{NewLabelChanged("Fireball", nil), "LabelChanged"},
		{NewSampleSaved("Fireball", 1, "dataset/fireball/1.png"), "SampleSaved"},
		{NewSampleRemoved("Fireball", 2), "SampleRemoved"},
		{NewSaveFailed("Fireball", errors.New("disk full")), "SaveFailed"},
		{NewRuneIdentified("Fireball", 0.9), "RuneIdentified"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.event.EventName(); got != tt.expected {
				t.Errorf("EventName() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLabelEvent_Label(t *testing.T) {
	tests := []struct {
		name     string
		event    LabelEvent
		expected string
	}{
		{"LabelChanged", NewLabelChanged("Fireball", nil), "Fireball"},
		{"SampleSaved", NewSampleSaved("Ice Shard", 3, ""), "Ice Shard"},
		{"SampleRemoved", NewSampleRemoved("Lightning Bolt", 2), "Lightning Bolt"},
		{"SaveFailed", NewSaveFailed("Arcane Shield", nil), "Arcane Shield"},
		{"RuneIdentified", NewRuneIdentified("Healing Light", 0.5), "Healing Light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.Label(); got != tt.expected {
				t.Errorf("Label() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLabelChanged_HasReference(t *testing.T) {
	if NewLabelChanged("Fireball", nil).HasReference() {
		t.Error("HasReference() = true for nil reference")
	}

	ref := image.NewGray(image.Rect(0, 0, 4, 4))
	if !NewLabelChanged("Fireball", ref).HasReference() {
		t.Error("HasReference() = false for non-nil reference")
	}
}

func TestModeChanged_Fields(t *testing.T) {
	e := NewModeChanged(state.ModeDatasetManual, state.ModeDatasetRandom)

	if e.OldMode != state.ModeDatasetManual {
		t.Errorf("OldMode = %v, want DatasetManual", e.OldMode)
	}
	if e.NewMode != state.ModeDatasetRandom {
		t.Errorf("NewMode = %v, want DatasetRandom", e.NewMode)
	}
}

func TestSaveFailed_Error(t *testing.T) {
	cause := errors.New("permission denied")
	e := NewSaveFailed("Fireball", cause)

	if !errors.Is(e.Error, cause) {
		t.Errorf("Error = %v, want %v", e.Error, cause)
	}
}
