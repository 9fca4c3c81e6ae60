package event

import "image"

// LabelChanged is published when the active label changes or its reference is reloaded.
type LabelChanged struct {
	baseLabelEvent
	Reference image.Image // nil if the label has no reference sample yet
}

func NewLabelChanged(label string, reference image.Image) *LabelChanged {
	return &LabelChanged{
		baseLabelEvent: baseLabelEvent{label: label},
		Reference:      reference,
	}
}

func (e *LabelChanged) EventName() string {
	return "LabelChanged"
}

// HasReference reports whether a reference image was found.
func (e *LabelChanged) HasReference() bool {
	return e.Reference != nil
}

// SampleSaved is published after a sample file was durably written.
type SampleSaved struct {
	baseLabelEvent
	Index int
	Path  string
}

func NewSampleSaved(label string, index int, path string) *SampleSaved {
	return &SampleSaved{
		baseLabelEvent: baseLabelEvent{label: label},
		Index:          index,
		Path:           path,
	}
}

func (e *SampleSaved) EventName() string {
	return "SampleSaved"
}

// SampleRemoved is published after undo deleted a sample.
// The operator is expected to redraw the label.
type SampleRemoved struct {
	baseLabelEvent
	Index int
}

func NewSampleRemoved(label string, index int) *SampleRemoved {
	return &SampleRemoved{
		baseLabelEvent: baseLabelEvent{label: label},
		Index:          index,
	}
}

func (e *SampleRemoved) EventName() string {
	return "SampleRemoved"
}

// SaveFailed is published when a sample could not be written.
type SaveFailed struct {
	baseLabelEvent
	Error error
}

func NewSaveFailed(label string, err error) *SaveFailed {
	return &SaveFailed{
		baseLabelEvent: baseLabelEvent{label: label},
		Error:          err,
	}
}

func (e *SaveFailed) EventName() string {
	return "SaveFailed"
}

// RuneIdentified is published when identify mode classified a drawing.
type RuneIdentified struct {
	baseLabelEvent
	Confidence float64
}

func NewRuneIdentified(label string, confidence float64) *RuneIdentified {
	return &RuneIdentified{
		baseLabelEvent: baseLabelEvent{label: label},
		Confidence:     confidence,
	}
}

func (e *RuneIdentified) EventName() string {
	return "RuneIdentified"
}
