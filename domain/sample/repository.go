package sample

import (
	"image"

	"spellslinger-go/domain/label"
)

// Repository defines persistence of samples in the directory-per-class layout.
// Implementations must derive indices from storage on every call and never
// cache the last assigned index.
type Repository interface {
	// HighestIndex returns the largest valid sample index for the label,
	// or NoSamples if there is none.
	HighestIndex(l label.Label) (Index, error)

	// Save writes img as the next sample for the label.
	// The returned sample exists durably when err is nil.
	Save(l label.Label, img image.Image) (*Sample, error)

	// Remove deletes the sample with the given index.
	// Removing a sample that does not exist is not an error.
	Remove(l label.Label, idx Index) error

	// Reference loads the reference sample of the label.
	// Returns ErrNoReference if it does not exist.
	Reference(l label.Label) (image.Image, error)

	// Count returns the number of valid samples stored for the label.
	Count(l label.Label) (int, error)
}
