// Package sample defines persisted rune samples and their sequence numbers.
package sample

import (
	"errors"
	"strconv"

	"spellslinger-go/domain/label"
)

// ErrNoReference is returned when a label has no reference sample on disk.
var ErrNoReference = errors.New("no reference image found")

// Index is the sequence number of a sample within its label directory.
type Index int

const (
	// NoSamples is the sentinel for "no valid samples exist for the label".
	// It is distinct from ReferenceIndex, which means exactly one sample
	// numbered 1 exists at the top.
	NoSamples Index = 0

	// ReferenceIndex is the index of the permanent reference sample.
	ReferenceIndex Index = 1
)

// HasSamples reports whether the index refers to an existing sample.
func (i Index) HasSamples() bool {
	return i > NoSamples
}

// Next returns the index the next saved sample receives.
func (i Index) Next() Index {
	if !i.HasSamples() {
		return ReferenceIndex
	}
	return i + 1
}

// IsReference reports whether the index is the protected reference sample.
func (i Index) IsReference() bool {
	return i == ReferenceIndex
}

// String returns the decimal index, or "none" for the sentinel.
func (i Index) String() string {
	if !i.HasSamples() {
		return "none"
	}
	return strconv.Itoa(int(i))
}

// Sample is one persisted drawing of a label.
type Sample struct {
	Label label.Label
	Index Index
	Path  string
}
