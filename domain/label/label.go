// Package label defines rune class labels and the enumeration they come from.
package label

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Common errors for label lookups and registration.
var (
	ErrUnknownLabel  = errors.New("unknown rune label")
	ErrDuplicateKey  = errors.New("duplicate label key")
	ErrDuplicateName = errors.New("duplicate label name")
	ErrDirCollision  = errors.New("label directory name collides with another label")
	ErrEmptyName     = errors.New("label name is empty")
)

// dirFiller replaces spaces in directory names.
const dirFiller = "_"

// Label is a rune class from the configured enumeration.
type Label struct {
	// Key is the stable index of the label (the classifier's class index)
	Key int

	// Name is the display string, e.g. "Ice Shard"
	Name string
}

// String returns the display name.
func (l Label) String() string {
	return l.Name
}

// DirName returns the dataset directory name for the label.
func (l Label) DirName() string {
	return DirName(l.Name)
}

// DirName maps a label name to its dataset directory name:
// lower-cased, with spaces replaced by underscores.
func DirName(name string) string {
	return strings.ReplaceAll(cases.Lower(language.Und).String(name), " ", dirFiller)
}
