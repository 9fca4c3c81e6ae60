// Package dataset stores rune samples in the directory-per-class layout
// consumed by the offline trainer:
//
//	<root>/<label dir>/<index>.png
package dataset

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"spellslinger-go/domain/label"
	"spellslinger-go/domain/sample"
)

// Ext is the file extension of every sample.
const Ext = ".png"

// Store implements sample.Repository on the local filesystem.
// Every call re-scans the label directory; nothing is cached between calls,
// so files added or removed by other tools are picked up immediately.
type Store struct {
	root   string
	logger *slog.Logger
}

// NewStore creates a store rooted at dir. The directory is created lazily.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		root:   dir,
		logger: logger,
	}
}

// Root returns the dataset root directory.
func (s *Store) Root() string {
	return s.root
}

// DirFor returns the storage directory of a label.
func (s *Store) DirFor(l label.Label) string {
	return filepath.Join(s.root, l.DirName())
}

// PathFor returns the file path of a sample.
func (s *Store) PathFor(l label.Label, idx sample.Index) string {
	return filepath.Join(s.DirFor(l), strconv.Itoa(int(idx))+Ext)
}

// HighestIndex returns the largest sample index for the label, or
// sample.NoSamples if the directory is missing or holds no valid samples.
func (s *Store) HighestIndex(l label.Label) (sample.Index, error) {
	highest := sample.NoSamples
	err := s.scan(l, func(idx sample.Index) {
		if idx > highest {
			highest = idx
		}
	})
	return highest, err
}

// Count returns the number of valid samples for the label.
func (s *Store) Count(l label.Label) (int, error) {
	n := 0
	err := s.scan(l, func(sample.Index) { n++ })
	return n, err
}

// scan calls fn for every valid sample file of the label.
func (s *Store) scan(l label.Label, fn func(sample.Index)) error {
	entries, err := os.ReadDir(s.DirFor(l))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read sample directory for %s: %w", l, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if idx, ok := parseIndex(entry.Name()); ok {
			fn(idx)
		}
	}
	return nil
}

// parseIndex accepts "<positive decimal>.png" in the canonical form written by
// PathFor. Zero-padded stems are not samples, since Remove could not address them.
func parseIndex(name string) (sample.Index, bool) {
	stem, ok := strings.CutSuffix(name, Ext)
	if !ok || stem == "" || stem[0] == '0' {
		return sample.NoSamples, false
	}
	for _, r := range stem {
		if r < '0' || r > '9' {
			return sample.NoSamples, false
		}
	}

	n, err := strconv.Atoi(stem)
	if err != nil || n <= 0 {
		return sample.NoSamples, false
	}
	return sample.Index(n), true
}

// Save writes img as the next sample of the label.
// The PNG is written to a temporary file, synced and renamed into place, so a
// nil error means the sample is durable and a failed save leaves nothing behind.
func (s *Store) Save(l label.Label, img image.Image) (*sample.Sample, error) {
	highest, err := s.HighestIndex(l)
	if err != nil {
		return nil, err
	}
	next := highest.Next()

	dir := s.DirFor(l)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sample directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".pending-*"+Ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	path := s.PathFor(l, next)
	if err := os.Rename(tmpName, path); err != nil {
		return nil, fmt.Errorf("failed to commit sample: %w", err)
	}
	committed = true

	s.logger.Debug("Sample saved", "label", l.Name, "index", next, "path", path)
	return &sample.Sample{Label: l, Index: next, Path: path}, nil
}

// Remove deletes a sample. A missing file counts as already removed.
func (s *Store) Remove(l label.Label, idx sample.Index) error {
	path := s.PathFor(l, idx)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Sample already gone", "label", l.Name, "index", idx)
			return nil
		}
		return fmt.Errorf("failed to remove sample: %w", err)
	}

	s.logger.Debug("Sample removed", "label", l.Name, "index", idx, "path", path)
	return nil
}

// Reference loads sample 1 of the label.
func (s *Store) Reference(l label.Label) (image.Image, error) {
	f, err := os.Open(s.PathFor(l, sample.ReferenceIndex))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, sample.ErrNoReference
		}
		return nil, fmt.Errorf("failed to open reference: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode reference: %w", err)
	}
	return img, nil
}

// Ensure Store implements sample.Repository
var _ sample.Repository = (*Store)(nil)
