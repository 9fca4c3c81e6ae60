package label

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// ErrNoLabels is returned when a source defines no labels at all.
var ErrNoLabels = errors.New("no labels defined")

// yamlLabelFile is the YAML structure for label enumerations.
type yamlLabelFile struct {
	Labels []yamlLabel `yaml:"labels"`
}

type yamlLabel struct {
	Key  int    `yaml:"key"`
	Name string `yaml:"name"`
}

// Loader handles loading label enumerations from YAML files.
type Loader struct {
	registry *Registry
}

// NewLoader creates a new label loader that populates the given registry.
func NewLoader(registry *Registry) *Loader {
	return &Loader{registry: registry}
}

// LoadFromFS loads every .yaml file in dir of fsys.
func (l *Loader) LoadFromFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read labels directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		if err := l.LoadFile(fsys, path.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	if l.registry.Count() == 0 {
		return ErrNoLabels
	}
	return nil
}

// LoadFile loads a single label enumeration file.
func (l *Loader) LoadFile(fsys fs.FS, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read label file %s: %w", name, err)
	}

	var def yamlLabelFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("failed to parse label file %s: %w", name, err)
	}
	if len(def.Labels) == 0 {
		return fmt.Errorf("label file %s: %w", name, ErrNoLabels)
	}

	for _, yl := range def.Labels {
		if err := l.registry.Register(Label{Key: yl.Key, Name: yl.Name}); err != nil {
			return fmt.Errorf("label file %s: %w", name, err)
		}
	}

	return nil
}
