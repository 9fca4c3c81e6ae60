package label

import (
	"errors"
	"testing"
	"testing/fstest"
)

const spellsYAML = `
labels:
  - key: 1
    name: Ice Shard
  - key: 0
    name: Fireball
`

func TestLoader_LoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"labels/spells.yaml": {Data: []byte(spellsYAML)},
		"labels/README.md":   {Data: []byte("ignored")},
	}

	registry := NewRegistry()
	if err := NewLoader(registry).LoadFromFS(fsys, "labels"); err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	if registry.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", registry.Count())
	}
	if registry.At(0).Name != "Fireball" {
		t.Errorf("At(0) = %q, want Fireball", registry.At(0).Name)
	}
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr error
	}{
		{
			name:    "missing directory",
			fsys:    fstest.MapFS{},
			wantErr: nil,
		},
		{
			name:    "empty enumeration",
			fsys:    fstest.MapFS{"labels/empty.yaml": {Data: []byte("labels: []\n")}},
			wantErr: ErrNoLabels,
		},
		{
			name: "colliding directories",
			fsys: fstest.MapFS{"labels/bad.yaml": {Data: []byte(
				"labels:\n  - {key: 0, name: Fire Ball}\n  - {key: 1, name: fire_ball}\n")}},
			wantErr: ErrDirCollision,
		},
		{
			name:    "invalid yaml",
			fsys:    fstest.MapFS{"labels/bad.yaml": {Data: []byte("labels: [unterminated")}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLoader(NewRegistry()).LoadFromFS(tt.fsys, "labels")
			if err == nil {
				t.Fatal("LoadFromFS() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadFromFS() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoader_NoYAMLFiles(t *testing.T) {
	fsys := fstest.MapFS{"labels/notes.txt": {Data: []byte("x")}}

	err := NewLoader(NewRegistry()).LoadFromFS(fsys, "labels")
	if !errors.Is(err, ErrNoLabels) {
		t.Errorf("LoadFromFS() error = %v, want ErrNoLabels", err)
	}
}
