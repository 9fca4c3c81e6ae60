package main

import (
	"os"
	"path/filepath"
	"testing"

	domainlabel "spellslinger-go/domain/label"
)

func TestLoadLabels_Embedded(t *testing.T) {
	reg := domainlabel.NewRegistry()
	if err := loadLabels(reg, ""); err != nil {
		t.Fatalf("loadLabels() error = %v", err)
	}
	if reg.Count() == 0 {
		t.Error("no embedded labels loaded")
	}
}

func TestLoadLabels_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "labels:\n  - key: 0\n    name: Frost Nova\n  - key: 1\n    name: Blink\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reg := domainlabel.NewRegistry()
	if err := loadLabels(reg, path); err != nil {
		t.Fatalf("loadLabels() error = %v", err)
	}
	if got := reg.Names(); len(got) != 2 || got[0] != "Frost Nova" {
		t.Errorf("Names() = %v, want [Frost Nova Blink]", got)
	}
}

func TestLoadLabels_MissingFile(t *testing.T) {
	reg := domainlabel.NewRegistry()
	if err := loadLabels(reg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadLabels() error = nil for missing file")
	}
}
