package sample

import "testing"

func TestIndex_Next(t *testing.T) {
	tests := []struct {
		name     string
		index    Index
		expected Index
	}{
		{"sentinel starts at reference", NoSamples, ReferenceIndex},
		{"negative treated as sentinel", Index(-3), ReferenceIndex},
		{"reference only", ReferenceIndex, 2},
		{"gap kept", Index(7), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.index.Next(); got != tt.expected {
				t.Errorf("Next() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIndex_SentinelDistinctFromReference(t *testing.T) {
	if NoSamples == ReferenceIndex {
		t.Fatal("NoSamples must differ from ReferenceIndex")
	}
	if NoSamples.HasSamples() {
		t.Error("NoSamples.HasSamples() = true")
	}
	if !ReferenceIndex.HasSamples() {
		t.Error("ReferenceIndex.HasSamples() = false")
	}
	if NoSamples.IsReference() {
		t.Error("NoSamples.IsReference() = true")
	}
	if !ReferenceIndex.IsReference() {
		t.Error("ReferenceIndex.IsReference() = false")
	}
}

func TestIndex_String(t *testing.T) {
	tests := []struct {
		index    Index
		expected string
	}{
		{NoSamples, "none"},
		{ReferenceIndex, "1"},
		{Index(12), "12"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.index.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
