package state

import "testing"

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeUnselected, "Unselected"},
		{ModeIdentify, "Identify"},
		{ModeDatasetManual, "DatasetManual"},
		{ModeDatasetRandom, "DatasetRandom"},
		{Mode(99), "Unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.expected {
				t.Errorf("Mode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMode_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Mode
		to       Mode
		expected bool
	}{
		{"Unselected -> Identify", ModeUnselected, ModeIdentify, true},
		{"Unselected -> DatasetManual", ModeUnselected, ModeDatasetManual, true},
		{"Unselected -> DatasetRandom", ModeUnselected, ModeDatasetRandom, true},
		{"Unselected -> Unselected (invalid)", ModeUnselected, ModeUnselected, false},

		{"Identify -> DatasetManual (invalid)", ModeIdentify, ModeDatasetManual, false},
		{"Identify -> Unselected (invalid)", ModeIdentify, ModeUnselected, false},

		{"DatasetManual -> DatasetRandom", ModeDatasetManual, ModeDatasetRandom, true},
		{"DatasetManual -> Identify (invalid)", ModeDatasetManual, ModeIdentify, false},

		{"DatasetRandom -> DatasetManual", ModeDatasetRandom, ModeDatasetManual, true},
		{"DatasetRandom -> Unselected (invalid)", ModeDatasetRandom, ModeUnselected, false},

		{"Unknown -> Identify (invalid)", Mode(42), ModeIdentify, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.expected {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMode_Predicates(t *testing.T) {
	tests := []struct {
		mode     Mode
		terminal bool
		dataset  bool
		random   bool
	}{
		{ModeUnselected, false, false, false},
		{ModeIdentify, true, false, false},
		{ModeDatasetManual, false, true, false},
		{ModeDatasetRandom, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.terminal)
			}
			if got := tt.mode.IsDataset(); got != tt.dataset {
				t.Errorf("IsDataset() = %v, want %v", got, tt.dataset)
			}
			if got := tt.mode.IsRandom(); got != tt.random {
				t.Errorf("IsRandom() = %v, want %v", got, tt.random)
			}
		})
	}
}

func TestTransitionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TransitionError
		expected string
	}{
		{
			"with reason",
			NewTransitionError(ModeIdentify, ModeDatasetManual, "identify is terminal"),
			"invalid mode transition from Identify to DatasetManual: identify is terminal",
		},
		{
			"without reason",
			NewTransitionError(ModeUnselected, ModeUnselected, ""),
			"invalid mode transition from Unselected to Unselected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}
