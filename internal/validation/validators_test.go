package validation

import (
	"testing"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"strips control characters", "he\x00llo\x07", "hello"},
		{"keeps newlines and tabs", "line1\n\tline2", "line1\n\tline2"},
		{"keeps hash tags", "task #work", "task #work"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSnapshotBackendValidator(t *testing.T) {
	t.Parallel()

	type payload struct {
		Backend string `validate:"snapshot_backend"`
	}

	tests := []struct {
		backend string
		valid   bool
	}{
		{"file", true},
		{"redis", true},
		{"postgres", true},
		{"", false},
		{"sqlite", false},
	}

	for _, tt := range tests {
		err := Validate.Struct(payload{Backend: tt.backend})
		if tt.valid && err != nil {
			t.Errorf("backend %q should validate, got %v", tt.backend, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("backend %q should fail validation", tt.backend)
		}
	}
}
