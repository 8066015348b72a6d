package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/daylist-app/daylist/internal/snapshot"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Registration only fails for an empty tag name, so a failure here is
	// a programming error
	if err := Validate.RegisterValidation("snapshot_backend", validateSnapshotBackend); err != nil {
		panic(fmt.Sprintf("failed to register snapshot_backend validator: %v", err))
	}
}

// validateSnapshotBackend validates that a string names a known snapshot backend
func validateSnapshotBackend(fl validator.FieldLevel) bool {
	switch snapshot.Backend(fl.Field().String()) {
	case snapshot.BackendFile, snapshot.BackendRedis, snapshot.BackendPostgres:
		return true
	default:
		return false
	}
}

// SanitizeText sanitizes task text by trimming whitespace and removing
// control characters. Newlines and tabs survive so multi-line notes keep
// their shape.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}
	return sanitized.String()
}
