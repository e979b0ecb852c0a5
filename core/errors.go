package core

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidIndex is returned when an operation targets a catalog
	// position that does not exist.
	ErrInvalidIndex = errors.New("no mood at that position")

	// ErrBuiltinMood is returned when deleting a built-in entry.
	ErrBuiltinMood = errors.New("built-in moods cannot be deleted")
)

// ValidationError reports required add-mood fields that were empty or
// whitespace-only.
type ValidationError struct {
	Fields []string // "Mood", "Description"
}

func (e *ValidationError) Error() string {
	return "missing " + strings.ToLower(strings.Join(e.Fields, " and "))
}

// Message is the user-facing feedback text for the rejection.
func (e *ValidationError) Message() string {
	if len(e.Fields) > 1 {
		return "Please fill in both " + strings.Join(e.Fields, " and ") + "!"
	}
	return "Please fill in " + strings.Join(e.Fields, "") + "!"
}

// ValidateMood checks the required fields of a new custom mood.
func ValidateMood(label, description string) error {
	var missing []string
	if strings.TrimSpace(label) == "" {
		missing = append(missing, "Mood")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "Description")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
