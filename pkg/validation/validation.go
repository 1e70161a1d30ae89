package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxDailyTasks        = 50
)

// timeOfDayPattern matches 24-hour "HH:MM"
var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Error reports a rejected field in a create/update payload
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a field validation error
func Invalid(field, message string) error {
	return &Error{Field: field, Message: message}
}

// Title rejects empty or oversized titles
func Title(field, title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return Invalid(field, "is required")
	}
	if len(trimmed) > MaxTitleLength {
		return Invalid(field, fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	}
	return nil
}

// Description rejects oversized descriptions; nil is fine
func Description(field string, description *string) error {
	if description == nil {
		return nil
	}
	if len(*description) > MaxDescriptionLength {
		return Invalid(field, fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
	}
	return nil
}

// TimeOfDay rejects anything that is not 24-hour "HH:MM"
func TimeOfDay(field, value string) error {
	if !timeOfDayPattern.MatchString(value) {
		return Invalid(field, "must be in HH:MM format")
	}
	return nil
}

// DateRange rejects an end date that is not after the start date
func DateRange(start, end time.Time) error {
	if !end.After(start) {
		return Invalid("end_date", "must be after start_date")
	}
	return nil
}
