package domain

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every ValidationError via errors.Is.
var ErrValidation = errors.New("validation error")

// MissingFieldsMessage is the inline message shown when required fields are empty.
const MissingFieldsMessage = "Please fill in all required fields"

// ValidationError reports the required TripRequest fields that were left empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "validation error: missing required fields: " + strings.Join(e.Missing, ", ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UserMessage is the text shown on the planner form.
func (e *ValidationError) UserMessage() string {
	return MissingFieldsMessage
}
