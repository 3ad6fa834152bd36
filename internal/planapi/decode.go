package planapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/tripplanner/internal/domain"
)

// SchemaValidator validates a decoded value.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// utf8BOM is stripped from bodies written by some Windows-hosted services.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeJSON decodes exactly one JSON value of type T from raw.
// Empty bodies and trailing data after the value are rejected.
// If validator is non-nil, the decoded value is validated before return.
func DecodeJSON[T any](raw []byte, validator SchemaValidator[T]) (T, error) {
	var zero T

	raw = bytes.TrimPrefix(bytes.TrimSpace(raw), utf8BOM)
	if len(raw) == 0 {
		return zero, fmt.Errorf("%w: empty body", ErrInvalidPlan)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	var result T
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidPlan)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %w", ErrInvalidPlan, err)
		}
	}
	return result, nil
}

// DecodePlan decodes a planning-service response body into a TravelPlan and
// rejects bodies whose shape the result screen cannot render.
func DecodePlan(raw []byte) (*domain.TravelPlan, error) {
	plan, err := DecodeJSON(raw, func(p domain.TravelPlan) error {
		return p.ValidateShape()
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
