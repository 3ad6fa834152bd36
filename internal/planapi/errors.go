package planapi

import "errors"

var (
	// ErrUnavailable indicates the planning service could not be reached.
	ErrUnavailable = errors.New("planning service unavailable")
	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("planning request timed out")
	// ErrCanceled indicates the caller abandoned the request.
	ErrCanceled = errors.New("planning request canceled")
	// ErrBadStatus indicates the service answered with a non-2xx status.
	ErrBadStatus = errors.New("planning service returned an error status")
	// ErrInvalidPlan indicates the response body is not a usable travel plan.
	ErrInvalidPlan = errors.New("invalid travel plan response")
	// ErrRequestFailed covers transport failures that are none of the above.
	ErrRequestFailed = errors.New("planning request failed")
)
