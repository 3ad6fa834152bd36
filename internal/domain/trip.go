package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for trip dates on the wire.
const DateLayout = "2006-01-02"

// DefaultTravelers is the traveler count a fresh planner form starts with.
const DefaultTravelers = 1

// TripRequest holds the trip parameters submitted for planning.
// Its JSON form is the request body sent to the planning endpoint.
type TripRequest struct {
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Travelers   int        `json:"travelers"`
	Budget      string     `json:"budget"`
	Interests   []Interest `json:"interests"`
}

// NewTripRequest returns an empty request with the default traveler count.
func NewTripRequest() TripRequest {
	return TripRequest{Travelers: DefaultTravelers, Interests: []Interest{}}
}

// Validate checks that destination, start date and end date are present.
// Presence is the only rule; date format and ordering are not enforced here.
func (r TripRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(r.StartDate) == "" {
		missing = append(missing, "startDate")
	}
	if strings.TrimSpace(r.EndDate) == "" {
		missing = append(missing, "endDate")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// HasInterest reports whether i is selected.
func (r TripRequest) HasInterest(i Interest) bool {
	return slices.Contains(r.Interests, i)
}

// ToggleInterest returns a copy of the request with i added when absent or
// removed when present. Selection order is preserved.
func (r TripRequest) ToggleInterest(i Interest) TripRequest {
	out := slices.Clone(r.Interests)
	if idx := slices.Index(out, i); idx >= 0 {
		out = slices.Delete(out, idx, idx+1)
	} else {
		out = append(out, i)
	}
	if out == nil {
		out = []Interest{}
	}
	r.Interests = out
	return r
}

// Duration returns the trip length in days for the request's dates.
func (r TripRequest) Duration() int {
	d, err := TripDays(r.StartDate, r.EndDate)
	if err != nil {
		return 0
	}
	return d
}

// TripDays returns ceil((end - start) in days) for two YYYY-MM-DD dates.
// The result is negative when end precedes start.
func TripDays(start, end string) (int, error) {
	s, err := time.Parse(DateLayout, strings.TrimSpace(start))
	if err != nil {
		return 0, fmt.Errorf("parsing start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, strings.TrimSpace(end))
	if err != nil {
		return 0, fmt.Errorf("parsing end date %q: %w", end, err)
	}
	days := e.Sub(s).Hours() / 24
	return int(math.Ceil(days)), nil
}
