package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// TravelPlan is the itinerary shown on the result screen. It is either decoded
// from the planning endpoint or synthesized by the demo generator.
type TravelPlan struct {
	Destination    string            `json:"destination"`
	Duration       int               `json:"duration"`
	Overview       Overview          `json:"overview"`
	Attractions    []Attraction      `json:"attractions"`
	Restaurants    []Restaurant      `json:"restaurants"`
	Accommodation  AccommodationList `json:"accommodation"`
	Activities     []DayActivity     `json:"activities"`
	LocalTips      []string          `json:"localTips"`
	Transportation *Transportation   `json:"transportation,omitempty"`
}

type Overview struct {
	TotalCost Cost   `json:"totalCost"`
	Travelers int    `json:"travelers"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Attraction struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	BestTime string `json:"bestTime"`
	Duration Text   `json:"duration,omitempty"`
	Cost     Text   `json:"cost,omitempty"`
}

type Restaurant struct {
	Name       string `json:"name"`
	Cuisine    string `json:"cuisine"`
	PriceRange string `json:"priceRange"`
	Specialty  Text   `json:"specialty,omitempty"`
	MustTry    Text   `json:"mustTry,omitempty"`
	Link       Text   `json:"link,omitempty"`
}

type Accommodation struct {
	Hotel         string   `json:"hotel"`
	PricePerNight Cost     `json:"pricePerNight"`
	Location      Text     `json:"location,omitempty"`
	Amenities     TextList `json:"amenities,omitempty"`
	Description   Text     `json:"description,omitempty"`
	Link          Text     `json:"link,omitempty"`
}

type DayActivity struct {
	Day       int    `json:"day"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// Transportation is optional travel logistics some planning services include.
// It never fails a plan: a value that is not an object is kept as text.
type Transportation struct {
	Flights             *Flights `json:"flights,omitempty"`
	CarRental           Text     `json:"carRental,omitempty"`
	LocalTransportation Text     `json:"localTransportation,omitempty"`
}

func (t *Transportation) UnmarshalJSON(data []byte) error {
	type plain Transportation
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var p plain
		if err := json.Unmarshal(data, &p); err == nil {
			*t = Transportation(p)
			return nil
		}
	}
	var summary Text
	if err := summary.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Transportation{LocalTransportation: summary}
	return nil
}

type Flights struct {
	Outbound Text `json:"outbound,omitempty"`
	Return   Text `json:"return,omitempty"`
}

func (f *Flights) UnmarshalJSON(data []byte) error {
	type plain Flights
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var p plain
		if err := json.Unmarshal(data, &p); err == nil {
			*f = Flights(p)
			return nil
		}
	}
	var summary Text
	if err := summary.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = Flights{Outbound: summary}
	return nil
}

// Cost is free-form money text. Planning services send it either as a JSON
// string ("2500", "$1,200") or as a bare number; both decode to text.
type Cost string

func (c *Cost) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cost(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("cost must be a string or number: %w", err)
		}
		*c = Cost(n.String())
		return nil
	}
}

func (c Cost) String() string { return string(c) }

// AccommodationList accepts either a JSON array of accommodations or a single
// accommodation object, which some planning services return for one hotel.
type AccommodationList []Accommodation

func (l *AccommodationList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var one Accommodation
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = AccommodationList{one}
		return nil
	}
	var many []Accommodation
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// ErrPlanShape is wrapped by every ValidateShape failure.
var ErrPlanShape = errors.New("travel plan shape mismatch")

// ValidateShape checks that every section the result screen renders is present.
// Empty sections are fine; missing (null or absent) ones are not.
func (p *TravelPlan) ValidateShape() error {
	var problems []string
	if strings.TrimSpace(p.Destination) == "" {
		problems = append(problems, "destination is empty")
	}
	if p.Overview.Travelers < 1 {
		problems = append(problems, "overview.travelers must be at least 1")
	}
	if p.Attractions == nil {
		problems = append(problems, "attractions missing")
	}
	if p.Restaurants == nil {
		problems = append(problems, "restaurants missing")
	}
	if p.Accommodation == nil {
		problems = append(problems, "accommodation missing")
	}
	if p.Activities == nil {
		problems = append(problems, "activities missing")
	}
	if p.LocalTips == nil {
		problems = append(problems, "localTips missing")
	}
	for i, a := range p.Attractions {
		if strings.TrimSpace(a.Name) == "" {
			problems = append(problems, fmt.Sprintf("attractions[%d].name is empty", i))
		}
	}
	for i, r := range p.Restaurants {
		if strings.TrimSpace(r.Name) == "" {
			problems = append(problems, fmt.Sprintf("restaurants[%d].name is empty", i))
		}
	}
	for i, a := range p.Accommodation {
		if strings.TrimSpace(a.Hotel) == "" {
			problems = append(problems, fmt.Sprintf("accommodation[%d].hotel is empty", i))
		}
	}
	for i, a := range p.Activities {
		if a.Day < 1 {
			problems = append(problems, fmt.Sprintf("activities[%d].day must be at least 1", i))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrPlanShape, strings.Join(problems, "; "))
	}
	return nil
}
