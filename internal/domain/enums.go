package domain

import (
	"fmt"
	"strings"
)

// Interest is one of the fixed tags a traveler can select on the planner form.
type Interest string

const (
	InterestAdventure  Interest = "Adventure"
	InterestCulture    Interest = "Culture"
	InterestFood       Interest = "Food"
	InterestNature     Interest = "Nature"
	InterestHistory    Interest = "History"
	InterestRelaxation Interest = "Relaxation"
	InterestShopping   Interest = "Shopping"
	InterestNightlife  Interest = "Nightlife"
)

// InterestOptions lists the selectable interests in display order.
var InterestOptions = []Interest{
	InterestAdventure,
	InterestCulture,
	InterestFood,
	InterestNature,
	InterestHistory,
	InterestRelaxation,
	InterestShopping,
	InterestNightlife,
}

// ParseInterest resolves a tag name case-insensitively.
func ParseInterest(s string) (Interest, error) {
	for _, i := range InterestOptions {
		if strings.EqualFold(string(i), strings.TrimSpace(s)) {
			return i, nil
		}
	}
	return "", fmt.Errorf("unknown interest %q", s)
}

// PlanSource records where a TravelPlan came from.
type PlanSource string

const (
	SourceRemote PlanSource = "remote"
	SourceDemo   PlanSource = "demo"
)
