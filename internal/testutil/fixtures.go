package testutil

import (
	"github.com/alexanderramin/tripplanner/internal/domain"
)

// Request options
type RequestOption func(*domain.TripRequest)

func WithDestination(d string) RequestOption {
	return func(r *domain.TripRequest) {
		r.Destination = d
	}
}

func WithDates(start, end string) RequestOption {
	return func(r *domain.TripRequest) {
		r.StartDate = start
		r.EndDate = end
	}
}

func WithTravelers(n int) RequestOption {
	return func(r *domain.TripRequest) {
		r.Travelers = n
	}
}

func WithBudget(b string) RequestOption {
	return func(r *domain.TripRequest) {
		r.Budget = b
	}
}

func WithInterests(is ...domain.Interest) RequestOption {
	return func(r *domain.TripRequest) {
		r.Interests = is
	}
}

// NewTestRequest returns a valid request for a short trip, adjusted by opts.
func NewTestRequest(opts ...RequestOption) domain.TripRequest {
	r := domain.TripRequest{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-05",
		Travelers:   2,
		Budget:      "",
		Interests:   []domain.Interest{domain.InterestFood},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Plan options
type PlanOption func(*domain.TravelPlan)

func WithAttractions(names ...string) PlanOption {
	return func(p *domain.TravelPlan) {
		p.Attractions = make([]domain.Attraction, len(names))
		for i, n := range names {
			p.Attractions[i] = domain.Attraction{Name: n, Type: "Landmark", BestTime: "Morning"}
		}
	}
}

func WithRestaurants(names ...string) PlanOption {
	return func(p *domain.TravelPlan) {
		p.Restaurants = make([]domain.Restaurant, len(names))
		for i, n := range names {
			p.Restaurants[i] = domain.Restaurant{Name: n, Cuisine: "Local", PriceRange: "$$"}
		}
	}
}

// WithActivityDays sets one activity per morning entry, numbered from day 1.
func WithActivityDays(mornings ...string) PlanOption {
	return func(p *domain.TravelPlan) {
		p.Activities = make([]domain.DayActivity, len(mornings))
		for i, m := range mornings {
			p.Activities[i] = domain.DayActivity{Day: i + 1, Morning: m, Afternoon: "Walk", Evening: "Dinner"}
		}
	}
}

func WithTips(tips ...string) PlanOption {
	return func(p *domain.TravelPlan) {
		p.LocalTips = tips
	}
}

func WithTransportation(tr *domain.Transportation) PlanOption {
	return func(p *domain.TravelPlan) {
		p.Transportation = tr
	}
}

// NewTestPlan returns a well-formed remote-style plan, adjusted by opts.
func NewTestPlan(destination string, opts ...PlanOption) *domain.TravelPlan {
	p := &domain.TravelPlan{
		Destination: destination,
		Duration:    3,
		Overview: domain.Overview{
			TotalCost: "1800",
			Travelers: 2,
			StartDate: "2024-09-01",
			EndDate:   "2024-09-04",
		},
		Attractions:   []domain.Attraction{{Name: "Old Town", Type: "District", BestTime: "Morning"}},
		Restaurants:   []domain.Restaurant{{Name: "Corner Bistro", Cuisine: "French", PriceRange: "$$"}},
		Accommodation: domain.AccommodationList{{Hotel: "Grand Hotel", PricePerNight: "240"}},
		Activities:    []domain.DayActivity{{Day: 1, Morning: "Museum", Afternoon: "Park", Evening: "Concert"}},
		LocalTips:     []string{"Book ahead"},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
