// Package demo builds the offline itinerary shown when the planning service
// cannot produce one.
package demo

import (
	"slices"

	"github.com/alexanderramin/tripplanner/internal/domain"
)

// Generate builds a TravelPlan from req without any I/O. Only the destination,
// duration and overview reflect the request; every list comes from the fixed
// catalog. The same request always yields an equal plan.
func Generate(req domain.TripRequest) domain.TravelPlan {
	return domain.TravelPlan{
		Destination: req.Destination,
		Duration:    req.Duration(),
		Overview: domain.Overview{
			TotalCost: domain.Cost(domain.CoalesceStr(req.Budget, DefaultTotalCost)),
			Travelers: req.Travelers,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		},
		Attractions:   slices.Clone(catalogAttractions),
		Restaurants:   slices.Clone(catalogRestaurants),
		Accommodation: domain.AccommodationList(slices.Clone(catalogAccommodation)),
		Activities:    slices.Clone(catalogActivities),
		LocalTips:     slices.Clone(catalogTips),
	}
}
