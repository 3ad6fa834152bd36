package demo

import "github.com/alexanderramin/tripplanner/internal/domain"

// DefaultTotalCost is the overview cost used when the request has no budget.
const DefaultTotalCost = "2500"

// The demo catalog is the same for every destination and interest set.
var (
	catalogAttractions = []domain.Attraction{
		{Name: "Golden Gate Bridge", Type: "Landmark", BestTime: "Morning"},
		{Name: "Alcatraz Island", Type: "Historical", BestTime: "Afternoon"},
	}

	catalogRestaurants = []domain.Restaurant{
		{Name: "Tartine Bakery", Cuisine: "Bakery", PriceRange: "$$"},
		{Name: "Zuni Café", Cuisine: "Mediterranean", PriceRange: "$$$"},
	}

	catalogAccommodation = []domain.Accommodation{
		{Hotel: "Marriott Downtown", PricePerNight: "189"},
	}

	catalogActivities = []domain.DayActivity{
		{Day: 1, Morning: "Bridge", Afternoon: "Wharf", Evening: "Dinner"},
		{Day: 2, Morning: "Alcatraz", Afternoon: "Chinatown", Evening: "Sunset"},
	}

	catalogTips = []string{
		"Dress in layers",
		"Use public transport",
	}
)
