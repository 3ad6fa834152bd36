package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tripplanner/internal/domain"
)

// MissingPlanMessage is shown when the result screen has nothing to render.
const MissingPlanMessage = "No travel plan found."

// PlanOptions tweak how a plan is rendered.
type PlanOptions struct {
	// Source adds a badge under the title when set.
	Source domain.PlanSource
	// Interests are echoed in the overview when non-empty.
	Interests []domain.Interest
}

// FormatTravelPlan renders a travel plan with one entry per attraction,
// restaurant, accommodation, activity and tip, in input order.
func FormatTravelPlan(plan *domain.TravelPlan, opts PlanOptions) string {
	if plan == nil {
		return FormatMissingPlan()
	}

	var sections []string
	sections = append(sections, formatOverview(plan, opts))

	if len(plan.Attractions) > 0 {
		sections = append(sections, formatAttractions(plan.Attractions))
	}
	if len(plan.Restaurants) > 0 {
		sections = append(sections, formatRestaurants(plan.Restaurants))
	}
	if len(plan.Accommodation) > 0 {
		sections = append(sections, formatAccommodation(plan.Accommodation))
	}
	if len(plan.Activities) > 0 {
		sections = append(sections, formatActivities(plan.Activities))
	}
	if plan.Transportation != nil {
		if s := formatTransportation(plan.Transportation); s != "" {
			sections = append(sections, s)
		}
	}
	if len(plan.LocalTips) > 0 {
		sections = append(sections, formatTips(plan.LocalTips))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// FormatMissingPlan renders the placeholder shown when no plan was handed over.
func FormatMissingPlan() string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(MissingPlanMessage) + "\n\n")
	b.WriteString(Dim("Plan a trip first. Press enter or esc to go back to the planner.") + "\n")
	return RenderBox("Travel Plan", b.String())
}

func formatOverview(plan *domain.TravelPlan, opts PlanOptions) string {
	var b strings.Builder
	title := StyleHeader.Render(fmt.Sprintf("Your Trip to %s", plan.Destination))
	b.WriteString(title)
	if opts.Source != "" {
		b.WriteString("  " + SourceBadge(opts.Source))
	}
	b.WriteString("\n\n")

	ov := plan.Overview
	rows := [][]string{
		{"Dates", DateRange(ov.StartDate, ov.EndDate)},
		{"Duration", FormatDays(plan.Duration)},
		{"Travelers", fmt.Sprintf("%d", ov.Travelers)},
		{"Total cost", FormatMoney(ov.TotalCost.String())},
	}
	if len(opts.Interests) > 0 {
		tags := make([]string, len(opts.Interests))
		for i, in := range opts.Interests {
			tags[i] = InterestTag(in)
		}
		rows = append(rows, []string{"Interests", strings.Join(tags, " ")})
	}
	for _, r := range rows {
		b.WriteString(Dim(fmt.Sprintf("%-12s", r[0])) + r[1] + "\n")
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func formatAttractions(items []domain.Attraction) string {
	var b strings.Builder
	b.WriteString(Header("Attractions") + "\n")
	for i, a := range items {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%d.", i+1)), Bold(a.Name)))
		var meta []string
		if a.Type != "" {
			meta = append(meta, a.Type)
		}
		if a.BestTime != "" {
			meta = append(meta, "best: "+a.BestTime)
		}
		if a.Duration != "" {
			meta = append(meta, a.Duration.String())
		}
		if a.Cost != "" {
			meta = append(meta, FormatMoney(a.Cost.String()))
		}
		if len(meta) > 0 {
			b.WriteString("   " + Dim(strings.Join(meta, " · ")) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRestaurants(items []domain.Restaurant) string {
	cols := []Column{{Title: "NAME", Max: 32}, {Title: "CUISINE", Max: 20}, {Title: "PRICE"}}
	rows := make([][]string, 0, len(items))
	var notes []string
	for _, r := range items {
		rows = append(rows, []string{Bold(r.Name), r.Cuisine, StyleGreen.Render(r.PriceRange)})
		if r.MustTry != "" {
			notes = append(notes, fmt.Sprintf("%s: try the %s", r.Name, r.MustTry))
		} else if r.Specialty != "" {
			notes = append(notes, fmt.Sprintf("%s: known for %s", r.Name, r.Specialty))
		}
	}
	out := Header("Restaurants") + "\n" + RenderTable(cols, rows)
	for _, n := range notes {
		out += Dim("  "+n) + "\n"
	}
	return strings.TrimRight(out, "\n")
}

func formatAccommodation(items domain.AccommodationList) string {
	var b strings.Builder
	b.WriteString(Header("Accommodation") + "\n")
	for _, a := range items {
		b.WriteString(fmt.Sprintf("%s  %s\n", Bold(a.Hotel), StyleGreen.Render(FormatNightly(a.PricePerNight.String()))))
		if a.Location != "" {
			b.WriteString("   " + Dim(a.Location.String()) + "\n")
		}
		if a.Description != "" {
			b.WriteString("   " + a.Description.String() + "\n")
		}
		if len(a.Amenities) > 0 {
			b.WriteString("   " + Dim(strings.Join(a.Amenities.Strings(), ", ")) + "\n")
		}
		if a.Link != "" {
			b.WriteString("   " + StyleBlue.Render(a.Link.String()) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatActivities(days []domain.DayActivity) string {
	items := make([]TreeItem, 0, len(days)*4)
	for _, d := range days {
		items = append(items, TreeItem{Title: fmt.Sprintf("Day %d", d.Day)})
		slots := []TreeItem{
			{Title: d.Morning, Level: 1, Detail: "morning"},
			{Title: d.Afternoon, Level: 1, Detail: "afternoon"},
			{Title: d.Evening, Level: 1, Detail: "evening"},
		}
		slots[len(slots)-1].IsLast = true
		items = append(items, slots...)
	}
	return Header("Daily Itinerary") + "\n" + strings.TrimRight(RenderTree(items), "\n")
}

func formatTransportation(t *domain.Transportation) string {
	var lines []string
	if t.Flights != nil {
		if t.Flights.Outbound != "" {
			lines = append(lines, "Outbound: "+t.Flights.Outbound.String())
		}
		if t.Flights.Return != "" {
			lines = append(lines, "Return: "+t.Flights.Return.String())
		}
	}
	if t.CarRental != "" {
		lines = append(lines, "Car rental: "+t.CarRental.String())
	}
	if t.LocalTransportation != "" {
		lines = append(lines, "Getting around: "+t.LocalTransportation.String())
	}
	if len(lines) == 0 {
		return ""
	}
	return Header("Transportation") + "\n" + strings.Join(lines, "\n")
}

func formatTips(tips []string) string {
	var b strings.Builder
	b.WriteString(Header("Local Tips") + "\n")
	for _, tip := range tips {
		b.WriteString(StyleYellow.Render("• ") + tip + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
