package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/tripplanner/internal/cli/formatter"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// tripHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func tripHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// tripFields is the planner form's state. huh inputs bind to its fields
// directly; request converts it to a domain value.
type tripFields struct {
	Destination string
	StartDate   string
	EndDate     string
	Travelers   string
	Budget      string
	Interests   []domain.Interest
}

func newTripFields() *tripFields {
	return &tripFields{
		Travelers: strconv.Itoa(domain.DefaultTravelers),
		Interests: []domain.Interest{},
	}
}

// request builds the TripRequest the form currently describes.
func (f *tripFields) request() domain.TripRequest {
	req := domain.NewTripRequest()
	req.Destination = strings.TrimSpace(f.Destination)
	req.StartDate = strings.TrimSpace(f.StartDate)
	req.EndDate = strings.TrimSpace(f.EndDate)
	req.Travelers = parsePositiveInt(strings.TrimSpace(f.Travelers), domain.DefaultTravelers)
	req.Budget = strings.TrimSpace(f.Budget)
	for _, in := range domain.InterestOptions {
		if containsInterest(f.Interests, in) {
			req = req.ToggleInterest(in)
		}
	}
	return req
}

func containsInterest(list []domain.Interest, in domain.Interest) bool {
	for _, x := range list {
		if x == in {
			return true
		}
	}
	return false
}

// newTripForm builds the planner form bound to f.
func newTripForm(f *tripFields) *huh.Form {
	options := make([]huh.Option[domain.Interest], 0, len(domain.InterestOptions))
	for _, in := range domain.InterestOptions {
		options = append(options, huh.NewOption(string(in), in))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Placeholder("Where do you want to go?").
				Value(&f.Destination),
			huh.NewInput().
				Title("Travelers").
				Placeholder("1").
				Value(&f.Travelers).
				Validate(validatePositiveInt),
			dateInput("Start Date", "2024-06-01", &f.StartDate),
			dateInput("End Date", "2024-06-05", &f.EndDate),
			huh.NewInput().
				Title("Budget (optional)").
				Placeholder("e.g. 2000").
				Value(&f.Budget),
			huh.NewMultiSelect[domain.Interest]().
				Title("Interests").
				Description("space to toggle").
				Options(options...).
				Value(&f.Interests),
		),
	).WithTheme(tripHuhTheme()).WithShowHelp(false)
}

// dateInput returns a huh.Input for a date field with YYYY-MM-DD validation.
// Blank is accepted here; required-field checks happen on submit.
func dateInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateOptionalDate)
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
