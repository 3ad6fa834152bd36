package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/tripplanner/internal/cli/formatter"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// submitTripMsg asks the planner view to submit the current form values.
type submitTripMsg struct{}

// tripPlannedMsg carries a finished submission back to the planner view,
// tagged with the attempt that produced it.
type tripPlannedMsg struct {
	attemptID string
	outcome   *planner.Outcome
	err       error
}

var submitKey = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "plan trip"))

// plannerView is the trip form. Submitting runs the planner service in a
// Cmd; while it runs the form is replaced by a spinner and further
// submissions are ignored.
type plannerView struct {
	state    *SharedState
	fields   *tripFields
	form     *huh.Form
	spinner  spinner.Model
	attempts *planner.AttemptTracker
	errMsg   string
}

func newPlannerView(state *SharedState) *plannerView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StylePurple

	fields := newTripFields()
	return &plannerView{
		state:    state,
		fields:   fields,
		form:     newTripForm(fields),
		spinner:  s,
		attempts: planner.NewAttemptTracker(),
	}
}

func (v *plannerView) busy() bool {
	return v.attempts.InFlight()
}

func (v *plannerView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *plannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.form = v.form.WithWidth(min(msg.Width, 80))

	case submitTripMsg:
		return v, v.submit()

	case tripPlannedMsg:
		return v, v.complete(msg)

	case spinner.TickMsg:
		if !v.busy() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.busy() {
			if msg.Type == tea.KeyEsc {
				v.attempts.Cancel()
				v.errMsg = "Request cancelled."
				return v, v.resetForm()
			}
			return v, nil
		}
		if key.Matches(msg, submitKey) {
			return v, v.submit()
		}
	}

	if v.busy() {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		return v, tea.Batch(cmd, v.submit())
	}
	return v, cmd
}

// submit starts a planning attempt for the current form values.
func (v *plannerView) submit() tea.Cmd {
	if v.busy() {
		return nil
	}
	req := v.fields.request()
	if err := req.Validate(); err != nil {
		v.errMsg = userMessage(err)
		return v.resetForm()
	}

	v.errMsg = ""
	svc := v.state.App.Planner
	id, ctx := v.attempts.Begin(context.Background())
	return tea.Batch(v.spinner.Tick, runSubmit(ctx, svc, id, req))
}

func runSubmit(ctx context.Context, svc planner.Service, attemptID string, req domain.TripRequest) tea.Cmd {
	return func() tea.Msg {
		out, err := svc.Submit(ctx, req)
		return tripPlannedMsg{attemptID: attemptID, outcome: out, err: err}
	}
}

// complete handles a finished attempt. Results from superseded or
// cancelled attempts are dropped.
func (v *plannerView) complete(msg tripPlannedMsg) tea.Cmd {
	if !v.attempts.Finish(msg.attemptID) {
		return nil
	}
	if msg.err != nil {
		v.errMsg = userMessage(msg.err)
		return v.resetForm()
	}
	interests := v.fields.request().Interests
	return tea.Batch(v.resetForm(), pushView(newResultView(v.state, msg.outcome, interests)))
}

// resetForm rebuilds the form around the same field values so it can be
// edited and submitted again.
func (v *plannerView) resetForm() tea.Cmd {
	v.form = newTripForm(v.fields)
	if v.state.Width > 0 {
		v.form = v.form.WithWidth(min(v.state.Width, 80))
	}
	return v.form.Init()
}

func userMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.UserMessage()
	}
	return err.Error()
}

func (v *plannerView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Plan Your Trip") + "\n\n")

	if v.busy() {
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim("Planning your trip...") + "\n")
		return b.String()
	}

	b.WriteString(v.form.View())
	if v.errMsg != "" {
		b.WriteString("\n" + formatter.StyleRed.Render(v.errMsg) + "\n")
	}
	return b.String()
}

func (v *plannerView) ID() ViewID    { return ViewPlanner }
func (v *plannerView) Title() string { return "Plan a Trip" }
func (v *plannerView) ShortHelp() []key.Binding {
	if v.busy() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		submitKey,
	}
}
