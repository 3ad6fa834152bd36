package cli

import (
	"fmt"

	"github.com/alexanderramin/tripplanner/internal/cli/formatter"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planner"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	resultBackKey = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "plan another trip"))
	resultGoKey   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go to planner"))
)

// resultView shows a finished plan in a scrollable viewport. With no
// outcome it shows the missing-plan placeholder.
type resultView struct {
	state     *SharedState
	outcome   *planner.Outcome
	interests []domain.Interest
	vp        viewport.Model

	// root is set when the result screen was opened directly, with no
	// planner underneath to pop back to.
	root bool
}

func newResultView(state *SharedState, out *planner.Outcome, interests []domain.Interest) *resultView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = resultViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &resultView{
		state:     state,
		outcome:   out,
		interests: interests,
		vp:        vp,
	}
	v.vp.SetContent(v.render())
	return v
}

func (v *resultView) hasPlan() bool {
	return v.outcome != nil
}

func (v *resultView) render() string {
	if !v.hasPlan() {
		return formatter.FormatMissingPlan()
	}
	return formatter.FormatTravelPlan(&v.outcome.Plan, formatter.PlanOptions{
		Source:    v.outcome.Source,
		Interests: v.interests,
	})
}

func (v *resultView) Init() tea.Cmd {
	return nil
}

func (v *resultView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		if key.Matches(msg, resultBackKey) {
			return v, v.back()
		}
		if !v.hasPlan() && key.Matches(msg, resultGoKey) {
			return v, v.back()
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

// back returns to the planner that opened this screen, or swaps in a fresh
// planner when there is none.
func (v *resultView) back() tea.Cmd {
	if v.root {
		return replaceView(newPlannerView(v.state))
	}
	return popView()
}

func (v *resultView) View() string {
	return v.vp.View()
}

func (v *resultView) ID() ViewID { return ViewResult }

func (v *resultView) Title() string {
	if !v.hasPlan() {
		return "Travel Plan"
	}
	return fmt.Sprintf("Trip to %s", v.outcome.Plan.Destination)
}

func (v *resultView) ShortHelp() []key.Binding {
	if !v.hasPlan() {
		return []key.Binding{resultGoKey, resultBackKey}
	}
	hints := []key.Binding{resultBackKey}
	if v.vp.TotalLineCount() > v.vp.Height {
		hints = append([]key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp(scrollIndicator(v.vp)+" ↑↓ pgup/pgdn", "scroll")),
		}, hints...)
	}
	return hints
}

// resultViewportKeyMap returns viewport scroll bindings that leave 'b'
// free for the back action.
func resultViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " ", "f")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d", "d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u", "u")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
	}
}

// scrollIndicator returns a scroll position label for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return "[TOP]"
	}
	if vp.AtBottom() {
		return "[END]"
	}
	return fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100))
}
