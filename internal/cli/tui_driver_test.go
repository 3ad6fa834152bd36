package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/tripplanner/internal/teatest"
)

// TestDriver wraps teatest.Driver with app-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver for app opened at start.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App, start ViewID, opts ...teatest.Option) *TestDriver {
	t.Helper()

	m := newAppModel(app, start)
	opts = append([]teatest.Option{teatest.WithSize(120, 40)}, opts...)
	d := teatest.New(t, m, opts...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// FillTrip sets the planner form fields directly and submits them.
func (d *TestDriver) FillTrip(set func(f *tripFields)) {
	d.T.Helper()
	set(d.Planner().fields)
	d.Send(submitTripMsg{})
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Planner returns the planner view on the stack. It fails the test if there
// is none.
func (d *TestDriver) Planner() *plannerView {
	d.T.Helper()
	for _, v := range d.appModel().viewStack {
		if pv, ok := v.(*plannerView); ok {
			return pv
		}
	}
	d.T.Fatal("no planner view on the stack")
	return nil
}

// Result returns the top view as a result view, or nil.
func (d *TestDriver) Result() *resultView {
	m := d.appModel()
	rv, _ := m.activeView().(*resultView)
	return rv
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// PlainView returns the rendered output with ANSI escapes removed.
func (d *TestDriver) PlainView() string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}
