package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/tripplanner/internal/demo"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planapi"
	"github.com/alexanderramin/tripplanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingClient records Plan calls and answers with a fixed plan or error.
type countingClient struct {
	calls atomic.Int32
	plan  *domain.TravelPlan
	err   error
}

func (c *countingClient) Plan(ctx context.Context, req domain.TripRequest) (*domain.TravelPlan, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return c.plan, nil
}

func (c *countingClient) Available(context.Context) bool { return c.err == nil }

func testClientConfig(endpoint string) planapi.Config {
	cfg := planapi.DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestSubmit_MissingRequiredFieldsNeverCallsNetwork(t *testing.T) {
	cases := map[string]domain.TripRequest{
		"destination": testutil.NewTestRequest(testutil.WithDestination("")),
		"start date":  testutil.NewTestRequest(testutil.WithDates("", "2024-06-05")),
		"end date":    testutil.NewTestRequest(testutil.WithDates("2024-06-01", "")),
		"all":         {},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			client := &countingClient{plan: testutil.NewTestPlan("Paris")}
			svc := NewService(client)

			out, err := svc.Submit(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Nil(t, out)
			assert.Equal(t, int32(0), client.calls.Load())
		})
	}
}

func TestSubmit_RemoteSuccess(t *testing.T) {
	remote := testutil.NewTestPlan("Paris", testutil.WithAttractions("Louvre", "Orsay"))
	client := &countingClient{plan: remote}

	out, err := NewService(client).Submit(context.Background(), testutil.NewTestRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, out.Source)
	assert.False(t, out.Fallback())
	assert.Nil(t, out.FallbackReason)
	assert.Equal(t, *remote, out.Plan)
	assert.NotEmpty(t, out.AttemptID)
	assert.Equal(t, int32(1), client.calls.Load())
}

func TestSubmit_ConnectionRefusedFallsBack(t *testing.T) {
	client := planapi.NewClient(testClientConfig("http://127.0.0.1:1"), nil)
	req := testutil.NewTestRequest(testutil.WithBudget(""))

	out, err := NewService(client).Submit(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, out.Fallback())
	assert.ErrorIs(t, out.FallbackReason, planapi.ErrUnavailable)
	assert.Equal(t, "Paris", out.Plan.Destination)
	assert.Equal(t, domain.Cost("2500"), out.Plan.Overview.TotalCost)
}

func TestSubmit_FallbackKeepsBudget(t *testing.T) {
	client := planapi.NewClient(testClientConfig("http://127.0.0.1:1"), nil)
	req := testutil.NewTestRequest(testutil.WithDestination("Hanoi"), testutil.WithBudget("1200"))

	out, err := NewService(client).Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Hanoi", out.Plan.Destination)
	assert.Equal(t, domain.Cost("1200"), out.Plan.Overview.TotalCost)
}

func TestSubmit_ParisEndToEndWithoutBackend(t *testing.T) {
	client := planapi.NewClient(testClientConfig("http://127.0.0.1:1"), nil)
	req := domain.TripRequest{
		Destination: "Paris",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-05",
		Travelers:   2,
		Budget:      "",
		Interests:   []domain.Interest{domain.InterestFood},
	}

	out, err := NewService(client).Submit(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Paris", out.Plan.Destination)
	assert.Equal(t, 4, out.Plan.Duration)
	assert.Equal(t, domain.Cost("2500"), out.Plan.Overview.TotalCost)
	assert.Equal(t, 2, out.Plan.Overview.Travelers)
}

func TestSubmit_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	req := testutil.NewTestRequest()
	out, err := NewService(planapi.NewClient(testClientConfig(srv.URL), nil)).Submit(context.Background(), req)

	require.NoError(t, err)
	assert.ErrorIs(t, out.FallbackReason, planapi.ErrBadStatus)
	assert.Equal(t, demo.Generate(req), out.Plan)
}

func TestSubmit_MalformedSuccessBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with the wrong shape: accommodation list missing, no activities.
		json.NewEncoder(w).Encode(map[string]any{
			"destination": "Paris",
			"overview":    map[string]any{"travelers": 2},
		})
	}))
	defer srv.Close()

	req := testutil.NewTestRequest()
	out, err := NewService(planapi.NewClient(testClientConfig(srv.URL), nil)).Submit(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, out.Fallback())
	assert.ErrorIs(t, out.FallbackReason, planapi.ErrInvalidPlan)
	assert.Equal(t, demo.Generate(req), out.Plan)
}

func TestSubmit_NilClientIsOffline(t *testing.T) {
	out, err := NewService(nil).Submit(context.Background(), testutil.NewTestRequest())

	require.NoError(t, err)
	assert.ErrorIs(t, out.FallbackReason, ErrOffline)
	assert.Equal(t, domain.SourceDemo, out.Source)
}

func TestSubmit_UsesAttemptIDFromContext(t *testing.T) {
	ctx := WithAttemptID(context.Background(), "attempt-42")
	out, err := NewService(nil).Submit(ctx, testutil.NewTestRequest())

	require.NoError(t, err)
	assert.Equal(t, "attempt-42", out.AttemptID)
}

func TestSubmit_ObserverRecordsOutcome(t *testing.T) {
	var events []UseCaseEvent
	obs := observerFunc(func(_ context.Context, e UseCaseEvent) { events = append(events, e) })
	svc := NewService(&countingClient{err: planapi.ErrTimeout}, obs)

	_, err := svc.Submit(context.Background(), testutil.NewTestRequest())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), domain.TripRequest{})
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "submit-trip", events[0].Name)
	assert.True(t, events[0].Success)
	assert.Equal(t, "demo", events[0].Fields["source"])
	assert.Equal(t, planapi.ErrTimeout.Error(), events[0].Fields["fallback_reason"])

	assert.False(t, events[1].Success)
	assert.ErrorIs(t, events[1].Err, domain.ErrValidation)
}

type observerFunc func(context.Context, UseCaseEvent)

func (f observerFunc) ObserveUseCase(ctx context.Context, e UseCaseEvent) { f(ctx, e) }
