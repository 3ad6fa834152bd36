package cli

import (
	"context"
	"sync"

	"github.com/alexanderramin/tripplanner/internal/demo"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planapi"
	"github.com/alexanderramin/tripplanner/internal/planner"
)

// stubPlanner answers Submit instantly and records the requests it saw.
type stubPlanner struct {
	mu       sync.Mutex
	requests []domain.TripRequest
	source   domain.PlanSource
	plan     *domain.TravelPlan
}

func (s *stubPlanner) Submit(ctx context.Context, req domain.TripRequest) (*planner.Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	id, _ := planner.AttemptIDFromContext(ctx)
	out := &planner.Outcome{AttemptID: id, Source: s.source}
	if s.plan != nil {
		out.Plan = *s.plan
	} else {
		out.Plan = demo.Generate(req)
	}
	if out.Source == "" {
		out.Source = domain.SourceRemote
	}
	if out.Source == domain.SourceDemo {
		out.FallbackReason = planapi.ErrUnavailable
	}
	return out, nil
}

func (s *stubPlanner) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// stubClient reports a fixed health status.
type stubClient struct {
	available bool
}

func (c stubClient) Plan(context.Context, domain.TripRequest) (*domain.TravelPlan, error) {
	return nil, planapi.ErrUnavailable
}

func (c stubClient) Available(context.Context) bool { return c.available }

// testApp returns an App whose services never touch the network.
func testApp(svc planner.Service) *App {
	return &App{
		Config:  planapi.DefaultConfig(),
		Client:  stubClient{},
		Planner: svc,
	}
}
