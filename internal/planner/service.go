// Package planner implements trip submission: validate the request, ask the
// planning service for an itinerary, and fall back to the demo itinerary
// whenever the service cannot deliver one.
package planner

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tripplanner/internal/demo"
	"github.com/alexanderramin/tripplanner/internal/domain"
	"github.com/alexanderramin/tripplanner/internal/planapi"
	"github.com/google/uuid"
)

// ErrOffline is the fallback reason when no planning client is configured.
var ErrOffline = errors.New("planning service disabled")

// Outcome is the result of a submission that passed validation.
type Outcome struct {
	AttemptID string
	Plan      domain.TravelPlan
	Source    domain.PlanSource
	// FallbackReason is the absorbed planning error; nil when Source is remote.
	FallbackReason error
}

// Fallback reports whether the plan came from the demo generator.
func (o *Outcome) Fallback() bool {
	return o.Source == domain.SourceDemo
}

// Service runs the trip submission flow.
type Service interface {
	// Submit validates req and returns a plan. The only error it returns is a
	// domain.ValidationError; planning failures are absorbed into a demo plan.
	Submit(ctx context.Context, req domain.TripRequest) (*Outcome, error)
}

type service struct {
	client   planapi.Client
	observer UseCaseObserver
}

// NewService creates a Service backed by client. A nil client never touches
// the network and always answers with the demo plan.
func NewService(client planapi.Client, observers ...UseCaseObserver) Service {
	return &service{
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *service) Submit(ctx context.Context, req domain.TripRequest) (out *Outcome, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"destination": req.Destination,
		"travelers":   req.Travelers,
	}
	defer func() {
		if out != nil {
			fields["attempt_id"] = out.AttemptID
			fields["source"] = string(out.Source)
			if out.FallbackReason != nil {
				fields["fallback_reason"] = out.FallbackReason.Error()
			}
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-trip",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	attemptID, ok := AttemptIDFromContext(ctx)
	if !ok {
		attemptID = uuid.NewString()
	}

	if s.client == nil {
		return fallback(attemptID, req, ErrOffline), nil
	}

	plan, planErr := s.client.Plan(ctx, req)
	if planErr != nil {
		return fallback(attemptID, req, planErr), nil
	}

	return &Outcome{
		AttemptID: attemptID,
		Plan:      *plan,
		Source:    domain.SourceRemote,
	}, nil
}

func fallback(attemptID string, req domain.TripRequest, reason error) *Outcome {
	return &Outcome{
		AttemptID:      attemptID,
		Plan:           demo.Generate(req),
		Source:         domain.SourceDemo,
		FallbackReason: reason,
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
