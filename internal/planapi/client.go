// Package planapi talks to the remote trip planning service.
package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/tripplanner/internal/domain"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Client requests travel plans from the planning service.
type Client interface {
	// Plan posts the request and returns the decoded plan. It makes exactly
	// one attempt; callers decide what to do on failure.
	Plan(ctx context.Context, req domain.TripRequest) (*domain.TravelPlan, error)
	// Available checks whether the planning service answers its health probe.
	Available(ctx context.Context) bool
}

// httpClient implements Client over HTTP with JSON bodies.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the service described by cfg.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *httpClient) Plan(ctx context.Context, req domain.TripRequest) (*domain.TravelPlan, error) {
	start := time.Now()
	url := c.cfg.PlanURL()

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	plan, status, err := c.doRequest(callCtx, url, req)
	if err != nil {
		err = classify(callCtx, err)
	}

	c.observer.OnCallComplete(CallEvent{
		URL:        url,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})

	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *httpClient) doRequest(ctx context.Context, url string, req domain.TripRequest) (*domain.TravelPlan, int, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, 0, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, httpResp.StatusCode, fmt.Errorf("%w: status %d: %s",
			ErrBadStatus, httpResp.StatusCode, truncate(string(respBody), 200))
	}

	plan, err := DecodePlan(respBody)
	if err != nil {
		return nil, httpResp.StatusCode, err
	}
	return plan, httpResp.StatusCode, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.HealthTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.HealthURL(), nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// classify maps a raw transport error onto the package's sentinel errors.
// Errors already wrapping a sentinel pass through unchanged.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, ErrBadStatus) || errors.Is(err, ErrInvalidPlan) {
		return err
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(ctx.Err(), context.Canceled):
		return ErrCanceled
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrCanceled):
		return "CANCELED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrInvalidPlan):
		return "INVALID_PLAN"
	default:
		return "UNKNOWN"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
