package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/adhiwira/kapten/internal/pkg/circuitbreaker"
	httpclient "github.com/adhiwira/kapten/internal/pkg/http"
	"github.com/adhiwira/kapten/internal/pkg/models"
	"github.com/adhiwira/kapten/internal/utils"
	"github.com/adhiwira/kapten/services/captain"
)

// DispatchClient is the HTTP client for the dispatch backend REST API
type DispatchClient struct {
	client    *httpclient.Client
	authToken string
	breaker   *circuitbreaker.CircuitBreaker
}

var _ captain.DispatchGW = (*DispatchClient)(nil)

// NewDispatchClient creates a new dispatch REST client
func NewDispatchClient(cfg models.DispatchConfig, authToken string) *DispatchClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	// Only transport-level failures trip the breaker. Backend refusals are
	// valid answers and must keep flowing.
	breakerCfg := circuitbreaker.DefaultConfig("dispatch")
	breakerCfg.IsFailure = func(err error) bool {
		return errors.Is(err, captain.ErrTransientNetwork)
	}

	return &DispatchClient{
		client:    httpclient.NewClient(cfg.BaseURL, timeout),
		authToken: authToken,
		breaker:   circuitbreaker.New(breakerCfg),
	}
}

// NearbyOffers pulls the current trip offers around the given position
func (c *DispatchClient) NearbyOffers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.TripOffer, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
	query.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var offers []models.TripOffer
	path := fmt.Sprintf("/v1/offers/nearby?%s", query.Encode())
	if err := c.do(ctx, http.MethodGet, path, nil, &offers); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby offers: %w", err)
	}

	return offers, nil
}

// AcceptTrip claims an offer for this captain
func (c *DispatchClient) AcceptTrip(ctx context.Context, tripID string) error {
	path := fmt.Sprintf("/v1/trips/%s/accept", tripID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to accept trip: %w", err)
	}
	return nil
}

// ReachedPickup reports arrival at the pickup point
func (c *DispatchClient) ReachedPickup(ctx context.Context, tripID string) error {
	path := fmt.Sprintf("/v1/trips/%s/reached-pickup", tripID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to report pickup arrival: %w", err)
	}
	return nil
}

// VerifyOTP submits the customer's OTP to start the trip. The backend is
// the sole authority on OTP correctness.
func (c *DispatchClient) VerifyOTP(ctx context.Context, tripID, otp string) error {
	var result struct {
		Status string `json:"status"`
	}

	path := fmt.Sprintf("/v1/trips/%s/verify-otp", tripID)
	body := map[string]string{"otp": otp}
	if err := c.do(ctx, http.MethodPost, path, body, &result); err != nil {
		return fmt.Errorf("failed to verify otp: %w", err)
	}

	if result.Status == "invalid" {
		return fmt.Errorf("otp rejected by dispatch: %w", captain.ErrCommandRejected)
	}
	return nil
}

// CompleteTrip reports arrival at the destination
func (c *DispatchClient) CompleteTrip(ctx context.Context, tripID string) error {
	path := fmt.Sprintf("/v1/trips/%s/reached-destination", tripID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("failed to complete trip: %w", err)
	}
	return nil
}

// CancelTrip ends the trip with the given reason
func (c *DispatchClient) CancelTrip(ctx context.Context, tripID, reason string) error {
	path := fmt.Sprintf("/v1/trips/%s/cancel", tripID)
	body := map[string]string{"reason": reason}
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("failed to cancel trip: %w", err)
	}
	return nil
}

// Stats fetches the captain's performance counters
func (c *DispatchClient) Stats(ctx context.Context) (*models.CaptainStats, error) {
	var stats models.CaptainStats
	if err := c.do(ctx, http.MethodGet, "/v1/captain/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return &stats, nil
}

// WalletBalance fetches the captain's wallet state
func (c *DispatchClient) WalletBalance(ctx context.Context) (*models.WalletBalance, error) {
	var balance models.WalletBalance
	if err := c.do(ctx, http.MethodGet, "/v1/wallet/balance", nil, &balance); err != nil {
		return nil, fmt.Errorf("failed to fetch wallet balance: %w", err)
	}
	return &balance, nil
}

// do executes one request through the circuit breaker and translates
// failures into the engine's error taxonomy: transport errors and 5xx become
// ErrTransientNetwork, other non-success statuses become ErrCommandRejected.
func (c *DispatchClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.doOnce(ctx, method, path, body, out)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: dispatch circuit open", captain.ErrTransientNetwork)
	}
	return err
}

func (c *DispatchClient) doOnce(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.client.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", captain.ErrTransientNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", captain.ErrTransientNetwork, err)
	}

	switch {
	case resp.StatusCode >= 500,
		resp.StatusCode == http.StatusRequestTimeout,
		resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", captain.ErrTransientNetwork, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: status %d, body: %s", captain.ErrCommandRejected, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := utils.ParseJSONResponse(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
