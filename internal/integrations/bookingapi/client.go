package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/schedfy/dashboard-service/internal/domain"
)

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder records remote call metrics; nil-safe via noop check in client
type MetricsRecorder interface {
	ObserveClientRequest(service, operation, status string, duration time.Duration)
}

// Client HTTP client for the remote Schedfy booking API.
// All booking state lives behind this API; the dashboard service only
// consumes it.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	log         Logger
	metrics     MetricsRecorder
	serviceName string
}

// NewClient creates a booking API client.
// metrics may be nil when metrics collection is disabled.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder, serviceName string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:         log,
		metrics:     metrics,
		serviceName: serviceName,
	}
}

// ListByEntity fetches all bookings owned by a business entity.
func (c *Client) ListByEntity(ctx context.Context, entityID string) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/entity/%s", url.PathEscape(entityID))
	return c.list(ctx, "list_by_entity", path)
}

// ListByClient fetches all bookings of a client.
func (c *Client) ListByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/client/%s", url.PathEscape(clientID))
	return c.list(ctx, "list_by_client", path)
}

// ListByProfessional fetches all bookings assigned to a professional.
func (c *Client) ListByProfessional(ctx context.Context, professionalID string) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/professional/%s", url.PathEscape(professionalID))
	return c.list(ctx, "list_by_professional", path)
}

// ListByService fetches all bookings of a service.
func (c *Client) ListByService(ctx context.Context, serviceID string) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/service/%s", url.PathEscape(serviceID))
	return c.list(ctx, "list_by_service", path)
}

// ListByDateRange fetches an entity's bookings within [startDate, endDate].
// Dates are passed as YYYY-MM-DD query parameters.
func (c *Client) ListByDateRange(ctx context.Context, entityID string, startDate, endDate time.Time) ([]domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/entity/%s/range?startDate=%s&endDate=%s",
		url.PathEscape(entityID),
		url.QueryEscape(startDate.Format(domain.DateFormat)),
		url.QueryEscape(endDate.Format(domain.DateFormat)),
	)
	return c.list(ctx, "list_by_date_range", path)
}

// Create posts a new booking.
// A 409 response is returned as *ConflictError carrying the conflicting
// slots from the server payload.
func (c *Client) Create(ctx context.Context, req *CreateBookingRequest) (*domain.Booking, error) {
	return c.mutate(ctx, "create", http.MethodPost, "/api/bookings", req, http.StatusCreated, http.StatusOK)
}

// Update patches a booking; nil fields in the request are left untouched.
func (c *Client) Update(ctx context.Context, id string, req *UpdateBookingRequest) (*domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%s", url.PathEscape(id))
	return c.mutate(ctx, "update", http.MethodPatch, path, req, http.StatusOK)
}

// Confirm transitions a pending booking to confirmed.
func (c *Client) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%s/confirm", url.PathEscape(id))
	return c.mutate(ctx, "confirm", http.MethodPatch, path, nil, http.StatusOK)
}

// Complete transitions a booking to completed.
func (c *Client) Complete(ctx context.Context, id string) (*domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%s/complete", url.PathEscape(id))
	return c.mutate(ctx, "complete", http.MethodPatch, path, nil, http.StatusOK)
}

// Cancel transitions a booking to cancelled with an optional reason.
func (c *Client) Cancel(ctx context.Context, id string, reason *string) (*domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%s/cancel", url.PathEscape(id))
	return c.mutate(ctx, "cancel", http.MethodPatch, path, &CancelBookingRequest{Reason: reason}, http.StatusOK)
}

// MarkNoShow transitions a booking to no_show.
func (c *Client) MarkNoShow(ctx context.Context, id string) (*domain.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%s/no-show", url.PathEscape(id))
	return c.mutate(ctx, "no_show", http.MethodPatch, path, nil, http.StatusOK)
}

// Delete removes a booking.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/bookings/%s", url.PathEscape(id))

	resp, err := c.do(ctx, "delete", http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrBookingNotFound
	default:
		return c.unexpectedStatus(resp)
	}
}

// CheckAvailability asks the server whether the requested interval is
// free; a pure read that never touches local state.
func (c *Client) CheckAvailability(ctx context.Context, req *AvailabilityRequest) (*domain.AvailabilityResult, error) {
	resp, err := c.do(ctx, "check_availability", http.MethodPost, "/api/bookings/check-availability", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var result domain.AvailabilityResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// Internal helpers

func (c *Client) list(ctx context.Context, operation, path string) ([]domain.Booking, error) {
	resp, err := c.do(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.unexpectedStatus(resp)
	}

	var bookings []domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&bookings); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking list: %v", ErrInvalidResponse, err)
	}

	return bookings, nil
}

func (c *Client) mutate(ctx context.Context, operation, method, path string, body interface{}, okStatuses ...int) (*domain.Booking, error) {
	resp, err := c.do(ctx, operation, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ok := false
	for _, s := range okStatuses {
		if resp.StatusCode == s {
			ok = true
			break
		}
	}

	if !ok {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return nil, ErrBookingNotFound
		case http.StatusConflict:
			return nil, c.conflictError(resp)
		default:
			return nil, c.unexpectedStatus(resp)
		}
	}

	var booking domain.Booking
	if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
		return nil, fmt.Errorf("%w: failed to decode booking: %v", ErrInvalidResponse, err)
	}

	return &booking, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "transport_error", start)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	c.observe(operation, strconv.Itoa(resp.StatusCode), start)
	return resp, nil
}

func (c *Client) observe(operation, status string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveClientRequest(c.serviceName, operation, status, time.Since(start))
}

// conflictError decodes the 409 payload into a ConflictError.
// A malformed body still yields a ConflictError, just without conflicts.
func (c *Client) conflictError(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.log.Warn("bookingapi: failed to decode 409 payload: %v", err)
		return &ConflictError{}
	}

	return &ConflictError{
		Message:   envelope.Message,
		Conflicts: envelope.Errors.Conflicts,
	}
}

// unexpectedStatus extracts a human-readable message from the error
// body when present, else falls back to the raw body.
func (c *Client) unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, envelope.Message)
	}

	return fmt.Errorf("%w: unexpected status code %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
}
