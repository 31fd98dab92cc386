// Package api is the HTTP client for the planner server's activity API.
// All CLI commands except serve go through it, so a single running server
// remains the one source of truth for the activity list.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/alexanderramin/semainier/internal/domain"
)

// wireActivity is the JSON representation shared with the server.
type wireActivity struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	WeeklyMinutes int    `json:"weekly_minutes"`
	Category      string `json:"category"`
}

func toWire(a domain.Activity) wireActivity {
	return wireActivity{ID: a.ID, Name: a.Name, WeeklyMinutes: a.WeeklyMinutes, Category: a.Category}
}

func (w wireActivity) toDomain() domain.Activity {
	return domain.Activity{ID: w.ID, Name: w.Name, WeeklyMinutes: w.WeeklyMinutes, Category: w.Category}
}

// Client talks to a planner server. It performs no retries and sets no
// timeout of its own: cancellation and deadlines belong to the caller's
// context.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL (scheme://host[:port]).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// FeedURL returns the published calendar feed URL for this server.
func (c *Client) FeedURL() string {
	return c.baseURL + "/calendar/feed.ics"
}

// List fetches the full activity collection.
func (c *Client) List(ctx context.Context) ([]domain.Activity, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/activities", nil)
	if err != nil {
		return nil, err
	}

	var wire []wireActivity
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decoding activity list: %w", err)
	}

	activities := make([]domain.Activity, 0, len(wire))
	for _, w := range wire {
		activities = append(activities, w.toDomain())
	}
	return activities, nil
}

// Create posts a new activity to the collection endpoint. The input ID is
// ignored; the server assigns one and the created activity is returned.
func (c *Client) Create(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	w := toWire(a)
	w.ID = ""
	return c.sendActivity(ctx, http.MethodPost, "/api/activities", w)
}

// Update puts changed fields to the per-id endpoint.
func (c *Client) Update(ctx context.Context, a domain.Activity) (*domain.Activity, error) {
	if a.ID == "" {
		return nil, fmt.Errorf("update requires an activity id")
	}
	return c.sendActivity(ctx, http.MethodPut, "/api/activities/"+a.ID, toWire(a))
}

// Delete removes the activity with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete requires an activity id")
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/activities/"+id, nil)
	return err
}

func (c *Client) sendActivity(ctx context.Context, method, path string, w wireActivity) (*domain.Activity, error) {
	payload, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("marshaling activity: %w", err)
	}

	body, err := c.do(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	var out wireActivity
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decoding activity: %w", err)
	}
	result := out.toDomain()
	return &result, nil
}

// do performs one request and returns the response body of a 2xx answer.
// Failures collapse into the package error taxonomy: transport errors wrap
// ErrServerUnavailable, non-2xx answers become *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
	}
	return body, nil
}

// errorMessage extracts the server-supplied message from an error body,
// falling back to the HTTP status when the body is not the expected JSON.
func errorMessage(status int, body []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return statusFallback(status)
}
