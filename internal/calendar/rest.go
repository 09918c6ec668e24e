package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRequestTimeout bounds the single round trip per assistant turn.
const DefaultRequestTimeout = 30 * time.Second

// Wire types shared between RestClient and the API server handlers.

// BookRequest is the wire form of a booking sent to the proxy API.
type BookRequest struct {
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	TimeZone string    `json:"timeZone,omitempty"`
}

// EventPayload is the wire form of a calendar event.
type EventPayload struct {
	ID       string    `json:"id,omitempty"`
	Summary  string    `json:"summary"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	HTMLLink string    `json:"htmlLink,omitempty"`
}

// EventsResponse is the wire form of an availability listing.
type EventsResponse struct {
	Events []EventPayload `json:"events"`
}

// NewEventPayload converts an Event to its wire form.
func NewEventPayload(e Event) EventPayload {
	return EventPayload{
		ID:       e.ID,
		Summary:  e.Summary,
		Start:    e.Start,
		End:      e.End,
		HTMLLink: e.HTMLLink,
	}
}

// Event converts the wire form back to an Event.
func (p EventPayload) Event() Event {
	return Event{
		ID:       p.ID,
		Summary:  p.Summary,
		Start:    p.Start,
		End:      p.End,
		HTMLLink: p.HTMLLink,
	}
}

// RestClient talks to a TailorTalk API server that proxies the calendar
// provider. It mirrors the Client surface so the assistant can run against
// either a local Google client or a remote server.
type RestClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRestClient creates a client for the API server at baseURL.
func NewRestClient(baseURL string) *RestClient {
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}

// ListEvents fetches events from the proxy's availability endpoint. A zero
// timeMax is omitted so the server applies its default window.
func (c *RestClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	params := url.Values{}
	params.Set("start", timeMin.Format(time.RFC3339))
	if !timeMax.IsZero() {
		params.Set("end", timeMax.Format(time.RFC3339))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/available?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}

	var response EventsResponse
	if err := c.do(req, &response); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []Event
	for _, p := range response.Events {
		events = append(events, p.Event())
	}

	return events, nil
}

// CreateEvent books an event through the proxy's booking endpoint.
func (c *RestClient) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	body, err := json.Marshal(BookRequest{
		Title:    input.Summary,
		Start:    input.Start,
		End:      input.End,
		TimeZone: input.TimeZone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/book", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var payload EventPayload
	if err := c.do(req, &payload); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	event := payload.Event()
	return &event, nil
}

// do executes the request and decodes a JSON response into out. Non-2xx
// statuses are reported as errors carrying the response body.
func (c *RestClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}

	return nil
}
