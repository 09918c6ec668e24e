package calendar

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/tailortalk/tailortalk/internal/google"
)

// DefaultListWindow is the window applied when a listing has no end bound.
const DefaultListWindow = 30 * 24 * time.Hour

// Client wraps the Google Calendar service for a single calendar
type Client struct {
	svc        *calendar.Service
	calendarID string
}

// HasToken checks if a valid OAuth token exists
func HasToken() bool {
	return google.HasToken()
}

// NewClient creates a new Calendar client with OAuth2 authentication.
// The OAuth token is read from the local token cache; run the auth command
// first if none exists.
func NewClient(ctx context.Context, calendarID string) (*Client, error) {
	httpClient, err := google.GetHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth client: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	return &Client{
		svc:        svc,
		calendarID: calendarID,
	}, nil
}

// CalendarID returns the calendar this client operates on
func (c *Client) CalendarID() string {
	return c.calendarID
}

// ListEvents lists events within a time range, ordered by start time
// ascending. A zero timeMax applies the default listing window. An empty
// result is a valid, non-error outcome.
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	if timeMax.IsZero() {
		timeMax = timeMin.Add(DefaultListWindow)
	}

	result, err := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var events []Event
	for _, item := range result.Items {
		events = append(events, toEvent(item))
	}

	return events, nil
}

// CreateEvent creates a new calendar event and returns the created record,
// including the user-facing link.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*Event, error) {
	if input.TimeZone == "" {
		input.TimeZone = "UTC"
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	result := toEvent(created)
	return &result, nil
}
