package calendar

import (
	"testing"
	"time"

	gcalendar "google.golang.org/api/calendar/v3"
)

func TestToEvent_Nil(t *testing.T) {
	event := toEvent(nil)
	if event.ID != "" {
		t.Errorf("Expected empty ID for nil event, got %s", event.ID)
	}
}

func TestToEvent_DateTime(t *testing.T) {
	source := &gcalendar.Event{
		Id:       "evt-1",
		Summary:  "Standup",
		Status:   "confirmed",
		HtmlLink: "https://calendar.google.com/event?eid=abc",
		Start:    &gcalendar.EventDateTime{DateTime: "2024-01-02T09:30:00Z"},
		End:      &gcalendar.EventDateTime{DateTime: "2024-01-02T10:00:00Z"},
	}

	event := toEvent(source)

	if event.ID != "evt-1" {
		t.Errorf("ID = %q, want %q", event.ID, "evt-1")
	}
	if event.Summary != "Standup" {
		t.Errorf("Summary = %q, want %q", event.Summary, "Standup")
	}
	if event.HTMLLink != "https://calendar.google.com/event?eid=abc" {
		t.Errorf("HTMLLink = %q", event.HTMLLink)
	}

	wantStart := time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC)
	if !event.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", event.Start, wantStart)
	}
	if !event.End.Equal(wantStart.Add(30 * time.Minute)) {
		t.Errorf("End = %v", event.End)
	}
}

func TestToEvent_AllDay(t *testing.T) {
	source := &gcalendar.Event{
		Id:    "evt-2",
		Start: &gcalendar.EventDateTime{Date: "2024-01-06"},
		End:   &gcalendar.EventDateTime{Date: "2024-01-07"},
	}

	event := toEvent(source)

	wantStart := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !event.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", event.Start, wantStart)
	}
	if !event.End.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Errorf("End = %v", event.End)
	}
}

func TestToEvent_MalformedTimes(t *testing.T) {
	source := &gcalendar.Event{
		Id:    "evt-3",
		Start: &gcalendar.EventDateTime{DateTime: "not a timestamp"},
	}

	event := toEvent(source)

	if !event.Start.IsZero() {
		t.Errorf("Start should stay zero for malformed input, got %v", event.Start)
	}
}

func TestEventPayloadRoundTrip(t *testing.T) {
	original := Event{
		ID:       "evt-4",
		Summary:  "Planning",
		Start:    time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2024, time.January, 5, 11, 0, 0, 0, time.UTC),
		HTMLLink: "https://example.com/evt-4",
	}

	got := NewEventPayload(original).Event()

	if got != original {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, original)
	}
}
