package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailortalk/tailortalk/internal/calendar"
)

// fakeCalendar records calls and returns canned results.
type fakeCalendar struct {
	events    []calendar.Event
	created   *calendar.Event
	listErr   error
	createErr error

	listCalls   int
	createCalls int
	lastMin     time.Time
	lastMax     time.Time
	lastInput   calendar.EventInput
}

func (f *fakeCalendar) ListEvents(_ context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error) {
	f.listCalls++
	f.lastMin = timeMin
	f.lastMax = timeMax
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, input calendar.EventInput) (*calendar.Event, error) {
	f.createCalls++
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created != nil {
		return f.created, nil
	}
	created := calendar.Event{
		ID:      "evt-1",
		Summary: input.Summary,
		Start:   input.Start,
		End:     input.End,
	}
	return &created, nil
}

// testNow pins the clock to Monday, January 1st 2024 at 09:00 UTC.
func testNow() time.Time {
	return time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
}

func newTestAssistant(cal CalendarService) *Assistant {
	return New(Config{
		Calendar: cal,
		Location: time.UTC,
		Now:      testNow,
	})
}

func TestHandleMessage_BooksWeekdayWithTime(t *testing.T) {
	cal := &fakeCalendar{
		created: &calendar.Event{
			ID:       "evt-1",
			Summary:  DefaultEventTitle,
			HTMLLink: "https://calendar.google.com/event?eid=abc",
		},
	}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "Book a meeting next Tuesday at 4 PM")
	require.NoError(t, err)
	require.Equal(t, 1, cal.createCalls)

	wantStart := time.Date(2024, time.January, 2, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, wantStart, cal.lastInput.Start)
	assert.Equal(t, wantStart.Add(time.Hour), cal.lastInput.End)
	assert.Equal(t, DefaultEventTitle, cal.lastInput.Summary)
	assert.Equal(t, "UTC", cal.lastInput.TimeZone)

	require.NotEmpty(t, replies)
	last := replies[len(replies)-1]
	assert.Equal(t, RoleAssistant, last.Role)
	assert.True(t, last.Markdown)
	assert.Contains(t, last.Content, "Tuesday, 02 January 2024 at 04:00 PM")
	assert.Contains(t, last.Content, "https://calendar.google.com/event?eid=abc")
}

func TestHandleMessage_BookingUsesDefaultHour(t *testing.T) {
	cal := &fakeCalendar{}
	a := newTestAssistant(cal)

	var session Session
	_, err := a.HandleMessage(context.Background(), &session, "Schedule something this Friday")
	require.NoError(t, err)
	require.Equal(t, 1, cal.createCalls)

	wantStart := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, wantStart, cal.lastInput.Start)
}

func TestHandleMessage_BookingParseFailure(t *testing.T) {
	cal := &fakeCalendar{}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "Book something someday soonish")

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 0, cal.createCalls, "no collaborator call on parse failure")
	assert.Equal(t, 0, cal.listCalls)

	last := replies[len(replies)-1]
	assert.Contains(t, last.Content, "Couldn't understand your date")
}

func TestHandleMessage_BookingCollaboratorFailure(t *testing.T) {
	cal := &fakeCalendar{createErr: errors.New("backend unavailable")}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "Book a meeting tomorrow at 2 pm")

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.Equal(t, "create", collabErr.Op)
	assert.Equal(t, 1, cal.createCalls, "exactly one collaborator call per turn")

	last := replies[len(replies)-1]
	assert.Contains(t, last.Content, "Booking failed")
	assert.Contains(t, last.Content, "backend unavailable")
}

func TestHandleMessage_AvailabilityThisWeek(t *testing.T) {
	cal := &fakeCalendar{
		events: []calendar.Event{
			{Summary: "Standup", Start: time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC)},
			{Summary: "", Start: time.Date(2024, time.January, 3, 14, 0, 0, 0, time.UTC)},
		},
	}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "What's my availability this week?")
	require.NoError(t, err)
	require.Equal(t, 1, cal.listCalls)

	assert.Equal(t, testNow(), cal.lastMin)
	assert.Equal(t, testNow().AddDate(0, 0, 7), cal.lastMax)

	require.Len(t, replies, 3)
	assert.Contains(t, replies[0].Content, "upcoming events")
	assert.Contains(t, replies[1].Content, "Standup")
	assert.Contains(t, replies[1].Content, "2024-01-02 09:30")
	assert.Contains(t, replies[2].Content, "No Title")
}

func TestHandleMessage_AvailabilityWeekend(t *testing.T) {
	cal := &fakeCalendar{}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "Show me free time this weekend")
	require.NoError(t, err)
	require.Equal(t, 1, cal.listCalls)

	// Monday reference: Saturday is Jan 6, window ends one day past Sunday.
	assert.Equal(t, testNow().AddDate(0, 0, 7), cal.lastMax)

	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Content, "totally free")
}

func TestHandleMessage_AvailabilityOpenWindow(t *testing.T) {
	cal := &fakeCalendar{}
	a := newTestAssistant(cal)

	var session Session
	_, err := a.HandleMessage(context.Background(), &session, "Am I available?")
	require.NoError(t, err)
	require.Equal(t, 1, cal.listCalls)

	// No window phrase: the provider applies its own default.
	assert.True(t, cal.lastMax.IsZero())
}

func TestHandleMessage_AvailabilityCollaboratorFailure(t *testing.T) {
	cal := &fakeCalendar{listErr: errors.New("timeout")}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "What's my availability this week?")

	var collabErr *CollaboratorError
	require.ErrorAs(t, err, &collabErr)
	assert.Equal(t, "list", collabErr.Op)
	assert.Contains(t, replies[len(replies)-1].Content, "Couldn't check availability")
}

func TestHandleMessage_Help(t *testing.T) {
	a := newTestAssistant(&fakeCalendar{})

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "help")
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Content, "Book a meeting next Tuesday at 4 PM")
}

func TestHandleMessage_UnknownIntent(t *testing.T) {
	cal := &fakeCalendar{}
	a := newTestAssistant(cal)

	var session Session
	replies, err := a.HandleMessage(context.Background(), &session, "tell me a joke")
	require.ErrorIs(t, err, ErrUnknownIntent)
	assert.Equal(t, 0, cal.listCalls)
	assert.Equal(t, 0, cal.createCalls)
	require.Len(t, replies, 1)
	assert.Contains(t, replies[0].Content, "not sure what you meant")
}

func TestHandleMessage_TranscriptAppendOnly(t *testing.T) {
	a := newTestAssistant(&fakeCalendar{})

	var session Session
	_, err := a.HandleMessage(context.Background(), &session, "help")
	require.NoError(t, err)
	first := session.Messages()

	_, err = a.HandleMessage(context.Background(), &session, "tell me a joke")
	require.ErrorIs(t, err, ErrUnknownIntent)
	all := session.Messages()

	// Earlier entries are never rewritten.
	require.Greater(t, len(all), len(first))
	assert.Equal(t, first, all[:len(first)])

	assert.Equal(t, RoleUser, all[0].Role)
	assert.Equal(t, "help", all[0].Content)
}

func TestSession_MessagesReturnsCopy(t *testing.T) {
	var session Session
	session.Append(RoleUser, "hello")

	messages := session.Messages()
	messages[0].Content = "mutated"

	assert.Equal(t, "hello", session.Messages()[0].Content)
}
