package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tailortalk/tailortalk/internal/calendar"
	"github.com/tailortalk/tailortalk/internal/instrumentation"
	"github.com/tailortalk/tailortalk/internal/logging"
	"github.com/tailortalk/tailortalk/internal/nlp"
)

const (
	// DefaultEventTitle is the summary used for booked events.
	DefaultEventTitle = "Meeting with TailorTalk"

	// MeetingDuration is the fixed length of a booked meeting.
	MeetingDuration = time.Hour

	// confirmationLayout renders the booked time in the confirmation reply,
	// e.g. "Tuesday, 02 January 2024 at 04:00 PM".
	confirmationLayout = "Monday, 02 January 2006 at 03:04 PM"

	// listingLayout renders event start times in availability listings.
	listingLayout = "2006-01-02 15:04"
)

const helpText = `Here's what I can help you with:
- "Book a meeting next Tuesday at 4 PM"
- "What's my availability this week?"
- "Show me free time this weekend"

Try: "Schedule something this Friday" or "Book 3 July at 2 PM"`

const unknownIntentReply = "I'm not sure what you meant. Try asking me to book or check availability."

// CalendarService is the calendar collaborator as seen by the assistant.
// Both the Google client and the REST proxy client satisfy it.
type CalendarService interface {
	// ListEvents returns events between timeMin and timeMax ordered by start
	// time. A zero timeMax lets the provider apply its default window.
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]calendar.Event, error)

	// CreateEvent books an event and returns the created record.
	CreateEvent(ctx context.Context, input calendar.EventInput) (*calendar.Event, error)
}

// Config holds the assistant's dependencies. Calendar is required; the
// remaining fields default to sensible production values.
type Config struct {
	Calendar CalendarService

	// Location is the single timezone all times are resolved in.
	Location *time.Location

	// TimeZone is the IANA zone name sent to the calendar provider.
	// Defaults to the Location's name.
	TimeZone string

	Logger  *slog.Logger
	Metrics *instrumentation.Metrics

	// Now supplies the current instant. Tests pin it.
	Now func() time.Time
}

// Assistant orchestrates one conversation turn at a time: classify the
// intent, resolve dates, make at most one calendar call, reply.
type Assistant struct {
	calendar CalendarService
	parser   *nlp.Parser
	loc      *time.Location
	timeZone string
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
	now      func() time.Time
}

// New creates an Assistant from the given configuration.
func New(cfg Config) *Assistant {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	timeZone := cfg.TimeZone
	if timeZone == "" {
		timeZone = loc.String()
	}

	return &Assistant{
		calendar: cfg.Calendar,
		parser:   nlp.NewParser(loc).WithClock(now),
		loc:      loc,
		timeZone: timeZone,
		logger:   logger,
		metrics:  metrics,
		now:      now,
	}
}

// HandleMessage processes one user message. The message and every assistant
// reply are appended to session; the replies produced this turn are also
// returned. A non-nil error classifies why the turn could not complete
// (ErrUnknownIntent, ParseError, CollaboratorError) while the transcript
// still carries a user-facing explanation, so callers may ignore it.
func (a *Assistant) HandleMessage(ctx context.Context, session *Session, input string) ([]ChatMessage, error) {
	began := time.Now()

	session.Append(RoleUser, input)
	before := session.Len()

	intent := nlp.ClassifyIntent(input)
	logger := logging.WithIntent(a.logger, intent.String())

	var err error
	switch intent {
	case nlp.IntentBook:
		err = a.handleBooking(ctx, session, input)
	case nlp.IntentCheck:
		err = a.handleAvailability(ctx, session, input)
	case nlp.IntentHelp:
		session.AppendMarkdown(RoleAssistant, helpText)
	default:
		session.Append(RoleAssistant, unknownIntentReply)
		err = ErrUnknownIntent
	}

	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
	}
	a.metrics.RecordChatTurn(ctx, intent.String(), status)
	logger.LogAttrs(ctx, slog.LevelInfo, "chat turn processed",
		logging.Operation("chat"),
		logging.Status(status),
		logging.Duration(time.Since(began)),
		logging.Err(err),
	)

	return session.Messages()[before:], err
}

// handleBooking resolves the requested time and books a one-hour event.
func (a *Assistant) handleBooking(ctx context.Context, session *Session, input string) error {
	cleaned := nlp.Normalize(input)
	session.Append(RoleAssistant, fmt.Sprintf("Trying to parse: %q", cleaned))

	start, err := a.parser.Parse(input)
	if err != nil {
		session.Append(RoleAssistant, `Couldn't understand your date. Try: "Book for 3 July at 10 AM".`)
		a.metrics.RecordParseFailure(ctx)
		return &ParseError{Input: cleaned, Err: err}
	}

	end := start.Add(MeetingDuration)
	session.Append(RoleAssistant, fmt.Sprintf("Booking from %s to %s...",
		start.Format(time.RFC3339), end.Format(time.RFC3339)))

	began := time.Now()
	created, err := a.calendar.CreateEvent(ctx, calendar.EventInput{
		Summary:  DefaultEventTitle,
		Start:    start,
		End:      end,
		TimeZone: a.timeZone,
	})
	a.metrics.RecordCalendarOperation(ctx, "create", statusOf(err), time.Since(began))
	if err != nil {
		session.Append(RoleAssistant, fmt.Sprintf("Booking failed: %v", err))
		return &CollaboratorError{Op: "create", Err: err}
	}

	reply := fmt.Sprintf("Meeting booked for **%s**", start.Format(confirmationLayout))
	if created != nil && created.HTMLLink != "" {
		reply += fmt.Sprintf("\n\n[View in Google Calendar](%s)", created.HTMLLink)
	}
	session.AppendMarkdown(RoleAssistant, reply)

	return nil
}

// handleAvailability lists events in the window implied by the message.
func (a *Assistant) handleAvailability(ctx context.Context, session *Session, input string) error {
	window := nlp.BuildWindow(input, a.now().In(a.loc))

	var timeMax time.Time
	if window.HasEnd {
		timeMax = window.End
	}

	began := time.Now()
	events, err := a.calendar.ListEvents(ctx, window.Start, timeMax)
	a.metrics.RecordCalendarOperation(ctx, "list", statusOf(err), time.Since(began))
	if err != nil {
		session.Append(RoleAssistant, fmt.Sprintf("Couldn't check availability: %v", err))
		return &CollaboratorError{Op: "list", Err: err}
	}

	if len(events) == 0 {
		session.Append(RoleAssistant, "You're totally free in the selected time range!")
		return nil
	}

	session.Append(RoleAssistant, "Here are your upcoming events:")
	for _, event := range events {
		summary := event.Summary
		if summary == "" {
			summary = "No Title"
		}
		session.AppendMarkdown(RoleAssistant, fmt.Sprintf("- **%s** at %s",
			summary, event.Start.In(a.loc).Format(listingLayout)))
	}

	return nil
}

func statusOf(err error) string {
	if err != nil {
		return instrumentation.StatusError
	}
	return instrumentation.StatusSuccess
}
