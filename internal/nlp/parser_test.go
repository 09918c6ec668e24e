package nlp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestParser returns a parser pinned to Monday 2024-01-01 09:00 UTC.
func newTestParser() *Parser {
	return NewParser(time.UTC).WithClock(func() time.Time {
		return time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)
	})
}

func TestParseAbsoluteDates(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		text     string
		expected time.Time
	}{
		{
			name:     "day month with time",
			text:     "Book for 3 July at 10 AM",
			expected: time.Date(2024, time.July, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "month day with time",
			text:     "book july 3 at 2 pm",
			expected: time.Date(2024, time.July, 3, 14, 0, 0, 0, time.UTC),
		},
		{
			name:     "ordinal day",
			text:     "schedule 3rd july",
			expected: time.Date(2024, time.July, 3, DefaultHour, 0, 0, 0, time.UTC),
		},
		{
			name:     "iso date",
			text:     "book 2024-07-03 at 9 am",
			expected: time.Date(2024, time.July, 3, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "numeric day month",
			text:     "book 3/7 at 2 pm",
			expected: time.Date(2024, time.July, 3, 14, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit year",
			text:     "book 3 july 2025",
			expected: time.Date(2025, time.July, 3, DefaultHour, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.text)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.expected), "Parse(%q) = %v, want %v", tt.text, got, tt.expected)
		})
	}
}

// A month/day without a year that has already passed rolls over to the next
// year instead of resolving into the past.
func TestParsePrefersFuture(t *testing.T) {
	// Pin to 1 August 2024: "3 july" has passed.
	p := NewParser(time.UTC).WithClock(func() time.Time {
		return time.Date(2024, time.August, 1, 9, 0, 0, 0, time.UTC)
	})

	got, err := p.Parse("book 3 july at 10 am")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 3, 10, 0, 0, 0, time.UTC), got)

	// An explicit year is never adjusted.
	got, err = p.Parse("book 3 july 2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
}

func TestParseRelativeDays(t *testing.T) {
	p := newTestParser()

	got, err := p.Parse("book a meeting tomorrow at 4 pm")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 2, 16, 0, 0, 0, time.UTC), got)

	got, err = p.Parse("schedule something today at 11 am")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 11, 0, 0, 0, time.UTC), got)

	got, err = p.Parse("book the day after tomorrow")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 3, DefaultHour, 0, 0, 0, time.UTC), got)
}

// A bare clock time resolves to today while still ahead, otherwise tomorrow.
func TestParseTimeOnly(t *testing.T) {
	p := newTestParser() // now is 09:00

	got, err := p.Parse("book at 4 pm")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 16, 0, 0, 0, time.UTC), got)

	got, err = p.Parse("book at 8 am")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC), got)
}

// Weekday phrases fall through general parsing to the weekday resolver and
// carry the explicit clock time when one is present.
func TestParseWeekdayFallback(t *testing.T) {
	p := newTestParser()

	got, err := p.Parse("Book a meeting next Tuesday at 4 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 2, 16, 0, 0, 0, time.UTC), got)

	got, err = p.Parse("schedule something this friday")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 5, DefaultHour, 0, 0, 0, time.UTC), got)

	got, err = p.Parse("next monday")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, DefaultHour, 0, 0, 0, time.UTC), got)
}

func TestParseFailure(t *testing.T) {
	p := newTestParser()

	for _, text := range []string{"asdkjaslkd", "", "book a meeting", "sometime soon"} {
		_, err := p.Parse(text)
		assert.True(t, errors.Is(err, ErrDateNotUnderstood), "Parse(%q) err = %v", text, err)
	}
}

func TestParseFixedLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	p := NewParser(loc).WithClock(func() time.Time {
		return time.Date(2024, time.January, 1, 9, 0, 0, 0, loc)
	})

	got, err := p.Parse("book tomorrow at 4 pm")
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 16, got.Hour())
}
