package nlp

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrDateNotUnderstood is returned when no date or time could be resolved
// from the input text.
var ErrDateNotUnderstood = errors.New("date not understood")

// DefaultHour is the time-of-day attached to a resolved date when the text
// carries no explicit clock time.
const DefaultHour = 10

// monthNames maps month mentions, including common abbreviations, to their
// time.Month value.
var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sept": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	monthAlternation = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`

	// "3 july", "3rd july 2026"
	dayMonthPattern = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)? (` + monthAlternation + `)(?: (\d{4}))?\b`)
	// "july 3", "july 3rd 2026"
	monthDayPattern = regexp.MustCompile(`\b(` + monthAlternation + `) (\d{1,2})(?:st|nd|rd|th)?(?: (\d{4}))?\b`)
	// "2026-07-03"
	isoDatePattern = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	// "3/7" or "3/7/2026", day first
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}))?\b`)
)

// Parser resolves normalized booking text into a concrete point in time in a
// single fixed timezone. General parsing of absolute and relative date
// expressions is tried first; bare weekday mentions fall back to
// ResolveWeekday. Ambiguous dates prefer the future: a month/day without a
// year that has already passed rolls over to the next year, and a bare clock
// time that has passed today means tomorrow.
type Parser struct {
	loc *time.Location
	now func() time.Time
}

// NewParser creates a Parser resolving times in the given location.
func NewParser(loc *time.Location) *Parser {
	return &Parser{
		loc: loc,
		now: time.Now,
	}
}

// WithClock returns a Parser that reads the current instant from now.
// Tests use this to pin the reference time.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	return &Parser{
		loc: p.loc,
		now: now,
	}
}

// Parse resolves raw booking text into a point in time. The text is
// normalized first; general date/time parsing is attempted on the residue,
// then the weekday resolver as a narrower fallback. When no explicit clock
// time is found, the resolved date carries the default time-of-day.
func (p *Parser) Parse(raw string) (time.Time, error) {
	text := Normalize(raw)

	if t, ok := p.parseGeneral(text); ok {
		return t, nil
	}

	if date, ok := ResolveWeekday(text, p.today()); ok {
		hour, minute := DefaultHour, 0
		if h, m, ok := extractClockTime(text); ok {
			hour, minute = h, m
		}
		return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.loc), nil
	}

	return time.Time{}, ErrDateNotUnderstood
}

// parseGeneral handles absolute dates ("3 july at 10 am", "2026-07-03"),
// relative day words ("today", "tomorrow"), and bare clock times. Weekday
// phrases are left to ResolveWeekday.
func (p *Parser) parseGeneral(text string) (time.Time, bool) {
	now := p.now().In(p.loc)
	hour, minute, hasClock := extractClockTime(text)
	if !hasClock {
		hour, minute = DefaultHour, 0
	}

	if year, month, day, explicitYear, ok := p.extractDate(text, now); ok {
		t := time.Date(year, month, day, hour, minute, 0, 0, p.loc)
		if !explicitYear && t.Before(now) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}

	// A clock time with no date means today, or tomorrow once it has passed.
	// Weekday mentions are excluded so "tuesday 4 pm" reaches the resolver.
	if hasClock && !containsWeekdayName(text) {
		t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, p.loc)
		if !t.After(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, true
	}

	return time.Time{}, false
}

// extractDate finds an absolute or relative-day date expression in text.
// explicitYear reports whether the text itself named the year, which
// disables the prefer-future year rollover.
func (p *Parser) extractDate(text string, now time.Time) (year int, month time.Month, day int, explicitYear bool, ok bool) {
	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		year, _ = strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
		if mon >= 1 && mon <= 12 && validDay(day) {
			return year, time.Month(mon), day, true, true
		}
	}

	switch {
	case strings.Contains(text, "day after tomorrow"):
		t := now.AddDate(0, 0, 2)
		return t.Year(), t.Month(), t.Day(), true, true
	case strings.Contains(text, "tomorrow"):
		t := now.AddDate(0, 0, 1)
		return t.Year(), t.Month(), t.Day(), true, true
	case strings.Contains(text, "today"):
		return now.Year(), now.Month(), now.Day(), true, true
	}

	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		if validDay(day) {
			return yearOrDefault(m[3], now), monthNames[m[2]], day, m[3] != "", true
		}
	}

	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[2])
		if validDay(day) {
			return yearOrDefault(m[3], now), monthNames[m[1]], day, m[3] != "", true
		}
	}

	if m := numericDatePattern.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2])
		if mon >= 1 && mon <= 12 && validDay(day) {
			return yearOrDefault(m[3], now), time.Month(mon), day, m[3] != "", true
		}
	}

	return 0, 0, 0, false, false
}

func (p *Parser) today() time.Time {
	return p.now().In(p.loc)
}

func yearOrDefault(match string, now time.Time) int {
	if match == "" {
		return now.Year()
	}
	year, _ := strconv.Atoi(match)
	return year
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}

func containsWeekdayName(text string) bool {
	for _, wd := range weekdayNames {
		if strings.Contains(text, wd.name) {
			return true
		}
	}
	return false
}
