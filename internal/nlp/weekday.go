package nlp

import (
	"strings"
	"time"
)

// weekdayNames maps weekday mentions to their time.Weekday value. Scan order
// is fixed so the first matching name in the list wins.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// ResolveWeekday maps a relative weekday phrase in text ("next tuesday",
// "this friday", or a bare weekday name) to a concrete calendar date,
// relative to today. The offset from today is normalized into [0,6], so the
// named weekday is never in the past. "next" pushes a zero offset a full
// week out ("next Monday" said on a Monday means seven days from now); with
// a nonzero offset the upcoming occurrence is already the next one, so
// "next" is taken at face value. "this" always uses the offset as computed.
//
// The returned date is truncated to midnight in today's location; callers
// attach a time-of-day. The second return is false when no weekday name
// occurs in the text.
func ResolveWeekday(text string, today time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, wd.name) {
			continue
		}

		delta := (int(wd.day) - int(today.Weekday()) + 7) % 7
		if delta == 0 && strings.Contains(lower, "next") {
			delta = 7
		}

		date := today.AddDate(0, 0, delta)
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, today.Location()), true
	}

	return time.Time{}, false
}
