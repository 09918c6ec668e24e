package nlp

import (
	"strings"
	"time"
)

// Window is a derived availability query range. HasEnd is false when the
// text implied no bound; the calendar collaborator then applies its own
// default window.
type Window struct {
	Start  time.Time
	End    time.Time
	HasEnd bool
}

// BuildWindow derives an availability window from optional user text,
// starting at now. "weekend" is matched before the generic "week" substring
// so "this weekend" yields the upcoming Saturday through Sunday (the end is
// one day past Sunday, making the range inclusive of the full day); any
// other mention of "week" yields seven days out. Otherwise the end is left
// open.
func BuildWindow(text string, now time.Time) Window {
	w := Window{Start: now}
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "weekend"):
		saturday := now.AddDate(0, 0, int(time.Saturday-now.Weekday()+7)%7)
		sunday := saturday.AddDate(0, 0, 1)
		w.End = sunday.AddDate(0, 0, 1)
		w.HasEnd = true
	case strings.Contains(lower, "week"):
		w.End = now.AddDate(0, 0, 7)
		w.HasEnd = true
	}

	return w
}
