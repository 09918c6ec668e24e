package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches an explicit clock time: a 1-2 digit hour, optional
// ":MM" minutes, an optional space, and a required am/pm marker. Bare 24h
// times ("16:00") and vague periods ("afternoon") do not match.
var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s?(am|pm)`)

// HasClockTime reports whether text contains an explicit clock time such as
// "4 PM" or "10:30am".
func HasClockTime(text string) bool {
	return clockPattern.MatchString(text)
}

// extractClockTime parses the first explicit clock time in text into a
// 24-hour hour and minute. The second return is false when no clock time is
// present or the matched hour is out of range.
func extractClockTime(text string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, false
	}
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	// Convert to 24-hour clock. "12 am" is midnight, "12 pm" is noon.
	if strings.EqualFold(m[3], "pm") {
		if hour != 12 {
			hour += 12
		}
	} else if hour == 12 {
		hour = 0
	}

	return hour, minute, true
}
