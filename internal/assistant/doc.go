// Package assistant implements the conversational orchestrator.
//
// An Assistant takes one raw user message per turn, classifies its intent,
// resolves any date or time expression, performs at most one calendar
// operation through the CalendarService interface, and appends its replies
// to the caller's Session transcript. Failures become user-facing replies;
// a turn never panics.
package assistant
