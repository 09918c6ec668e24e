// Package nlp implements the natural-language interpretation pipeline that
// turns a free-text chat message into a structured booking or availability
// request.
//
// The pipeline is a set of small, deterministic components:
//
//   - ClassifyIntent assigns one of a fixed set of intents to a message
//   - Normalize strips filler vocabulary to surface date/time tokens
//   - HasClockTime detects explicit clock times such as "4 PM" or "10:30 am"
//   - ResolveWeekday maps phrases like "next Tuesday" to a concrete date
//   - Parser resolves normalized text into a concrete point in time
//   - BuildWindow derives an availability query range from phrases like
//     "this week" or "this weekend"
//
// All components are pure functions of their inputs; time-dependent ones
// take the reference instant explicitly so behavior is reproducible in tests.
// Matching is rule-based on purpose: an ordered keyword list is precisely
// reproducible in a way a statistical model is not.
package nlp
