// Package calendar provides clients for the calendar provider that backs
// TailorTalk bookings and availability queries.
//
// Two implementations of the same surface are offered: Client talks to the
// Google Calendar API directly, and RestClient talks to a TailorTalk API
// server that proxies it. Both expose the two operations the assistant
// needs: listing events in a time range (ordered by start time) and
// creating a single event.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx, "primary")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	events, err := client.ListEvents(ctx, time.Now(), time.Now().AddDate(0, 0, 7))
//	if err != nil {
//	    log.Fatal(err)
//	}
package calendar
