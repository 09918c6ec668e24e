// Package google handles OAuth2 authentication for the Google Calendar API,
// including the token cache on disk and the authorization bootstrap flow.
package google
