// Package google manages OAuth2 credentials for the Google Calendar API.
//
// Tokens are stored per account under the user cache directory as
// "google-<account>.token". Client credentials are read from the
// GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.
package google
