// Package calendar materializes per-person busy intervals from their
// sources and hands them to the slot search as a BusyMap.
//
// Two sources are supported:
//   - a directory of plain-text calendar files, one busy record per line
//     (see the interval package for the record format)
//   - the Google Calendar free/busy API, queried per attendee email
//
// Both sources prune intervals that already ended relative to a caller
// supplied "now" and preserve calendar insertion order, which the search
// engine relies on for deterministic combination enumeration.
package calendar
