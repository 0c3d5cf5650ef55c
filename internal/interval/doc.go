// Package interval defines the busy time interval type and the parser for
// the textual record format used by calendar files.
//
// Two record forms are accepted:
//   - "YYYY-MM-DD HH:MM:SS - YYYY-MM-DD HH:MM:SS" for an explicit range
//   - "YYYY-MM-DD" for a whole day marked busy
//
// The format is the compatibility contract with existing calendar files and
// must not be extended silently.
package interval
