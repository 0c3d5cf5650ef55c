// Package slot_tools provides MCP tools for finding meeting slots.
//
// The tools cover both busy-data sources: calendar files in a local
// directory and Google Calendar free/busy queries. All tools return the
// earliest start time at which enough attendees share a free stretch of
// the requested length.
package slot_tools
