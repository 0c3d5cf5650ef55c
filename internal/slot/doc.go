// Package slot implements the earliest-slot search over per-person busy
// calendars.
//
// Given a busy map, a required duration and a minimum headcount, the search
// enumerates every group of exactly that many calendars, pools and sorts the
// group's busy intervals, and looks for the earliest moment the whole group
// is free long enough. See FindEarliest for the exact candidate rules.
package slot
