package calendar

import (
	"github.com/teemow/meetfinder/internal/interval"
)

// ID identifies one person's calendar. It carries no structure beyond
// uniqueness; loaders use file names, the Google source uses attendee
// email addresses.
type ID string

// BusyMap maps calendars to their busy intervals. Insertion order of
// calendars is preserved so that combination enumeration over the map is
// deterministic across runs.
//
// A BusyMap is built once per search and consumed read-only afterwards.
type BusyMap struct {
	ids  []ID
	busy map[ID][]interval.TimeInterval
}

// NewBusyMap returns an empty BusyMap.
func NewBusyMap() *BusyMap {
	return &BusyMap{busy: make(map[ID][]interval.TimeInterval)}
}

// Add records the busy intervals for a calendar. Adding an ID that is
// already present replaces its intervals without changing its position.
func (m *BusyMap) Add(id ID, intervals []interval.TimeInterval) {
	if _, ok := m.busy[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.busy[id] = intervals
}

// IDs returns the calendar identifiers in insertion order.
// The returned slice must not be modified.
func (m *BusyMap) IDs() []ID {
	return m.ids
}

// Intervals returns the busy intervals recorded for id, nil if unknown.
// The returned slice must not be modified.
func (m *BusyMap) Intervals(id ID) []interval.TimeInterval {
	return m.busy[id]
}

// Len returns the number of calendars in the map.
func (m *BusyMap) Len() int {
	return len(m.ids)
}
