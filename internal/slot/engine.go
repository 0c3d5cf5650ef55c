package slot

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/teemow/meetfinder/internal/calendar"
	"github.com/teemow/meetfinder/internal/interval"
)

var (
	// ErrNoCalendars indicates the search was given an empty busy map.
	ErrNoCalendars = errors.New("no calendars to search")

	// ErrHeadcountExceedsCalendars indicates more people were requested than
	// calendars exist.
	ErrHeadcountExceedsCalendars = errors.New("requested headcount exceeds number of calendars")

	// ErrNoSlotFound indicates no combination produced a usable slot.
	ErrNoSlotFound = errors.New("no available slot found")
)

// Request describes one slot search.
type Request struct {
	// DurationMinutes is the required meeting length.
	DurationMinutes int

	// MinPeople is how many people must be simultaneously free.
	MinPeople int
}

// Validate reports whether the request parameters are usable.
func (r Request) Validate() error {
	if r.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d minutes", r.DurationMinutes)
	}
	if r.MinPeople <= 0 {
		return fmt.Errorf("headcount must be positive, got %d", r.MinPeople)
	}
	return nil
}

// Duration returns the requested meeting length.
func (r Request) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// FindEarliest returns the start of the earliest slot of the requested
// duration where at least MinPeople of the calendars in busy are
// simultaneously free, measured from now.
//
// Groups of exactly MinPeople calendars are examined in lexicographic
// order over the busy map's calendar order. If any group is free right
// away the answer is now itself. Otherwise the first group's candidate
// slot is kept: either the first sufficiently long gap between its busy
// intervals, or one second past the end of its last busy interval when
// no such gap exists.
func FindEarliest(busy *calendar.BusyMap, req Request, now time.Time) (time.Time, error) {
	if err := req.Validate(); err != nil {
		return time.Time{}, err
	}
	if busy == nil || busy.Len() == 0 {
		return time.Time{}, ErrNoCalendars
	}
	if req.MinPeople > busy.Len() {
		return time.Time{}, fmt.Errorf("%w: want %d, have %d", ErrHeadcountExceedsCalendars, req.MinPeople, busy.Len())
	}

	duration := req.Duration()
	ids := busy.IDs()

	var result time.Time
	haveResult := false

	combos := newCombinations(len(ids), req.MinPeople)
	for {
		pick, ok := combos.next()
		if !ok {
			break
		}

		var pool []interval.TimeInterval
		for _, idx := range pick {
			pool = append(pool, busy.Intervals(ids[idx])...)
		}

		// Everyone in the group is free for good.
		if len(pool) == 0 {
			return now, nil
		}

		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Start.Before(pool[j].Start)
		})

		// The group is free from now until its first busy interval.
		if pool[0].Start.After(now) && pool[0].Start.Sub(now) >= duration {
			return now, nil
		}

		// Later groups only matter if they can answer with now itself.
		if haveResult {
			continue
		}
		result = scan(pool, duration)
		haveResult = true
	}

	if !haveResult {
		return time.Time{}, ErrNoSlotFound
	}
	return result, nil
}

// scan walks a start-sorted pool of busy intervals and returns the start of
// the first gap of at least d, falling back to one second past the end of
// the latest busy interval.
func scan(pool []interval.TimeInterval, d time.Duration) time.Time {
	fallback := pool[0].End
	for _, iv := range pool[1:] {
		if iv.End.After(fallback) {
			fallback = iv.End
		}
	}

	prev := pool[0]
	for _, cur := range pool[1:] {
		switch {
		case !cur.Start.Before(prev.Start) && !cur.End.After(prev.End):
			// Nested inside the current span; no new information.
			continue
		case cur.Start.Before(prev.End) && cur.End.After(prev.End):
			// Overlaps and extends the current span.
			prev = cur
		default:
			if cur.Start.Sub(prev.End) >= d && prev.End.Before(fallback) {
				return prev.End
			}
			prev = cur
		}
	}

	return fallback.Add(time.Second)
}
