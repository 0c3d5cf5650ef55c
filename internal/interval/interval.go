package interval

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted for busy records in calendar files.
const (
	// LayoutDateTime is the timestamp layout used by the two-part record form.
	LayoutDateTime = "2006-01-02 15:04:05"

	// LayoutDate is the layout used by the one-part, whole-day record form.
	LayoutDate = "2006-01-02"
)

// rangeSeparator splits the start and end timestamps of a two-part record.
const rangeSeparator = " - "

// TimeInterval is one contiguous period during which a person is unavailable.
// Values are immutable once constructed.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// EndsAfter reports whether the interval ends strictly after t.
// Intervals that straddle t count as ending after it.
func (iv TimeInterval) EndsAfter(t time.Time) bool {
	return iv.End.After(t)
}

// String formats the interval the same way calendar files encode it.
func (iv TimeInterval) String() string {
	return iv.Start.Format(LayoutDateTime) + rangeSeparator + iv.End.Format(LayoutDateTime)
}

// FormatError indicates a busy record that matches neither accepted form.
type FormatError struct {
	Record string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("record %q does not match format %q or format %q",
		e.Record, LayoutDateTime+rangeSeparator+LayoutDateTime, LayoutDate)
}

// Parse converts a single busy record into a TimeInterval.
//
// Two forms are accepted, tried in order:
//
//	"2006-01-02 15:04:05 - 2006-01-02 15:04:05"  explicit range, taken verbatim
//	"2006-01-02"                                 whole day busy, 00:00:00 to 23:59:59
//
// Records carry no zone information, so they are interpreted as local wall
// clock time. This keeps them in the same frame as the time.Now() instant
// callers compare them against.
//
// Anything else fails with a *FormatError naming the offending record.
// An explicit range whose end precedes its start is accepted as-is; callers
// that care must reject it themselves.
func Parse(record string) (TimeInterval, error) {
	if start, end, ok := strings.Cut(record, rangeSeparator); ok {
		s, serr := time.ParseInLocation(LayoutDateTime, start, time.Local)
		e, eerr := time.ParseInLocation(LayoutDateTime, end, time.Local)
		if serr == nil && eerr == nil {
			return TimeInterval{Start: s, End: e}, nil
		}
	}

	if day, err := time.ParseInLocation(LayoutDate, record, time.Local); err == nil {
		return TimeInterval{
			Start: day,
			End:   day.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
		}, nil
	}

	return TimeInterval{}, &FormatError{Record: record}
}
