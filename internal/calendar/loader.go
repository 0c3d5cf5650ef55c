package calendar

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teemow/meetfinder/internal/interval"
)

// calendarExt is the file extension that marks a file as a calendar.
const calendarExt = ".txt"

// ErrNoCalendars indicates that a calendar directory contained no calendar
// files at all.
var ErrNoCalendars = errors.New("no calendar files found")

// LoadDir reads every calendar file (one busy record per line) from dir and
// builds a BusyMap keyed by file name. Intervals that ended at or before now
// are dropped; intervals that straddle now are kept unclipped.
//
// Files are loaded in lexical file-name order, which fixes the combination
// enumeration order of the subsequent search. A single malformed record
// aborts the whole load: calendar data that fails to parse is not trusted
// enough to schedule against.
func LoadDir(dir string, now time.Time) (*BusyMap, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar directory: %w", err)
	}

	busy := NewBusyMap()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != calendarExt {
			continue
		}

		intervals, err := loadFile(filepath.Join(dir, entry.Name()), now)
		if err != nil {
			return nil, fmt.Errorf("calendar %s: %w", entry.Name(), err)
		}
		busy.Add(ID(entry.Name()), intervals)
	}

	if busy.Len() == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCalendars, dir)
	}

	return busy, nil
}

func loadFile(path string, now time.Time) ([]interval.TimeInterval, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var intervals []interval.TimeInterval
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		record := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(record) == "" {
			continue
		}

		iv, err := interval.Parse(record)
		if err != nil {
			return nil, err
		}

		// Past busy time does not constrain future slots.
		if iv.EndsAfter(now) {
			intervals = append(intervals, iv)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return intervals, nil
}
