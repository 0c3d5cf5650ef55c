package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/meetfinder/internal/interval"
)

func TestBusyMap_PreservesInsertionOrder(t *testing.T) {
	busy := NewBusyMap()
	busy.Add("charlie.txt", nil)
	busy.Add("alice.txt", nil)
	busy.Add("bob.txt", nil)

	assert.Equal(t, []ID{"charlie.txt", "alice.txt", "bob.txt"}, busy.IDs())
	assert.Equal(t, 3, busy.Len())
}

func TestBusyMap_AddReplacesWithoutReordering(t *testing.T) {
	first := []interval.TimeInterval{{
		Start: time.Date(2030, 5, 14, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 5, 14, 11, 0, 0, 0, time.UTC),
	}}
	second := []interval.TimeInterval{{
		Start: time.Date(2030, 5, 15, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 5, 15, 11, 0, 0, 0, time.UTC),
	}}

	busy := NewBusyMap()
	busy.Add("alice.txt", first)
	busy.Add("bob.txt", nil)
	busy.Add("alice.txt", second)

	assert.Equal(t, []ID{"alice.txt", "bob.txt"}, busy.IDs())
	assert.Equal(t, second, busy.Intervals("alice.txt"))
}

func TestBusyMap_IntervalsForUnknownIDIsNil(t *testing.T) {
	busy := NewBusyMap()
	require.Nil(t, busy.Intervals("nobody.txt"))
}
