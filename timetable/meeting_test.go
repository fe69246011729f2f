package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMeeting(t *testing.T, day, times string) Meeting {
	t.Helper()
	meetings, err := NewMeetings(day, times, "KELLER 301", "08/24-12/18")
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	return meetings[0]
}

func TestNewMeetingsExpandsDays(t *testing.T) {
	meetings, err := NewMeetings("MWF", "0900-0950a", "KELLER 301", "08/24-12/18")
	require.NoError(t, err)
	require.Len(t, meetings, 3)
	assert.Equal(t, Monday, meetings[0].Day)
	assert.Equal(t, Wednesday, meetings[1].Day)
	assert.Equal(t, Friday, meetings[2].Day)
	for _, m := range meetings {
		assert.Equal(t, "09:00 AM", m.Start.String())
		assert.Equal(t, "KELLER 301", m.Room)
	}
}

func TestConflictsWithOverlap(t *testing.T) {
	a := mustMeeting(t, "M", "0900-0950a")
	b := mustMeeting(t, "M", "0930-1045a")
	assert.True(t, a.ConflictsWith(b))
	assert.True(t, b.ConflictsWith(a))
}

func TestConflictsWithTouchingEndpoints(t *testing.T) {
	a := mustMeeting(t, "M", "0900-0950a")
	b := mustMeeting(t, "M", "0950-1045a")
	assert.True(t, a.ConflictsWith(b))
	assert.True(t, b.ConflictsWith(a))
}

func TestConflictsWithDisjoint(t *testing.T) {
	a := mustMeeting(t, "M", "0900-0950a")
	b := mustMeeting(t, "M", "1000-1045a")
	assert.False(t, a.ConflictsWith(b))
	assert.False(t, b.ConflictsWith(a))
}

func TestConflictsWithDifferentDays(t *testing.T) {
	a := mustMeeting(t, "M", "0900-0950a")
	b := mustMeeting(t, "W", "0900-0950a")
	assert.False(t, a.ConflictsWith(b))
}

func TestConflictsWithTBA(t *testing.T) {
	tba := mustMeeting(t, "TBA", "TBA")
	concrete := mustMeeting(t, "M", "0900-0950a")
	assert.False(t, tba.ConflictsWith(concrete))
	assert.False(t, concrete.ConflictsWith(tba))
	assert.False(t, tba.ConflictsWith(tba))

	// a TBA time on a concrete day is also indeterminate
	tbaTime := mustMeeting(t, "M", "TBA")
	assert.False(t, tbaTime.ConflictsWith(concrete))
}
