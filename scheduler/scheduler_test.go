package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kekoav/kala/timetable"
)

func section(t *testing.T, crn int, cid, days, times string) *timetable.Section {
	t.Helper()
	meetings, err := timetable.NewMeetings(days, times, "KELLER 301", "08/24-12/18")
	require.NoError(t, err)
	return &timetable.Section{
		CRN:      crn,
		Number:   "001",
		Course:   timetable.Course{CID: cid, Title: cid, Credits: "3"},
		Meetings: meetings,
	}
}

func crns(ps *PotentialSchedule) []int {
	sections := ps.Sections()
	out := make([]int, len(sections))
	for i, s := range sections {
		out[i] = s.CRN
	}
	return out
}

func TestSchedulesCartesian(t *testing.T) {
	// two sections per course, none conflicting: every pairing works
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 1002, "ICS 101", "T", "0900-0950a"),
		section(t, 2001, "MATH 241", "W", "0900-0950a"),
		section(t, 2002, "MATH 241", "R", "0900-0950a"),
	}

	results := Schedules(pool)
	require.Len(t, results, 4)

	seen := map[[2]int]bool{}
	for _, ps := range results {
		got := crns(ps)
		require.Len(t, got, 2)
		seen[[2]int{got[0], got[1]}] = true
	}
	assert.True(t, seen[[2]int{1001, 2001}])
	assert.True(t, seen[[2]int{1001, 2002}])
	assert.True(t, seen[[2]int{1002, 2001}])
	assert.True(t, seen[[2]int{1002, 2002}])
}

func TestSchedulesConflictPruning(t *testing.T) {
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 1002, "ICS 101", "T", "0900-0950a"),
		// conflicts with 1001 only
		section(t, 2001, "MATH 241", "M", "0930-1020a"),
	}

	results := Schedules(pool)
	require.Len(t, results, 1)
	assert.Equal(t, []int{1002, 2001}, crns(results[0]))
}

func TestSchedulesUnsatisfiable(t *testing.T) {
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 2001, "MATH 241", "M", "0900-0950a"),
	}

	required := map[string]struct{}{
		"ICS 101":  {},
		"MATH 241": {},
	}
	results := Solve(pool, required)
	assert.Empty(t, results)

	missing := MissingCourses(results, required)
	assert.Len(t, missing, 2)
}

func TestSchedulesTBANeverConflicts(t *testing.T) {
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 2001, "MATH 241", "TBA", "TBA"),
	}

	results := Schedules(pool)
	require.Len(t, results, 1)
	assert.Equal(t, []int{1001, 2001}, crns(results[0]))
}

func TestSchedulesDedupAcrossOrders(t *testing.T) {
	// three mutually compatible courses reached in 3! insertion
	// orders still yield one schedule
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 2001, "MATH 241", "T", "0900-0950a"),
		section(t, 3001, "CHEM 161", "W", "0900-0950a"),
	}

	results := Schedules(pool)
	require.Len(t, results, 1)
	assert.Equal(t, []int{1001, 2001, 3001}, crns(results[0]))
}

func TestSchedulesEmptyPool(t *testing.T) {
	results := Schedules(nil)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Sections())
}

func TestSolvePartialRequirement(t *testing.T) {
	// only ICS 101 is required; the MATH section is optional, so the
	// minimal covering schedule and its extension are both reported
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
		section(t, 2001, "MATH 241", "T", "0900-0950a"),
	}
	required := map[string]struct{}{"ICS 101": {}}

	results := Solve(pool, required)
	require.Len(t, results, 2)

	sizes := map[int]bool{}
	for _, ps := range results {
		_, ok := ps.Courses()["ICS 101"]
		assert.True(t, ok)
		sizes[len(ps.Sections())] = true
	}
	assert.True(t, sizes[1], "minimal covering schedule")
	assert.True(t, sizes[2], "extended covering schedule")
}

func TestMissingCoursesSatisfied(t *testing.T) {
	pool := []*timetable.Section{
		section(t, 1001, "ICS 101", "M", "0900-0950a"),
	}
	required := map[string]struct{}{"ICS 101": {}}
	results := Solve(pool, required)
	assert.Empty(t, MissingCourses(results, required))
}

func TestSchedulesSameCIDDifferentTitles(t *testing.T) {
	// special-topics listings share a CID but publish per-section
	// titles; they are still one course, so each section is its own
	// one-course schedule
	topicA := section(t, 1001, "ICS 691", "M", "0900-0950a")
	topicA.Course.Title = "Advanced Topics: Systems"
	topicB := section(t, 1002, "ICS 691", "T", "0900-0950a")
	topicB.Course.Title = "Advanced Topics: Theory"

	results := Schedules([]*timetable.Section{topicA, topicB})
	require.Len(t, results, 2)
	for _, ps := range results {
		require.Len(t, ps.Sections(), 1)
	}
}
