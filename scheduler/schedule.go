// Package scheduler enumerates conflict-free schedules over a set of
// candidate sections.
package scheduler

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kekoav/kala/timetable"
)

// PotentialSchedule is one node of the search: the sections chosen so
// far plus the candidates still addable. Values are immutable; growing
// a schedule produces a new one. Courses are identified by CID alone;
// title or credit differences between same-CID sections do not make
// them separate courses.
type PotentialSchedule struct {
	sections  []*timetable.Section
	courses   map[string]struct{}
	remaining []*timetable.Section
}

// newRoot seeds the search with every candidate still available and
// nothing chosen.
func newRoot(candidates []*timetable.Section) *PotentialSchedule {
	return &PotentialSchedule{
		courses:   map[string]struct{}{},
		remaining: candidates,
	}
}

// Sections returns the chosen sections ordered by CRN.
func (ps *PotentialSchedule) Sections() []*timetable.Section {
	out := make([]*timetable.Section, len(ps.sections))
	copy(out, ps.sections)
	sort.Slice(out, func(i, j int) bool { return out[i].CRN < out[j].CRN })
	return out
}

// Courses returns the CIDs covered by the chosen sections.
func (ps *PotentialSchedule) Courses() map[string]struct{} {
	out := make(map[string]struct{}, len(ps.courses))
	for cid := range ps.courses {
		out[cid] = struct{}{}
	}
	return out
}

// grow produces the schedule reached by choosing one more section. The
// remaining pool drops every section that conflicts with the choice
// and every other section of the chosen course, so no descendant can
// pick the same course twice.
func (ps *PotentialSchedule) grow(choice *timetable.Section) *PotentialSchedule {
	next := &PotentialSchedule{
		sections: append(append([]*timetable.Section{}, ps.sections...), choice),
		courses:  make(map[string]struct{}, len(ps.courses)+1),
	}
	for cid := range ps.courses {
		next.courses[cid] = struct{}{}
	}
	next.courses[choice.Course.CID] = struct{}{}

	for _, candidate := range ps.remaining {
		if candidate == choice || candidate.Course.CID == choice.Course.CID {
			continue
		}
		if candidate.ConflictsWith(choice) {
			continue
		}
		next.remaining = append(next.remaining, candidate)
	}
	return next
}

// successors enumerates every schedule reachable by adding one
// section.
func (ps *PotentialSchedule) successors() []*PotentialSchedule {
	out := make([]*PotentialSchedule, 0, len(ps.remaining))
	for _, candidate := range ps.remaining {
		out = append(out, ps.grow(candidate))
	}
	return out
}

// covers reports whether the chosen sections span every required CID.
func (ps *PotentialSchedule) covers(required map[string]struct{}) bool {
	for cid := range required {
		if _, ok := ps.courses[cid]; !ok {
			return false
		}
	}
	return true
}

// key is a canonical identity for the chosen section set, so the
// search can recognize the same combination reached through different
// insertion orders.
func (ps *PotentialSchedule) key() string {
	crns := make([]int, len(ps.sections))
	for i, s := range ps.sections {
		crns[i] = s.CRN
	}
	sort.Ints(crns)
	var b strings.Builder
	for i, crn := range crns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(crn))
	}
	return b.String()
}
