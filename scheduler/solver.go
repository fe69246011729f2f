package scheduler

import "github.com/kekoav/kala/timetable"

// Solver runs one enumeration over a candidate pool. Not safe for
// concurrent use; build a fresh Solver per request.
type Solver struct {
	required map[string]struct{}
	seen     map[string]struct{}
	results  []*PotentialSchedule
}

// Schedules enumerates every conflict-free section combination that
// covers all distinct CIDs present in the candidate pool, with exactly
// one section per course. Two combinations with the same section set
// are reported once. An empty pool yields the empty schedule.
func Schedules(candidates []*timetable.Section) []*PotentialSchedule {
	required := make(map[string]struct{})
	for _, s := range candidates {
		required[s.Course.CID] = struct{}{}
	}
	return Solve(candidates, required)
}

// Solve enumerates every conflict-free section combination covering
// the required CIDs. Sections of non-required courses in the pool
// still participate, so a covering schedule is recorded and then
// extended further; both the minimal and the extended combinations
// appear in the results.
func Solve(candidates []*timetable.Section, required map[string]struct{}) []*PotentialSchedule {
	s := &Solver{
		required: required,
		seen:     map[string]struct{}{},
	}
	s.solve(newRoot(candidates))
	return s.results
}

func (s *Solver) solve(ps *PotentialSchedule) {
	if _, done := s.seen[ps.key()]; done {
		return
	}
	s.seen[ps.key()] = struct{}{}

	if ps.covers(s.required) {
		s.results = append(s.results, ps)
	}
	for _, next := range ps.successors() {
		s.solve(next)
	}
}

// MissingCourses reports the required CIDs no enumerated schedule
// could cover, in no particular order. Useful for telling a caller
// which of their picks made the request unsatisfiable.
func MissingCourses(results []*PotentialSchedule, required map[string]struct{}) []string {
	covered := make(map[string]struct{})
	for _, ps := range results {
		for cid := range ps.courses {
			covered[cid] = struct{}{}
		}
	}
	var missing []string
	for cid := range required {
		if _, ok := covered[cid]; !ok {
			missing = append(missing, cid)
		}
	}
	return missing
}
