package timetable

import "sort"

// Course identifies a course offering. Credits stays a string because
// the source sometimes publishes ranges like "1-3" rather than a plain
// number. Two sections belong to the same course iff their CIDs are
// equal; the cursor uppercases CIDs at the boundary.
type Course struct {
	CID     string `json:"cid"`
	Title   string `json:"title"`
	Credits string `json:"credits"`
}

// Section is one registerable offering of a course. The cursor appends
// meetings and details while it walks the section's rows; after
// Cursor.Section returns, the value should be treated as immutable.
type Section struct {
	CRN            int       `json:"crn"`
	Number         string    `json:"number"`
	Course         Course    `json:"course"`
	Instructor     string    `json:"instructor"`
	Enrolled       int       `json:"enrolled"`
	SeatsAvailable int       `json:"seats_available"`
	Meetings       []Meeting `json:"meetings"`
	Details        []string  `json:"details,omitempty"`
	FailedMeetings int       `json:"failed_meetings,omitempty"`
	Source         string    `json:"source,omitempty"`
}

// addMeetings keeps the meeting list sorted by day of week.
func (s *Section) addMeetings(meetings []Meeting) {
	s.Meetings = append(s.Meetings, meetings...)
	sort.SliceStable(s.Meetings, func(i, j int) bool {
		return s.Meetings[i].Day.Dow() < s.Meetings[j].Day.Dow()
	})
}

func (s *Section) addDetail(detail string) {
	s.Details = append(s.Details, detail)
}

// ConflictsWith reports whether any meeting of s overlaps any meeting
// of other.
func (s *Section) ConflictsWith(other *Section) bool {
	for _, a := range s.Meetings {
		for _, b := range other.Meetings {
			if a.ConflictsWith(b) {
				return true
			}
		}
	}
	return false
}
