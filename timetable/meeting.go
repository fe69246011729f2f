package timetable

// Meeting is one recurring weekly time slot belonging to a section.
// Immutable once built.
type Meeting struct {
	Day       Day    `json:"day"`
	Start     Time   `json:"start"`
	End       Time   `json:"end"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Room      string `json:"room"`
}

// NewMeetings expands one timetable row into a meeting per decoded
// day: an "MWF" row yields three meetings sharing the same time block
// and room.
func NewMeetings(dayString, timeString, roomString, dateString string) ([]Meeting, error) {
	tb, err := ParseTimeBlock(timeString, dateString)
	if err != nil {
		return nil, err
	}
	var meetings []Meeting
	for _, day := range ParseDays(dayString) {
		meetings = append(meetings, Meeting{
			Day:       day,
			Start:     tb.Start,
			End:       tb.End,
			StartDate: tb.StartDate,
			EndDate:   tb.EndDate,
			Room:      roomString,
		})
	}
	return meetings, nil
}

// ConflictsWith reports whether two meetings overlap. TBA days and TBA
// times never conflict with anything, including each other. Touching
// endpoints count as a conflict. Symmetric.
func (m Meeting) ConflictsWith(o Meeting) bool {
	if m.Day == TBA || o.Day == TBA {
		return false
	}
	if m.Day != o.Day {
		return false
	}
	return m.Start.BeforeOrEqual(o.End) && m.End.AfterOrEqual(o.Start)
}
