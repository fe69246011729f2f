package server

import (
	"sort"

	"github.com/kekoav/kala/collection"
	"github.com/kekoav/kala/scheduler"
	"github.com/kekoav/kala/timetable"
)

type meetingDTO struct {
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Room      string `json:"room"`
}

type sectionDTO struct {
	CRN            int          `json:"crn"`
	Number         string       `json:"number"`
	Instructor     string       `json:"instructor"`
	Enrolled       int          `json:"enrolled"`
	SeatsAvailable int          `json:"seats_available"`
	Meetings       []meetingDTO `json:"meetings"`
	Details        []string     `json:"details,omitempty"`
	FailedMeetings int          `json:"failed_meetings,omitempty"`
	Source         string       `json:"source,omitempty"`
}

type courseDTO struct {
	CID      string       `json:"cid"`
	Title    string       `json:"title"`
	Credits  string       `json:"credits"`
	Sections []sectionDTO `json:"sections"`
}

type errorResponse struct {
	Error          string `json:"error"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
}

func newMeetingDTO(m timetable.Meeting) meetingDTO {
	return meetingDTO{
		Day:       m.Day.String(),
		Start:     m.Start.String(),
		End:       m.End.String(),
		StartDate: m.StartDate.String(),
		EndDate:   m.EndDate.String(),
		Room:      m.Room,
	}
}

func newSectionDTO(s *timetable.Section) sectionDTO {
	meetings := make([]meetingDTO, 0, len(s.Meetings))
	for _, m := range s.Meetings {
		meetings = append(meetings, newMeetingDTO(m))
	}
	return sectionDTO{
		CRN:            s.CRN,
		Number:         s.Number,
		Instructor:     s.Instructor,
		Enrolled:       s.Enrolled,
		SeatsAvailable: s.SeatsAvailable,
		Meetings:       meetings,
		Details:        s.Details,
		FailedMeetings: s.FailedMeetings,
		Source:         s.Source,
	}
}

// newCourseDTOs groups a flat section list by CID, ordered by CID with
// sections ordered by CRN. Same-CID sections with differing titles
// (special topics) or credit ranges still form one course entry; the
// first section seen supplies the title and credits.
func newCourseDTOs(sections []*timetable.Section) []courseDTO {
	grouped := map[string][]sectionDTO{}
	meta := map[string]timetable.Course{}
	for _, s := range sections {
		grouped[s.Course.CID] = append(grouped[s.Course.CID], newSectionDTO(s))
		if _, ok := meta[s.Course.CID]; !ok {
			meta[s.Course.CID] = s.Course
		}
	}

	courses := make([]courseDTO, 0, len(grouped))
	for cid, courseSections := range grouped {
		sort.Slice(courseSections, func(i, j int) bool {
			return courseSections[i].CRN < courseSections[j].CRN
		})
		courses = append(courses, courseDTO{
			CID:      cid,
			Title:    meta[cid].Title,
			Credits:  meta[cid].Credits,
			Sections: courseSections,
		})
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].CID < courses[j].CID })
	return courses
}

type scheduleMeetingDTO struct {
	CID   string `json:"cid"`
	CRN   int    `json:"crn"`
	Start string `json:"start"`
	End   string `json:"end"`
	Room  string `json:"room"`
}

type scheduleSectionDTO struct {
	CID   string `json:"cid"`
	CRN   int    `json:"crn"`
	Title string `json:"title"`
}

// scheduleDTO renders one complete schedule: its section list plus a
// week view keyed by day name, each day ordered by start time.
type scheduleDTO struct {
	Sections []scheduleSectionDTO            `json:"sections"`
	Week     map[string][]scheduleMeetingDTO `json:"week"`
}

type schedulesResponse struct {
	Count          int           `json:"count"`
	Schedules      []scheduleDTO `json:"schedules"`
	MissingCourses []string      `json:"missing_courses,omitempty"`
}

func newScheduleDTO(ps *scheduler.PotentialSchedule) scheduleDTO {
	type slot struct {
		section *timetable.Section
		meeting timetable.Meeting
	}
	slots := map[string][]slot{}

	dto := scheduleDTO{Week: map[string][]scheduleMeetingDTO{}}
	for _, s := range ps.Sections() {
		dto.Sections = append(dto.Sections, scheduleSectionDTO{
			CID:   s.Course.CID,
			CRN:   s.CRN,
			Title: s.Course.Title,
		})
		for _, m := range s.Meetings {
			day := m.Day.String()
			slots[day] = append(slots[day], slot{section: s, meeting: m})
		}
	}

	for day, daySlots := range slots {
		sort.SliceStable(daySlots, func(i, j int) bool {
			return daySlots[i].meeting.Start.Minutes < daySlots[j].meeting.Start.Minutes
		})
		for _, sl := range daySlots {
			dto.Week[day] = append(dto.Week[day], scheduleMeetingDTO{
				CID:   sl.section.Course.CID,
				CRN:   sl.section.CRN,
				Start: sl.meeting.Start.String(),
				End:   sl.meeting.End.String(),
				Room:  sl.meeting.Room,
			})
		}
	}
	return dto
}

func newSchedulesResponse(results []*scheduler.PotentialSchedule, missing []string) schedulesResponse {
	resp := schedulesResponse{
		Count:          len(results),
		Schedules:      make([]scheduleDTO, 0, len(results)),
		MissingCourses: missing,
	}
	for _, ps := range results {
		resp.Schedules = append(resp.Schedules, newScheduleDTO(ps))
	}
	return resp
}

type identifierResponse struct {
	Count int                     `json:"count"`
	Items []collection.Identifier `json:"items"`
}
