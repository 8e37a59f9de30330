package models

import "time"

// MeetingDurations is the set of bookable meeting lengths in minutes
var MeetingDurations = []int{15, 30, 45, 60}

// Caller holds the structure for a single support interaction as mirrored
// from the voice provider into the backend store
type Caller struct {
	ID              int       `json:"id"`
	CallerName      string    `json:"callerName"`
	Title           string    `json:"title"`
	IssueType       string    `json:"issueType"`
	IssueSummary    string    `json:"issueSummary,omitempty"`
	Subtitle        string    `json:"subtitle"`
	PhoneNumber     string    `json:"phoneNumber"`
	Email           string    `json:"email"`
	MeetingDuration int       `json:"meetingDuration"`
	Urgency         string    `json:"urgency"`
	TimeRequested   time.Time `json:"timeRequested"`
	CreatedAt       time.Time `json:"createdAt"`
	DateLabel       string    `json:"dateLabel"`
	DisplayTime     string    `json:"displayTime"`
	Transcript      string    `json:"transcript"`
}

// ValidMeetingDuration reports whether d is one of the fixed bookable lengths
func ValidMeetingDuration(d int) bool {
	for _, v := range MeetingDurations {
		if v == d {
			return true
		}
	}
	return false
}

// UrgencyRank orders urgency categories, Critical highest. Unknown values
// rank below Low so they never displace real categories.
func UrgencyRank(urgency string) int {
	switch urgency {
	case "Critical":
		return 4
	case "High":
		return 3
	case "Medium":
		return 2
	case "Low":
		return 1
	}
	return 0
}
