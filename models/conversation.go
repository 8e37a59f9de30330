package models

// ConversationItem is the read-only list projection of a Caller. It owns no
// lifecycle of its own, it is rebuilt on every fetch.
type ConversationItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Subtitle        string  `json:"subtitle,omitempty"`
	Time            string  `json:"time"`
	MeetingDuration int     `json:"meetingDuration,omitempty"`
	Urgency         string  `json:"urgency,omitempty"`
	FullData        *Caller `json:"fullData,omitempty"`
}

// DashboardData is the grouped view model served to the dashboard
type DashboardData struct {
	ConversationsByDate map[string][]ConversationItem `json:"conversationsByDate"`
	DateOrder           []string                      `json:"dateOrder"`
	AllCallers          []Caller                      `json:"allCallers"`
	Total               int                           `json:"total"`
}
