package models

// Stats holds the structure for the dashboard stats header
type Stats struct {
	CallsLastWeek  int `json:"callsLastWeek"`
	PeopleSpokenTo int `json:"peopleSpokenTo"`
}
