package meeting

// MeetingResponse represents a created meeting in responses
type MeetingResponse struct {
	MeetingURL string `json:"meeting_url"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Agenda     string `json:"agenda"`
}
