package meeting

// CreateMeetingRequest represents the request to create a meeting. Every
// field is optional; the service applies defaults.
type CreateMeetingRequest struct {
	Topic    string `json:"topic" validate:"omitempty,max=200"`
	Agenda   string `json:"agenda" validate:"omitempty,max=2000"`
	Date     string `json:"date" validate:"omitempty,meetingdate"`
	Time     string `json:"time" validate:"omitempty,clock12h"`
	Duration int    `json:"duration" validate:"omitempty,min=1,max=1440"`
}

// JoinMeetingRequest represents query parameters for joining a meeting. The
// meeting URL is trusted as handed back by a prior create response and is
// not re-validated for shape or reachability.
type JoinMeetingRequest struct {
	MeetingURL string `query:"meeting_url" validate:"required"`
	EndTime    string `query:"end_time" validate:"required"`
}
