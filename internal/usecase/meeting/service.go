package meeting

import (
	"context"
)

// Service defines the interface for the meeting use case
type Service interface {
	// Schedule creates a scheduled meeting with the provider and returns the
	// join URL together with the server-computed meeting window
	Schedule(ctx context.Context, input ScheduleInput) (*ScheduleOutput, error)

	// CheckJoin decides whether a join attempt is still inside the meeting
	// window identified by endTime
	CheckJoin(endTime string) error
}

// ScheduleInput represents input for scheduling a meeting. All fields are
// optional; defaults are applied by the service.
type ScheduleInput struct {
	Topic    string
	Agenda   string
	Date     string
	Time     string
	Duration int
}

// ScheduleOutput represents the created meeting. It exists only for the
// duration of one response; nothing is persisted.
type ScheduleOutput struct {
	MeetingURL string
	StartTime  string
	EndTime    string
	Agenda     string
}
