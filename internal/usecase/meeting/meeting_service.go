package meeting

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/johnquangdev/meeting-broker/errors"
	"github.com/johnquangdev/meeting-broker/internal/infrastructure/external/zoom"
	"github.com/johnquangdev/meeting-broker/pkg/timefmt"
)

// Defaults applied when a request omits the corresponding field
const (
	DefaultTopic    = "Online Meeting"
	DefaultDuration = 60 // minutes
)

// MeetingService handles meeting business logic
type MeetingService struct {
	zoomClient zoom.ClientAPI
	now        func() time.Time
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// NewMeetingService creates a new meeting service
func NewMeetingService(zoomClient zoom.ClientAPI) *MeetingService {
	return &MeetingService{
		zoomClient: zoomClient,
		now:        time.Now,
	}
}

// Schedule creates a scheduled meeting with the provider. Repeated calls with
// identical input create distinct meetings; there is no idempotency key.
func (s *MeetingService) Schedule(ctx context.Context, input ScheduleInput) (*ScheduleOutput, error) {
	startTime, err := timefmt.Format(input.Date, input.Time, s.now())
	if err != nil {
		return nil, apperrors.ErrInvalidArgument(err.Error())
	}

	topic := input.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	duration := input.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	request := &zoom.CreateMeetingRequest{
		Topic:     topic,
		Type:      zoom.MeetingTypeScheduled,
		StartTime: startTime.Format(time.RFC3339),
		Duration:  duration,
		Agenda:    input.Agenda,
		Settings: &zoom.MeetingSettings{
			HostVideo:        false,
			ParticipantVideo: false,
			JoinBeforeHost:   true,
			EnforceLogin:     false,
			WaitingRoom:      false,
		},
	}

	created, err := s.zoomClient.CreateMeeting(ctx, request)
	if err != nil {
		if errors.Is(err, zoom.ErrTokenExchange) {
			return nil, apperrors.ErrAuthenticationFailed(err)
		}
		return nil, apperrors.ErrZoomAPIFailed("create meeting", err)
	}

	// The end time is derived from the start time and duration the server
	// requested, never taken from the provider response.
	endTime := startTime.Add(time.Duration(duration) * time.Minute)

	return &ScheduleOutput{
		MeetingURL: created.JoinURL,
		StartTime:  created.StartTime,
		EndTime:    endTime.Format(time.RFC3339),
		Agenda:     created.Agenda,
	}, nil
}

// CheckJoin rejects a join attempt strictly after endTime. An attempt at
// exactly endTime is still allowed; the start time is not enforced, so
// joining arbitrarily early is permitted.
func (s *MeetingService) CheckJoin(endTime string) error {
	end, err := time.Parse(time.RFC3339, endTime)
	if err != nil {
		return apperrors.ErrInvalidArgument("invalid end_time: expected an RFC 3339 timestamp")
	}

	if s.now().After(end) {
		return apperrors.ErrMeetingExpired(endTime)
	}
	return nil
}
