package meeting

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/meeting-broker/errors"
	"github.com/johnquangdev/meeting-broker/internal/infrastructure/external/zoom"
)

// mockZoomClient implements zoom.ClientAPI for tests
type mockZoomClient struct {
	createFunc  func(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error)
	lastRequest *zoom.CreateMeetingRequest
}

func (m *mockZoomClient) CreateMeeting(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error) {
	m.lastRequest = request
	if m.createFunc != nil {
		return m.createFunc(ctx, request)
	}
	return &zoom.CreateMeetingResponse{
		ID:        1,
		StartTime: request.StartTime,
		Duration:  request.Duration,
		Agenda:    request.Agenda,
		JoinURL:   "https://zoom.us/j/1",
	}, nil
}

func newTestService(mock *mockZoomClient, now time.Time) *MeetingService {
	svc := NewMeetingService(mock)
	svc.now = func() time.Time { return now }
	return svc
}

func TestSchedule_EndTimeDerivedFromDuration(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	for _, duration := range []int{1, 60, 1440} {
		t.Run(fmt.Sprintf("duration %d", duration), func(t *testing.T) {
			mock := &mockZoomClient{
				createFunc: func(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error) {
					// The provider reports a bogus end-of-meeting; only the
					// server-side arithmetic may be trusted.
					return &zoom.CreateMeetingResponse{
						ID:        42,
						StartTime: request.StartTime,
						Duration:  9999,
						JoinURL:   "https://zoom.us/j/42",
					}, nil
				},
			}
			svc := newTestService(mock, now)

			output, err := svc.Schedule(context.Background(), ScheduleInput{
				Date:     "2024-03-15",
				Time:     "1:00 PM",
				Duration: duration,
			})
			require.NoError(t, err)

			start := time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)
			want := start.Add(time.Duration(duration) * time.Minute).Format(time.RFC3339)
			assert.Equal(t, want, output.EndTime)
		})
	}
}

func TestSchedule_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	mock := &mockZoomClient{}
	svc := newTestService(mock, now)

	_, err := svc.Schedule(context.Background(), ScheduleInput{})
	require.NoError(t, err)

	require.NotNil(t, mock.lastRequest)
	assert.Equal(t, DefaultTopic, mock.lastRequest.Topic)
	assert.Equal(t, DefaultDuration, mock.lastRequest.Duration)
	assert.Equal(t, "", mock.lastRequest.Agenda)
	assert.Equal(t, zoom.MeetingTypeScheduled, mock.lastRequest.Type)
	// Omitted date and time default to today at noon
	assert.Equal(t, "2024-03-15T12:00:00Z", mock.lastRequest.StartTime)

	require.NotNil(t, mock.lastRequest.Settings)
	assert.False(t, mock.lastRequest.Settings.HostVideo)
	assert.False(t, mock.lastRequest.Settings.ParticipantVideo)
	assert.True(t, mock.lastRequest.Settings.JoinBeforeHost)
	assert.False(t, mock.lastRequest.Settings.EnforceLogin)
	assert.False(t, mock.lastRequest.Settings.WaitingRoom)
}

func TestSchedule_ExplicitValuesOverrideDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	mock := &mockZoomClient{}
	svc := newTestService(mock, now)

	output, err := svc.Schedule(context.Background(), ScheduleInput{
		Topic:    "Standup",
		Agenda:   "Daily sync",
		Date:     "2024-06-01",
		Time:     "9:30 AM",
		Duration: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "Standup", mock.lastRequest.Topic)
	assert.Equal(t, "Daily sync", mock.lastRequest.Agenda)
	assert.Equal(t, 15, mock.lastRequest.Duration)
	assert.Equal(t, "2024-06-01T09:30:00Z", mock.lastRequest.StartTime)
	assert.Equal(t, "2024-06-01T09:45:00Z", output.EndTime)
}

func TestSchedule_ProviderFieldsPassedThrough(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	mock := &mockZoomClient{
		createFunc: func(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error) {
			return &zoom.CreateMeetingResponse{
				StartTime: "2024-03-15T13:00:00Z",
				Agenda:    "Provider agenda",
				JoinURL:   "https://provider/x",
			}, nil
		},
	}
	svc := newTestService(mock, now)

	output, err := svc.Schedule(context.Background(), ScheduleInput{Time: "1:00 PM"})
	require.NoError(t, err)

	assert.Equal(t, "https://provider/x", output.MeetingURL)
	assert.Equal(t, "2024-03-15T13:00:00Z", output.StartTime)
	assert.Equal(t, "Provider agenda", output.Agenda)
}

func TestSchedule_Failures(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("token exchange failure", func(t *testing.T) {
		mock := &mockZoomClient{
			createFunc: func(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error) {
				return nil, fmt.Errorf("%w: provider said no", zoom.ErrTokenExchange)
			},
		}
		svc := newTestService(mock, now)

		_, err := svc.Schedule(context.Background(), ScheduleInput{})
		require.Error(t, err)

		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorCode_AUTH_TOKEN_EXCHANGE_FAILED, appErr.Code)
	})

	t.Run("provider API failure", func(t *testing.T) {
		mock := &mockZoomClient{
			createFunc: func(ctx context.Context, request *zoom.CreateMeetingRequest) (*zoom.CreateMeetingResponse, error) {
				return nil, fmt.Errorf("zoom API error (code 429): Too many requests")
			},
		}
		svc := newTestService(mock, now)

		_, err := svc.Schedule(context.Background(), ScheduleInput{})
		require.Error(t, err)

		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorCode_INTEGRATION_ZOOM_FAILED, appErr.Code)
	})

	t.Run("malformed time rejected before any provider call", func(t *testing.T) {
		mock := &mockZoomClient{}
		svc := newTestService(mock, now)

		_, err := svc.Schedule(context.Background(), ScheduleInput{Time: "25:00 XM"})
		require.Error(t, err)

		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
		assert.Nil(t, mock.lastRequest)
	})
}

func TestCheckJoin(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&mockZoomClient{}, now)

	t.Run("expired one second ago", func(t *testing.T) {
		err := svc.CheckJoin(now.Add(-time.Second).Format(time.RFC3339))
		require.Error(t, err)

		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorCode_MEETING_EXPIRED, appErr.Code)
		assert.Equal(t, "Meeting time has expired, you cannot join.", appErr.Message)
	})

	t.Run("still open", func(t *testing.T) {
		err := svc.CheckJoin(now.Add(time.Hour).Format(time.RFC3339))
		assert.NoError(t, err)
	})

	t.Run("end time exactly now is not expired", func(t *testing.T) {
		// The comparison is strictly "current > end"
		err := svc.CheckJoin(now.Format(time.RFC3339))
		assert.NoError(t, err)
	})

	t.Run("unparseable end time", func(t *testing.T) {
		err := svc.CheckJoin("not-a-timestamp")
		require.Error(t, err)

		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrorCode_INVALID_ARGUMENT, appErr.Code)
	})
}
