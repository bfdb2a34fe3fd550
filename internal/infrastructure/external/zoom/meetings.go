package zoom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Meeting type constants for the Zoom API
const (
	MeetingTypeInstant   = 1
	MeetingTypeScheduled = 2
)

// CreateMeetingRequest represents the request to create a Zoom meeting
type CreateMeetingRequest struct {
	Topic     string           `json:"topic"`
	Type      int              `json:"type"`
	StartTime string           `json:"start_time,omitempty"`
	Duration  int              `json:"duration,omitempty"`
	Agenda    string           `json:"agenda"`
	Settings  *MeetingSettings `json:"settings,omitempty"`
}

// MeetingSettings represents Zoom meeting settings
type MeetingSettings struct {
	HostVideo        bool `json:"host_video"`
	ParticipantVideo bool `json:"participant_video"`
	JoinBeforeHost   bool `json:"join_before_host"`
	EnforceLogin     bool `json:"enforce_login"`
	WaitingRoom      bool `json:"waiting_room"`
}

// CreateMeetingResponse represents the response from creating a Zoom meeting
type CreateMeetingResponse struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	HostID    string `json:"host_id"`
	Topic     string `json:"topic"`
	Type      int    `json:"type"`
	Status    string `json:"status"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
	Agenda    string `json:"agenda"`
	StartURL  string `json:"start_url"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
}

// CreateMeeting creates a new scheduled meeting for the authenticated account
// user. This is a pure API call with no business logic.
func (c *Client) CreateMeeting(ctx context.Context, request *CreateMeetingRequest) (*CreateMeetingResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, meetingsPath, request)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, parseErrorResponse(body)
	}

	var meeting CreateMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		return nil, fmt.Errorf("failed to decode create meeting response: %w", err)
	}

	return &meeting, nil
}
