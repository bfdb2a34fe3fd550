package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-broker/errors"
	meetingdto "github.com/johnquangdev/meeting-broker/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/meeting-broker/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /create-meeting
// @Summary      Create a scheduled meeting
// @Description  Creates a scheduled Zoom meeting and returns the join URL with the computed meeting window
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting creation request"
// @Success      200      {object}  meeting.MeetingResponse  "Meeting created successfully"
// @Failure      400      {object}  map[string]interface{}   "Invalid request or validation failed"
// @Failure      500      {string}  string                   "Error creating meeting"
// @Router       /create-meeting [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	input := meetingUsecase.ScheduleInput{
		Topic:    req.Topic,
		Agenda:   req.Agenda,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
	}

	output, err := h.meetingService.Schedule(c.Request().Context(), input)
	if err != nil {
		return h.handleScheduleError(c, err)
	}

	return c.JSON(http.StatusOK, &meetingdto.MeetingResponse{
		MeetingURL: output.MeetingURL,
		StartTime:  output.StartTime,
		EndTime:    output.EndTime,
		Agenda:     output.Agenda,
	})
}

// JoinMeeting handles GET /join-meeting
// @Summary      Join a meeting
// @Description  Redirects to the meeting URL while the meeting window is still open
// @Tags         Meetings
// @Param        meeting_url  query  string  true  "Meeting join URL from a prior create response"
// @Param        end_time     query  string  true  "Meeting end time (RFC 3339)"
// @Success      302  {string}  string  "Redirect to the meeting URL"
// @Failure      400  {string}  string  "Meeting time has expired, you cannot join."
// @Router       /join-meeting [get]
func (h *Meeting) JoinMeeting(c echo.Context) error {
	var req meetingdto.JoinMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	if err := h.meetingService.CheckJoin(req.EndTime); err != nil {
		var appErr apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_MEETING_EXPIRED {
			// Expected outcome, not an operational failure
			h.logger.Info("join rejected, meeting window closed",
				zap.String("request_id", getRequestID(c)),
				zap.String("end_time", req.EndTime),
			)
			return c.String(http.StatusBadRequest, appErr.Message)
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	return c.Redirect(http.StatusFound, req.MeetingURL)
}

// handleScheduleError logs provider failures with full detail and returns the
// generic creation error so credential and provider internals never leak to
// clients.
func (h *Meeting) handleScheduleError(c echo.Context, err error) error {
	var appErr apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperrors.ErrorCode_INVALID_ARGUMENT {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "validation_failed",
				"message": appErr.Message,
			})
		}

		h.logger.Error("failed to create meeting",
			zap.String("request_id", getRequestID(c)),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
		return c.String(http.StatusInternalServerError, "Error creating meeting")
	}

	h.logger.Error("failed to create meeting",
		zap.String("request_id", getRequestID(c)),
		zap.Error(err),
	)
	return c.String(http.StatusInternalServerError, "Error creating meeting")
}
