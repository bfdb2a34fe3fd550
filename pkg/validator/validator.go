package validator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/meeting-broker/pkg/timefmt"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("clock12h", validateClock12h)
	_ = v.RegisterValidation("meetingdate", validateMeetingDate)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// validateClock12h accepts 12-hour "H:MM AM/PM" wall-clock strings.
func validateClock12h(fl validator.FieldLevel) bool {
	_, err := timefmt.Format("", fl.Field().String(), time.Now())
	return err == nil
}

// validateMeetingDate accepts "YYYY-MM-DD" dates or full RFC 3339 timestamps.
func validateMeetingDate(fl validator.FieldLevel) bool {
	_, err := timefmt.Format(fl.Field().String(), "", time.Now())
	return err == nil
}
