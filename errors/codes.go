package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_INTERNAL ErrorCode = iota + 1
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_AUTH_TOKEN_EXCHANGE_FAILED
	ErrorCode_INTEGRATION_ZOOM_FAILED
	ErrorCode_MEETING_EXPIRED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_AUTH_TOKEN_EXCHANGE_FAILED: "AUTH_TOKEN_EXCHANGE_FAILED",
	ErrorCode_INTEGRATION_ZOOM_FAILED:    "INTEGRATION_ZOOM_FAILED",
	ErrorCode_MEETING_EXPIRED:            "MEETING_EXPIRED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
