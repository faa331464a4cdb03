package wire

import "github.com/arloliu/tscodec/errs"

// StatusCode is the server protocol status ordinal of a response.
type StatusCode int32

const (
	SUCCESS_STATUS           StatusCode = 0
	SUCCESS_WITH_INFO_STATUS StatusCode = 1
	STILL_EXECUTING_STATUS   StatusCode = 2
	ERROR_STATUS             StatusCode = 3
	INVALID_HANDLE_STATUS    StatusCode = 4
)

func (c StatusCode) String() string {
	switch c {
	case SUCCESS_STATUS:
		return "SUCCESS_STATUS"
	case SUCCESS_WITH_INFO_STATUS:
		return "SUCCESS_WITH_INFO_STATUS"
	case STILL_EXECUTING_STATUS:
		return "STILL_EXECUTING_STATUS"
	case ERROR_STATUS:
		return "ERROR_STATUS"
	case INVALID_HANDLE_STATUS:
		return "INVALID_HANDLE_STATUS"
	default:
		return "Unknown"
	}
}

// Status is the status block attached to every server response.
type Status struct {
	Code    StatusCode
	Message string
}

// VerifySuccess returns nil when s reports SUCCESS_STATUS and a
// *errs.StatusError carrying the code and message otherwise.
//
// Only an exact success counts; informational and in-progress codes fail.
func VerifySuccess(s Status) error {
	if s.Code == SUCCESS_STATUS {
		return nil
	}

	return &errs.StatusError{Status: s.Code.String(), Message: s.Message}
}
