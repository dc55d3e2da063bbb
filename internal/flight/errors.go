package flight

import "fmt"

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeAuthFailed      ErrorCode = "AUTH_FAILED"
	ErrorCodeSearchFailed    ErrorCode = "SEARCH_FAILED"
	ErrorCodeStaleSearch     ErrorCode = "STALE_SEARCH"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError is a user-visible failure with an HTTP status. Provider and
// network failures are converted to AppError at the orchestration boundary;
// nothing here is fatal to the process.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(status int, code ErrorCode, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}
