package model

import "errors"

// Application-level sentinel errors. Services and repositories return these
// (possibly wrapped); webutil maps them to HTTP status codes at the boundary.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrConflict       = errors.New("resource conflict")
	ErrForbidden      = errors.New("forbidden")
	ErrUpstream       = errors.New("generation service unavailable")
	ErrBadFormat      = errors.New("generated content is not parseable")
	ErrBadSchema      = errors.New("generated content has unexpected shape")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail is the error payload returned to clients.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the error envelope for all endpoints except the raw
// generate contract, which has its own fixed body.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError attaches a client-facing detail to a sentinel error.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
