package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes the presentation layer branches on. Each maps to one of the
// user-facing error families: absent entities, duplicate registration,
// failed login, malformed search filters and repository invariant
// violations.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidSearchKey = "INVALID_SEARCH_KEY"
	CodeRepository       = "REPOSITORY_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Conflict(message string, err error) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

// InvalidSearchKey carries the user-facing message for an unrecognized
// search filter key or an out-of-range filter value.
func InvalidSearchKey(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInvalidSearchKey,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

// Repository wraps a storage-invariant violation, such as a review that
// is not bidirectionally linked.
func Repository(message string, err error) *AppError {
	return &AppError{
		Code:    CodeRepository,
		Message: message,
		Status:  http.StatusUnprocessableEntity,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Is reports whether err is an AppError carrying the given code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
