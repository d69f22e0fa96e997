package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrStore         = errors.New("store failure")
)

// Error codes exposed in the API error body. The catalog endpoints promise a
// fixed vocabulary, so handlers and services only use codes from this set.
const (
	CodeGetError     = "GET_ERROR"
	CodeSearchError  = "SEARCH_ERROR"
	CodeInvalidQuery = "INVALID_QUERY"
	CodeDeleteError  = "DELETE_ERROR"
	CodeAddError     = "ADD_ERROR"
	CodeUpdateError  = "UPDATE_ERROR"
	CodeReplaceError = "REPLACE_ERROR"

	CodeToyNotFound = "TOY_NOT_FOUND"
	CodeToyExists   = "TOY_EXISTS"

	CodeCategoryNotFound    = "CATEGORY_NOT_FOUND"
	CodeCategoryExists      = "CATEGORY_EXISTS"
	CodeCategoryAddError    = "CATEGORY_ADD_ERROR"
	CodeCategoryDeleteError = "CATEGORY_DELETE_ERROR"
	CodeCategoryInUse       = "CATEGORY_IN_USE"

	CodeBrandNotFound    = "BRAND_NOT_FOUND"
	CodeBrandExists      = "BRAND_EXISTS"
	CodeBrandAddError    = "BRAND_ADD_ERROR"
	CodeBrandDeleteError = "BRAND_DELETE_ERROR"
	CodeBrandInUse       = "BRAND_IN_USE"

	CodeInternal = "INTERNAL_ERROR"
)

// AppError is a structured application error carrying the API error code and
// HTTP status. Detail holds a short diagnostic string safe to show to clients;
// Err holds the underlying cause and is never serialized.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error with the given resource code.
func NotFound(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// Conflict creates a uniqueness-violation error. The catalog API reports
// slug/sku conflicts as 400, not 409.
func Conflict(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrAlreadyExists,
	}
}

// InvalidQuery creates a 400 error for malformed or missing input.
func InvalidQuery(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidQuery,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Store creates a 500 error for an unexpected persistence failure. The
// operation-specific code (GET_ERROR, ADD_ERROR, ...) is chosen by the caller;
// the underlying error is kept for logs and summarized in Detail.
func Store(code, message string, err error) *AppError {
	detail := ""
	if err != nil {
		detail = "store operation failed"
	}
	return &AppError{
		Code:    code,
		Message: message,
		Detail:  detail,
		Status:  http.StatusInternalServerError,
		Err:     fmt.Errorf("%w: %w", ErrStore, err),
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
