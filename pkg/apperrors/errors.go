// Package apperrors defines the domain error taxonomy: every error carries a
// stable machine-readable code and an HTTP status class so the delivery layer
// can translate it without inspecting messages.
package apperrors

import (
	"errors"
	"net/http"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeAlreadyExists = "ALREADY_EXISTS"
	CodeDuplicateItem = "DUPLICATE_ITEM"
	CodeAuthFailed    = "AUTH_FAILED"
	CodeTokenNotFound = "TOKEN_NOT_FOUND"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeNoToken       = "NO_TOKEN"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInvalidUsage  = "INVALID_USAGE"
	CodeInternal      = "INTERNAL_ERROR"
)

// Error is a tagged domain error.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func AlreadyExists(message string) *Error {
	return New(http.StatusConflict, CodeAlreadyExists, message)
}

func DuplicateItem(message string) *Error {
	return New(http.StatusConflict, CodeDuplicateItem, message)
}

func AuthFailed(message string) *Error {
	return New(http.StatusUnauthorized, CodeAuthFailed, message)
}

func TokenNotFound(message string) *Error {
	return New(http.StatusUnauthorized, CodeTokenNotFound, message)
}

func TokenExpired(message string) *Error {
	return New(http.StatusUnauthorized, CodeTokenExpired, message)
}

func NoToken(message string) *Error {
	return New(http.StatusUnauthorized, CodeNoToken, message)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, CodeBadRequest, message)
}

func InvalidUsage(message string) *Error {
	return New(http.StatusBadRequest, CodeInvalidUsage, message)
}

func Internal() *Error {
	return New(http.StatusInternalServerError, CodeInternal, "internal error")
}

// Translate returns err as *Error, or a generic internal error when err is
// not part of the taxonomy. Unexpected errors never leak their message.
func Translate(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal()
}
