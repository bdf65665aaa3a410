// Package apperr carries the typed error services raise: an HTTP
// status code plus a user-facing message. The fiber error handler in
// cmd/main.go is the single place that turns it into a response.
package apperr

import "errors"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Code: 400, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Code: 401, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Code: 403, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: 404, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: 409, Message: message}
}

// InvalidCredentials is deliberately generic so a failed login never
// reveals whether the email or the password was wrong.
func InvalidCredentials() *Error {
	return &Error{Code: 400, Message: "Invalid email/password."}
}

// From extracts an *Error from err, or nil if err carries none.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
