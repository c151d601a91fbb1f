// Package apperror defines the error taxonomy shared by all services. The
// HTTP boundary maps kinds to status codes; services never shape responses.
package apperror

import "errors"

type Kind string

const (
	KindNotFound       Kind = "NotFoundError"
	KindValidation     Kind = "ValidationError"
	KindAuthentication Kind = "AuthenticationError"
	KindAuthorization  Kind = "AuthorizationError"
	KindConflict       Kind = "DuplicateKeyError"
	KindInternal       Kind = "InternalError"
)

type Error struct {
	Kind    Kind        `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string, details interface{}) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Validation(message string, details interface{}) *Error {
	return New(KindValidation, message, details)
}

func Authentication(message string) *Error {
	return New(KindAuthentication, message, nil)
}

func Authorization(message string) *Error {
	return New(KindAuthorization, message, nil)
}

func Conflict(message string, details interface{}) *Error {
	return New(KindConflict, message, details)
}

func Internal(message string) *Error {
	return New(KindInternal, message, nil)
}

// KindOf reports the kind of err, KindInternal for anything untyped.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
