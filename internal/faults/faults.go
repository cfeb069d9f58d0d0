// Package faults is the error taxonomy shared by the domain, the use cases
// and the repositories. Handlers translate kinds to HTTP statuses; nothing
// below the handlers knows about HTTP.
package faults

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindTransient
)

// Error carries a machine code for clients and a human message. The wrapped
// cause, when present, stays internal.
type Error struct {
	Kind    Kind
	Code    string
	Message string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return newError(KindValidation, code, message)
}

func Authentication(code, message string) *Error {
	return newError(KindAuthentication, code, message)
}

func Authorization(code, message string) *Error {
	return newError(KindAuthorization, code, message)
}

func NotFound(code, message string) *Error {
	return newError(KindNotFound, code, message)
}

func Conflict(code, message string) *Error {
	return newError(KindConflict, code, message)
}

func InvalidTransition(code, message string) *Error {
	return newError(KindInvalidTransition, code, message)
}

func Transient(code, message string) *Error {
	return newError(KindTransient, code, message)
}

// Wrap classifies an underlying error without losing it.
func Wrap(err error, kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, cause: err}
}

// KindOf returns the kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// CodeOf returns the machine code of err, or "" for unclassified errors.
func CodeOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }

func IsValidation(err error) bool        { return Is(err, KindValidation) }
func IsAuthentication(err error) bool    { return Is(err, KindAuthentication) }
func IsAuthorization(err error) bool     { return Is(err, KindAuthorization) }
func IsNotFound(err error) bool          { return Is(err, KindNotFound) }
func IsConflict(err error) bool          { return Is(err, KindConflict) }
func IsInvalidTransition(err error) bool { return Is(err, KindInvalidTransition) }
func IsTransient(err error) bool         { return Is(err, KindTransient) }
