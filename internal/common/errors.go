package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies failures surfaced by the feed core.
type ErrorKind string

const (
	KindValidation            ErrorKind = "VALIDATION"
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindForbidden             ErrorKind = "FORBIDDEN"
	KindModerationRejected    ErrorKind = "MODERATION_REJECTED"
	KindConflict              ErrorKind = "CONFLICT"
	KindDependencyUnavailable ErrorKind = "DEPENDENCY_UNAVAILABLE"
)

// Error is a typed failure. Two errors match under errors.Is when their kinds are equal,
// so the sentinels below can be used to test for a kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

var (
	ErrValidation            = &Error{Kind: KindValidation}
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrForbidden             = &Error{Kind: KindForbidden}
	ErrModerationRejected    = &Error{Kind: KindModerationRejected}
	ErrConflict              = &Error{Kind: KindConflict}
	ErrDependencyUnavailable = &Error{Kind: KindDependencyUnavailable}
)

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// ModerationRejected carries the moderation reason as the message.
func ModerationRejected(subject, reason string) error {
	return &Error{Kind: KindModerationRejected, Message: fmt.Sprintf("%s rejected: %s", subject, reason)}
}

// Unavailable wraps a collaborator failure.
func Unavailable(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindDependencyUnavailable, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func GRPCCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	switch KindOf(err) {
	case KindValidation, KindModerationRejected:
		return codes.InvalidArgument
	case KindNotFound:
		return codes.NotFound
	case KindForbidden:
		return codes.PermissionDenied
	case KindConflict:
		return codes.AlreadyExists
	case KindDependencyUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// GRPCStatus converts err into a gRPC status error.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(GRPCCode(err), err.Error())
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindModerationRejected:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindDependencyUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
