package apperr

import (
	"errors"
	"fmt"
)

// Kind classifica as falhas de domínio. O transporte decide o status HTTP.
type Kind string

const (
	KindInvalidParam  Kind = "invalid_param"
	KindPermission    Kind = "permission"
	KindConflict      Kind = "conflict"
	KindForbidden     Kind = "forbidden"
	KindNotAuthorized Kind = "not_authorized"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func InvalidParam(format string, args ...any) *Error {
	return newError(KindInvalidParam, format, args...)
}

func Permission(format string, args ...any) *Error {
	return newError(KindPermission, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return newError(KindConflict, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return newError(KindForbidden, format, args...)
}

func NotAuthorized(format string, args ...any) *Error {
	return newError(KindNotAuthorized, format, args...)
}

// KindOf devolve o Kind do erro, ou vazio quando não é um erro de domínio.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
