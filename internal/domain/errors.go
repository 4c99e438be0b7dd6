package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Msg      string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// UpstreamError wraps a failure reported by an external collaborator
// (content generator, image search). Its message is the collaborator's own.
type UpstreamError struct {
	Service string
	Msg     string
	Err     error
}

func (e UpstreamError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	case e.Service != "":
		return fmt.Sprintf("%s failed", e.Service)
	default:
		return "upstream error"
	}
}

func (e UpstreamError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
	// Public marks Msg as fixed text that is safe to show even when
	// error details are hidden from clients.
	Public bool
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

// IsPublic reports whether the error text may always be shown to clients.
func IsPublic(err error) bool {
	var target InternalError
	if errors.As(err, &target) {
		return target.Public
	}
	return IsValidation(err) || IsNotFound(err)
}
