package store

import (
	"errors"
	"fmt"
)

// Kind classifies a registry failure so callers (and the CLI exit status)
// can branch on the failure class.
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindInvalidInput  Kind = "invalid_input"
	KindCorrupt       Kind = "corrupt"
	KindIOFailure     Kind = "io_failure"
	KindLocked        Kind = "locked"
)

// Error is a registry failure with the offending path attached, enough for
// a one-line user message.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	var base string
	switch e.Kind {
	case KindNotFound:
		base = "repo not found"
	case KindAlreadyExists:
		base = "repo already exists"
	case KindInvalidInput:
		base = "invalid input"
	case KindCorrupt:
		base = "registry is corrupt"
	case KindIOFailure:
		base = "registry i/o failure"
	case KindLocked:
		base = "registry is locked"
	default:
		base = string(e.Kind)
	}
	msg := base
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a registry error. err carries the underlying cause and may
// be nil.
func NewError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf extracts the failure kind from err, or "" when err is not a
// registry error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ExitCode maps an error to the CLI exit status contract: zero on nil, a
// distinct non-zero code per failure kind, 1 for anything unclassified.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindNotFound:
		return 2
	case KindAlreadyExists:
		return 3
	case KindInvalidInput:
		return 4
	case KindCorrupt:
		return 5
	case KindIOFailure:
		return 6
	case KindLocked:
		return 7
	default:
		return 1
	}
}
