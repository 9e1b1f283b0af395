package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of failure categories surfaced to callers.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInvalidReference
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidReference:
		return "invalid_reference"
	case KindMalformed:
		return "malformed"
	default:
		return "internal"
	}
}

// GenericInternalMessage is the only text an Internal failure exposes.
const GenericInternalMessage = "Something went wrong."

// Error is a categorized domain failure. Messages is never empty.
type Error struct {
	Kind     Kind
	Messages []string
	Err      error
}

func (e *Error) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{fmt.Sprintf(format, args...)}}
}

func NewConflictError(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Messages: []string{fmt.Sprintf(format, args...)}}
}

func NewInvalidReferenceError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidReference, Messages: []string{fmt.Sprintf(format, args...)}}
}

func NewMalformedError(format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Messages: []string{fmt.Sprintf(format, args...)}}
}

// NewInternalError hides cause behind the generic message.
func NewInternalError(cause error) *Error {
	return &Error{Kind: KindInternal, Messages: []string{GenericInternalMessage}, Err: cause}
}

// AsError extracts the domain error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf reports the category of err. Errors outside the taxonomy are Internal.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries a domain error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == k
}
