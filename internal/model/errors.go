package model

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the kind of a domain error
type ErrorCode int

const (
	// Input errors (1xxx)
	ErrCodeValidation   ErrorCode = 1001
	ErrCodeTypeMismatch ErrorCode = 1002

	// Authorization errors (2xxx)
	ErrCodeAuthorization ErrorCode = 2001

	// Resource errors (3xxx)
	ErrCodeNotFound    ErrorCode = 3001
	ErrCodeDuplicate   ErrorCode = 3002
	ErrCodeUnavailable ErrorCode = 3003

	// Limit errors (4xxx)
	ErrCodeCapacity ErrorCode = 4001
)

// Error is a domain error carrying its kind and a human readable detail.
// Two errors match under errors.Is when their codes are equal, so callers
// compare against the sentinels below regardless of the detail.
type Error struct {
	Code   ErrorCode
	Title  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Title
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

// Is reports whether target is a domain error of the same kind
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks
var (
	ErrValidation    = &Error{Code: ErrCodeValidation, Title: "Validation Error"}
	ErrTypeMismatch  = &Error{Code: ErrCodeTypeMismatch, Title: "Type Mismatch"}
	ErrAuthorization = &Error{Code: ErrCodeAuthorization, Title: "Authorization Error"}
	ErrNotFound      = &Error{Code: ErrCodeNotFound, Title: "Not Found"}
	ErrDuplicate     = &Error{Code: ErrCodeDuplicate, Title: "Duplicate"}
	ErrUnavailable   = &Error{Code: ErrCodeUnavailable, Title: "Unavailable"}
	ErrCapacity      = &Error{Code: ErrCodeCapacity, Title: "Capacity Exceeded"}
)

// Common error constructors

func NewValidationError(detail string) *Error {
	return &Error{Code: ErrCodeValidation, Title: ErrValidation.Title, Detail: detail}
}

func NewTypeMismatchError(detail string) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Title: ErrTypeMismatch.Title, Detail: detail}
}

func NewAuthorizationError(detail string) *Error {
	return &Error{Code: ErrCodeAuthorization, Title: ErrAuthorization.Title, Detail: detail}
}

func NewNotFoundError(resource string) *Error {
	return &Error{
		Code:   ErrCodeNotFound,
		Title:  ErrNotFound.Title,
		Detail: fmt.Sprintf("%s not found", resource),
	}
}

func NewDuplicateError(detail string) *Error {
	return &Error{Code: ErrCodeDuplicate, Title: ErrDuplicate.Title, Detail: detail}
}

func NewUnavailableError(detail string) *Error {
	return &Error{Code: ErrCodeUnavailable, Title: ErrUnavailable.Title, Detail: detail}
}

func NewCapacityError(resource string, limit int) *Error {
	return &Error{
		Code:   ErrCodeCapacity,
		Title:  ErrCapacity.Title,
		Detail: fmt.Sprintf("maximum of %d %s reached", limit, resource),
	}
}

// CodeOf returns the code of the first domain error in err's chain, or 0
// when err is nil or not a domain error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
