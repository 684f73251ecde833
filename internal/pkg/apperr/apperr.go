// Package apperr defines the domain error type shared by every service.
// Handlers translate a Kind into a transport status with StatusCode.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure.
type Kind int

const (
	Internal Kind = iota
	NotFound
	InvalidState
	Forbidden
	InvalidChoice
	StaleQuestion
	InsufficientFunds
	LimitExceeded
	AlreadyClaimed
	Expired
	InvalidCode
	Unauthorized
	NoQuestions
	InvalidArgument
	Conflict
)

var kindNames = map[Kind]string{
	Internal:          "internal",
	NotFound:          "not_found",
	InvalidState:      "invalid_state",
	Forbidden:         "forbidden",
	InvalidChoice:     "invalid_choice",
	StaleQuestion:     "stale_question",
	InsufficientFunds: "insufficient_funds",
	LimitExceeded:     "limit_exceeded",
	AlreadyClaimed:    "already_claimed",
	Expired:           "expired",
	InvalidCode:       "invalid_code",
	Unauthorized:      "unauthorized",
	NoQuestions:       "no_questions",
	InvalidArgument:   "invalid_argument",
	Conflict:          "conflict",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FundsDetails accompanies InsufficientFunds.
type FundsDetails struct {
	Balance  int64 `json:"balance"`
	Required int64 `json:"required"`
}

// LimitDetails accompanies LimitExceeded.
type LimitDetails struct {
	Limit int `json:"limit"`
	Used  int `json:"used"`
}

// Error is a classified domain error.
type Error struct {
	Kind    Kind
	Message string
	Details interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithDetails attaches typed details and returns the same error.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// InsufficientFundsError builds the ledger rejection for a debit that would overdraw.
func InsufficientFundsError(balance, required int64) *Error {
	return New(InsufficientFunds, "Insufficient coins").WithDetails(FundsDetails{Balance: balance, Required: required})
}

// LimitExceededError builds a rejection for a capped counter.
func LimitExceededError(message string, limit, used int) *Error {
	return New(LimitExceeded, message).WithDetails(LimitDetails{Limit: limit, Used: used})
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or Internal when err is not classified.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return Internal
}

// Is reports whether err is classified with kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// StatusCode maps a kind onto an HTTP status.
func StatusCode(kind Kind) int {
	switch kind {
	case InsufficientFunds, InvalidChoice, StaleQuestion, InvalidState, NoQuestions,
		InvalidCode, Expired, AlreadyClaimed, LimitExceeded, InvalidArgument:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Internal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Describe returns the status and client-facing message for any error.
// Unclassified errors never leak their text.
func Describe(err error) (int, string) {
	appErr, ok := As(err)
	if !ok || appErr.Kind == Internal {
		return http.StatusInternalServerError, "Internal server error"
	}
	return StatusCode(appErr.Kind), appErr.Message
}
