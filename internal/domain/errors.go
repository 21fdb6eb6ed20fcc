package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionNotFound indicates an answer was recorded against an unknown question ID.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates the chosen text is not one of the question's options.
	ErrOptionNotFound = errors.New("option not found")
	// ErrNoQuestions indicates a navigator was built without any questions.
	ErrNoQuestions = errors.New("question list is empty")
	// ErrNotAuthenticated is returned by guards when the required credential is absent.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrSubmissionInFlight rejects a duplicate submit while one is outstanding.
	ErrSubmissionInFlight = errors.New("submission already in progress")
)

// ValidationError is a recoverable, user-facing condition: an incomplete
// submission or malformed form input. It never crosses the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NewValidationError builds a ValidationError with a printf-style reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthError is a 401/403 from a protected endpoint. A rejected token is
// treated as no longer valid regardless of local presence, so callers respond
// with the matching logout.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("auth rejected (status %d): %s", e.Status, e.Message)
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

// TransportError is any other network or protocol failure. The triggering
// state is preserved so the user can simply retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return "transport: " + e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
