// Package apperr defines the two error kinds every gallery operation can
// surface: a local precondition failure (ValidationError) or a failure
// reported by the backing data/storage platform (RemoteServiceError).
//
// Validation errors are always raised before any remote call is made and
// carry a user-facing message. Remote errors pass the underlying service
// message through verbatim; no mapping to domain-specific codes happens here.
package apperr

import "errors"

// ValidationError is returned when input fails a local precondition
// (missing file, wrong media type, oversized file, empty required field).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation creates a ValidationError with the given user-facing message.
func Validation(message string) error {
	return &ValidationError{Message: message}
}

// RemoteServiceError is returned when the remote data or storage service
// rejected or failed a call. Cause holds the service's error unmodified.
type RemoteServiceError struct {
	Op    string // operation that failed, e.g. "insert character"
	Cause error
}

func (e *RemoteServiceError) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Op + " failed"
}

func (e *RemoteServiceError) Unwrap() error { return e.Cause }

// Remote wraps a remote-service failure.
func Remote(op string, cause error) error {
	return &RemoteServiceError{Op: op, Cause: cause}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRemote reports whether err is (or wraps) a RemoteServiceError.
func IsRemote(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re)
}
