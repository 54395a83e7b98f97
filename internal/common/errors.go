package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docufill/docpipe/constants"
)

// ExtractionError marks corrupt or undecodable input. Fatal: retrying an
// extraction of the same bytes cannot change the outcome.
type ExtractionError struct {
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

func NewExtractionError(reason string, cause error) *ExtractionError {
	return &ExtractionError{Reason: reason, Cause: cause}
}

// TransientServiceError marks OCR/LLM timeouts or unavailability. Retryable
// with backoff up to the job's attempt budget.
type TransientServiceError struct {
	Service string
	Cause   error
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Cause)
}

func (e *TransientServiceError) Unwrap() error { return e.Cause }

func NewTransientServiceError(service string, cause error) *TransientServiceError {
	return &TransientServiceError{Service: service, Cause: cause}
}

// ValidationError marks a QA rejection of mapped data. Retryable only when
// the underlying cause is itself transient (low upstream confidence).
type ValidationError struct {
	Message   string
	Transient bool
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Message
}

// MergeConflictError marks a concurrent-write detection during a profile
// merge. Retried transparently by re-acquiring the per-client lock.
type MergeConflictError struct {
	ClientID string
}

func (e *MergeConflictError) Error() string {
	return "merge conflict for client " + e.ClientID
}

// CodeFor translates an error into the reason code recorded on a failed job.
func CodeFor(err error) constants.ErrorCode {
	if err == nil {
		return constants.ErrCodeNone
	}
	var xe *ExtractionError
	if errors.As(err, &xe) {
		return constants.ErrCodeExtraction
	}
	var te *TransientServiceError
	if errors.As(err, &te) {
		return constants.ErrCodeTransientService
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return constants.ErrCodeValidation
	}
	var me *MergeConflictError
	if errors.As(err, &me) {
		return constants.ErrCodeMergeConflict
	}
	return constants.ErrCodeTransientService
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
