package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeValidation        ErrorType = "VALIDATION"
	TypeAuth              ErrorType = "AUTH"
	TypeRemoteNotFound    ErrorType = "REMOTE_NOT_FOUND"
	TypeRemoteConflict    ErrorType = "REMOTE_CONFLICT"
	TypeRemoteUnavailable ErrorType = "REMOTE_UNAVAILABLE"
	TypeRemoteTimeout     ErrorType = "REMOTE_TIMEOUT"
	TypeGeneration        ErrorType = "GENERATION"
	TypeInternal          ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type    ErrorType
	Message string
	Context map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:    e.Type,
		Message: e.Message,
		Context: e.Context,
		Err:     err,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:    e.Type,
		Message: e.Message,
		Context: ctx,
		Err:     e.Err,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// RemoteError describes one failed call against the hosting API. StatusCode
// and Message are the upstream response verbatim, never reworded, so the
// caller can present the original diagnostic.
type RemoteError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: remote returned %d: %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewRemoteError creates a new RemoteError
func NewRemoteError(t ErrorType, statusCode int, message string) *RemoteError {
	return &RemoteError{
		Type:       t,
		StatusCode: statusCode,
		Message:    message,
	}
}

// StepError annotates a failure with the pipeline step that produced it.
// Branch names the branch created earlier in the sequence, when one exists,
// so the caller knows what was left behind. Suggestion preserves generated
// text that would otherwise be lost when posting it failed.
type StepError struct {
	Step       string
	Branch     string
	Suggestion string
	Err        error
}

func (e *StepError) Error() string {
	if e.Branch != "" {
		return fmt.Sprintf("step %s failed (branch %q was created): %v", e.Step, e.Branch, e.Err)
	}
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// WithBranch creates a new StepError recording the branch left behind
func (e *StepError) WithBranch(branch string) *StepError {
	return &StepError{
		Step:       e.Step,
		Branch:     branch,
		Suggestion: e.Suggestion,
		Err:        e.Err,
	}
}

// WithSuggestion creates a new StepError preserving generated text
func (e *StepError) WithSuggestion(suggestion string) *StepError {
	return &StepError{
		Step:       e.Step,
		Branch:     e.Branch,
		Suggestion: suggestion,
		Err:        e.Err,
	}
}

// NewStepError creates a new StepError
func NewStepError(step string, err error) *StepError {
	return &StepError{
		Step: step,
		Err:  err,
	}
}

// FromStatusCode maps an upstream HTTP status to the error taxonomy.
func FromStatusCode(status int) ErrorType {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return TypeAuth
	case status == http.StatusNotFound:
		return TypeRemoteNotFound
	case status == http.StatusConflict || status == http.StatusUnprocessableEntity:
		return TypeRemoteConflict
	case status >= 500:
		return TypeRemoteUnavailable
	default:
		return TypeInternal
	}
}

// TypeOf walks err's chain and returns its taxonomy classification.
// RemoteError wins over a wrapping AppError so the upstream class survives
// service-level wrapping. Unclassified errors are TypeInternal.
func TypeOf(err error) ErrorType {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Type
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// Auth errors
var (
	ErrMissingToken = NewAppError(TypeAuth, "missing bearer credential in Authorization header", nil)

	ErrInvalidAuthScheme = NewAppError(TypeAuth, "Authorization header must use the Bearer or token scheme", nil)
)

// Generation errors
var (
	ErrGenerationNotConfigured = NewAppError(TypeGeneration, "suggestion generation backend is not configured", nil)

	ErrGenerationFailed = NewAppError(TypeGeneration, "suggestion generation failed", nil)

	ErrGenerationEmpty = NewAppError(TypeGeneration, "suggestion generation returned an empty response", nil)

	ErrGenerationQuotaExceeded = NewAppError(TypeGeneration, "suggestion generation quota exceeded", nil)

	ErrGenerationKeyInvalid = NewAppError(TypeGeneration, "suggestion generation API key is invalid", nil)
)

// Remote response shape errors
var (
	ErrMissingSHA = NewAppError(TypeInternal, "remote response is missing an expected SHA", nil)
)
