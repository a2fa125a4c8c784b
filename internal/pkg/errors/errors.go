// Package errors provides custom error types and error handling utilities.
package errors

import "fmt"

// Error codes.
const (
	// Input errors: the run cannot start.
	CodeMalformedInput = "MALFORMED_INPUT"
	CodeValidation     = "VALIDATION_ERROR"

	// Evaluation errors: recoverable per question, fatal only when a data
	// inconsistency makes a score meaningless.
	CodeTypeNotFound      = "TYPE_NOT_FOUND"
	CodeMissingPrediction = "MISSING_PREDICTION"
	CodeEmptyGoldTypes    = "EMPTY_GOLD_TYPES"
	CodeDivisionUndefined = "DIVISION_UNDEFINED"

	CodeInternal = "INTERNAL_ERROR"
)

// AppError represents an application error with code and details.
type AppError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with an AppError.
func Wrap(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetail adds a single detail to the error.
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Convenience constructors.

// MalformedInput creates an input parsing error.
func MalformedInput(message string) *AppError {
	return New(CodeMalformedInput, message)
}

// ValidationError creates a validation error.
func ValidationError(message string) *AppError {
	return New(CodeValidation, message)
}

// TypeNotFound creates an unknown-type error.
func TypeNotFound(name string) *AppError {
	return New(CodeTypeNotFound, fmt.Sprintf("type %q not in hierarchy", name)).
		WithDetail("type", name)
}

// MissingPrediction creates a missing-prediction error for a question ID.
func MissingPrediction(questionID string) *AppError {
	return New(CodeMissingPrediction, fmt.Sprintf("no prediction for question %s", questionID)).
		WithDetail("question_id", questionID)
}

// EmptyGoldTypes creates an empty-gold-types error for a question ID.
func EmptyGoldTypes(questionID string) *AppError {
	return New(CodeEmptyGoldTypes, fmt.Sprintf("no usable gold types for question %s", questionID)).
		WithDetail("question_id", questionID)
}

// DivisionUndefined creates an undefined-NDCG error. This signals a data
// inconsistency and is never swallowed into a 0 or 1 score.
func DivisionUndefined(message string) *AppError {
	return New(CodeDivisionUndefined, message)
}

// InternalError creates an internal error.
func InternalError(message string, err error) *AppError {
	return Wrap(CodeInternal, message, err)
}

// IsMalformedInput checks if error is an input parsing error.
func IsMalformedInput(err error) bool {
	return hasCode(err, CodeMalformedInput)
}

// IsTypeNotFound checks if error is an unknown-type error.
func IsTypeNotFound(err error) bool {
	return hasCode(err, CodeTypeNotFound)
}

// IsDivisionUndefined checks if error is an undefined-NDCG error.
func IsDivisionUndefined(err error) bool {
	return hasCode(err, CodeDivisionUndefined)
}

// IsValidation checks if error is a validation error.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

func hasCode(err error, code string) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
