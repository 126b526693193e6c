package failure

import (
	"errors"
	"net/http"
)

const (
	KindValidation     = "validation_error"
	KindNotFound       = "not_found"
	KindEmptyResult    = "empty_result"
	KindStorageFailure = "storage_failure"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind tells callers which class of failure occurred when the code alone is ambiguous.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	cause   error
}

var InvalidIDParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "id must be a positive integer"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// EmptyResult reports a search that ran successfully and matched nothing.
func EmptyResult(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindEmptyResult,
		Message: msg,
	}
}

// StorageFailure wraps an error returned by the data store.
func StorageFailure(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return err
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindStorageFailure,
		Message: "storage failure: " + err.Error(),
		cause:   err,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of err. Unclassified errors count as storage failures.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindStorageFailure
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind string) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Kind == kind
}
