package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures surfaced to callers.
type ErrorKind string

const (
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindConflict   ErrorKind = "CONFLICT"
	KindValidation ErrorKind = "VALIDATION_FAILED"
	KindStorage    ErrorKind = "STORAGE_FAILURE"
)

// ServiceError carries a kind and a caller-facing message. Storage failures
// keep the underlying error for logging.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func notFoundError(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflictError(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// storageError wraps a store failure unless it is already classified.
func storageError(op string, err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	return &ServiceError{Kind: KindStorage, Message: op, Err: err}
}

// KindOf reports the kind of a ServiceError anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind, true
	}
	return "", false
}

func IsNotFound(err error) bool   { return hasKind(err, KindNotFound) }
func IsConflict(err error) bool   { return hasKind(err, KindConflict) }
func IsValidation(err error) bool { return hasKind(err, KindValidation) }
func IsStorage(err error) bool    { return hasKind(err, KindStorage) }

func hasKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
