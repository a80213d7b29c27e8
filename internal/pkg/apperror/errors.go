// Package apperror is the error taxonomy crossing the service boundary.
// Services return these; the fiber middleware translates them into the
// structured failure body. Extraction and sanitization never produce them,
// those degrade instead of failing.
package apperror

import (
	"errors"
	"fmt"
)

// NotFoundError identifies the missing record by resource kind, field and
// the value that was looked up.
type NotFoundError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s: '%v'", e.Resource, e.Field, e.Value)
}

func NewNotFound(resource, field string, value interface{}) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

// InvalidArgumentError marks caller-contract violations, rejected before
// any upstream call or persistence happens.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func NewInvalidArgument(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// UpstreamError wraps a failed external API call. It is propagated once,
// synchronously; nothing is persisted for the failed operation.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s call failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstream(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}
