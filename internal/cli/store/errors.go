package store

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a client-side precondition failure. It is
// raised before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent record or asset.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("record %q not found", e.ID) }

// ErrorKind subclassifies store failures for user messaging.
type ErrorKind string

const (
	KindNetworkUnavailable ErrorKind = "network_unavailable"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindNotAuthenticated   ErrorKind = "not_authenticated"
	KindQuotaExceeded      ErrorKind = "quota_exceeded"
	KindAssetNotFound      ErrorKind = "asset_not_found"
	KindInternal           ErrorKind = "internal"
)

// StoreError wraps a failure coming back from the record store.
type StoreError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *StoreError) Unwrap() error { return e.Err }

// KindOf extracts the ErrorKind from err, or KindInternal.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// BatchItemError names one failed item of a fan-out batch.
type BatchItemError struct {
	Name string
	Err  error
}

// BatchError aggregates the failures of a batch. Sibling operations in
// the batch always run to completion; the error reports every failed
// item and its cause.
type BatchError struct {
	Items []BatchItemError
}

func (e *BatchError) Error() string {
	parts := make([]string, 0, len(e.Items))
	for _, it := range e.Items {
		parts = append(parts, fmt.Sprintf("%s: %v", it.Name, it.Err))
	}
	return fmt.Sprintf("%d item(s) failed: %s", len(e.Items), strings.Join(parts, "; "))
}

// Failed reports whether name is among the failed items.
func (e *BatchError) Failed(name string) bool {
	for _, it := range e.Items {
		if it.Name == name {
			return true
		}
	}
	return false
}
