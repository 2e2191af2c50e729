package errs

import (
	"errors"
	"fmt"
	"strings"
)

// sanitize collapses newlines in formatted values so a multi-line value
// cannot break single-line log records.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ErrValueIsRequired is the sentinel error for missing required values.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError indicates that a required parameter was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ErrValueIsInvalid is the sentinel error for invalid values.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ErrObjectNotFound is the sentinel error for unresolvable objects.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError indicates that an object could not be located by its
// identifier. Non-retryable; the identifier is wrong or the object is gone.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a repository read failure.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ErrIllegalTransition is the sentinel error for status transitions outside
// the acting role's allowed set.
var ErrIllegalTransition = errors.New("illegal status transition")

// IllegalTransitionError indicates that an actor requested a status change
// that is not in the allowed set for its role and the parcel's current
// status. Non-retryable; the caller should re-render the legal options.
type IllegalTransitionError struct {
	Current   string
	Requested string
	Role      string
}

// NewIllegalTransitionError creates an IllegalTransitionError naming the
// current status, the requested status, and the acting role.
func NewIllegalTransitionError(current, requested, role string) *IllegalTransitionError {
	return &IllegalTransitionError{Current: current, Requested: requested, Role: role}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: role %s cannot move parcel from %s to %s",
		ErrIllegalTransition, e.Role, e.Current, e.Requested)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ErrMalformedOrder is the sentinel error for orders that violate the
// one-parcel-minimum integrity rule.
var ErrMalformedOrder = errors.New("order is malformed")

// MalformedOrderError indicates that aggregation was attempted over an order
// with no parcels. This is an upstream data-integrity violation and should
// alert rather than silently default.
type MalformedOrderError struct {
	OrderID string
}

// NewMalformedOrderError creates a MalformedOrderError for the given order.
func NewMalformedOrderError(orderID string) *MalformedOrderError {
	return &MalformedOrderError{OrderID: orderID}
}

func (e *MalformedOrderError) Error() string {
	return fmt.Sprintf("%s: order %s has no parcels", ErrMalformedOrder, sanitize(e.OrderID))
}

func (e *MalformedOrderError) Unwrap() error {
	return ErrMalformedOrder
}

// ErrConcurrentModification is the sentinel error for lost compare-and-set
// races.
var ErrConcurrentModification = errors.New("concurrent modification")

// ConcurrentModificationError indicates that a record changed between load
// and save, so the compare-and-set write matched zero rows. The caller
// should reload and retry.
type ConcurrentModificationError struct {
	Kind string
	ID   string
}

// NewConcurrentModificationError creates a ConcurrentModificationError for
// the given record kind ("parcel", "order") and identifier.
func NewConcurrentModificationError(kind, id string) *ConcurrentModificationError {
	return &ConcurrentModificationError{Kind: kind, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another writer",
		ErrConcurrentModification, e.Kind, sanitize(e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// ErrPartialUpdate is the sentinel error for multi-write operations that
// stopped part-way through.
var ErrPartialUpdate = errors.New("partial update")

// PartialUpdateError indicates that a sequence of independent writes failed
// after at least one of them succeeded, leaving the stores mutually
// inconsistent. Completed names the steps that were persisted, in order, so
// the caller can decide whether to retry the remainder or alert an operator.
type PartialUpdateError struct {
	Completed []string
	Cause     error
}

// NewPartialUpdateError creates a PartialUpdateError recording which steps
// completed before the failing write.
func NewPartialUpdateError(completed []string, cause error) *PartialUpdateError {
	return &PartialUpdateError{Completed: completed, Cause: cause}
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("%s: completed steps [%s], failed: %s",
		ErrPartialUpdate, strings.Join(e.Completed, ", "), sanitize(e.Cause))
}

// Unwrap exposes both the sentinel and the underlying cause so callers can
// match either with errors.Is.
func (e *PartialUpdateError) Unwrap() []error {
	return []error{ErrPartialUpdate, e.Cause}
}
