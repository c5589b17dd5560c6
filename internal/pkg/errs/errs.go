package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired        = errors.New("value is required")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrObjectNotFound         = errors.New("object not found")
	ErrIllegalTransition      = errors.New("illegal transition")
	ErrIllegalState           = errors.New("illegal state")
	ErrNotOwner               = errors.New("not owner")
	ErrNotAllowedForRole      = errors.New("not allowed for role")
	ErrAlreadyClaimed         = errors.New("already claimed")
	ErrVersionConflict        = errors.New("version conflict")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrIntegrity              = errors.New("integrity violation")
)

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError reports malformed or inconsistent input. Callers can
// correct the input and retry; nothing has been mutated.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError reports that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IllegalTransitionError reports a state change with no edge in the order
// lifecycle graph. Never retried automatically.
type IllegalTransitionError struct {
	From string
	To   string
}

func NewIllegalTransitionError(from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// IllegalStateError reports an operation attempted against an order whose
// current state does not admit it, such as claiming an order that is not yet
// ready for pickup.
type IllegalStateError struct {
	Current  string
	Required string
}

func NewIllegalStateError(current, required string) *IllegalStateError {
	return &IllegalStateError{Current: current, Required: required}
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s: order is %s, operation requires %s", ErrIllegalState, e.Current, e.Required)
}

func (e *IllegalStateError) Unwrap() error {
	return ErrIllegalState
}

// NotOwnerError reports that the acting courier is not the courier assigned
// to the order.
type NotOwnerError struct {
	OrderID string
	ActorID string
}

func NewNotOwnerError(orderID, actorID string) *NotOwnerError {
	return &NotOwnerError{OrderID: orderID, ActorID: actorID}
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: order %s is not assigned to actor %s", ErrNotOwner, e.OrderID, e.ActorID)
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// NotAllowedForRoleError reports a lifecycle target that the actor's role may
// never request, regardless of the order's current state.
type NotAllowedForRoleError struct {
	Role   string
	Target string
}

func NewNotAllowedForRoleError(role, target string) *NotAllowedForRoleError {
	return &NotAllowedForRoleError{Role: role, Target: target}
}

func (e *NotAllowedForRoleError) Error() string {
	return fmt.Sprintf("%s: role %s may not request %s", ErrNotAllowedForRole, e.Role, e.Target)
}

func (e *NotAllowedForRoleError) Unwrap() error {
	return ErrNotAllowedForRole
}

// ClaimReason distinguishes why a claim was rejected as already taken.
type ClaimReason string

const (
	// ClaimedBySelf means the requesting courier already holds the order.
	ClaimedBySelf ClaimReason = "claimed_by_self"

	// ClaimedByOther means a different courier holds the order.
	ClaimedByOther ClaimReason = "claimed_by_other"
)

// AlreadyClaimedError reports a lost claim race or a claim against an order
// that already has a courier. A terminal outcome for the caller: re-list
// available orders instead of retrying.
type AlreadyClaimedError struct {
	OrderID string
	Reason  ClaimReason
}

func NewAlreadyClaimedError(orderID string, reason ClaimReason) *AlreadyClaimedError {
	return &AlreadyClaimedError{OrderID: orderID, Reason: reason}
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("%s: order %s (%s)", ErrAlreadyClaimed, e.OrderID, e.Reason)
}

func (e *AlreadyClaimedError) Unwrap() error {
	return ErrAlreadyClaimed
}

// VersionConflictError reports that a conditional update matched no row
// because the order's persisted state or courier changed since it was read.
type VersionConflictError struct {
	OrderID string
}

func NewVersionConflictError(orderID string) *VersionConflictError {
	return &VersionConflictError{OrderID: orderID}
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("%s: order %s was modified concurrently", ErrVersionConflict, e.OrderID)
}

func (e *VersionConflictError) Unwrap() error {
	return ErrVersionConflict
}

// ConcurrentModificationError reports that a transition kept losing to
// concurrent writers after the single internal retry.
type ConcurrentModificationError struct {
	OrderID string
}

func NewConcurrentModificationError(orderID string) *ConcurrentModificationError {
	return &ConcurrentModificationError{OrderID: orderID}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrConcurrentModification, e.OrderID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// IntegrityError reports a storage constraint violation. It indicates a
// data-model bug rather than user error and maps to a 5xx-equivalent.
type IntegrityError struct {
	Operation string
	Cause     error
}

func NewIntegrityError(operation string, cause error) *IntegrityError {
	return &IntegrityError{Operation: operation, Cause: cause}
}

func (e *IntegrityError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrIntegrity, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrIntegrity, e.Operation)
}

func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}
