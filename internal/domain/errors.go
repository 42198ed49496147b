package domain

import "fmt"

// NotFoundError represents a missing resource, including a mutation that
// affected zero rows or hit a per-pair uniqueness constraint.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// BadRequestError represents a malformed payload.
type BadRequestError struct {
	Reason string
}

func (e BadRequestError) Error() string {
	if e.Reason == "" {
		return "bad request"
	}
	return e.Reason
}

func (e BadRequestError) Is(target error) bool {
	_, ok := target.(BadRequestError)
	if ok {
		return true
	}
	_, ok = target.(*BadRequestError)
	return ok
}

// ErrBadRequest is the sentinel error for malformed payloads.
var ErrBadRequest = BadRequestError{}

// UnauthorizedError represents an actor acting on a resource it does not
// control.
type UnauthorizedError struct {
	Reason string
}

func (e UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return e.Reason
}

func (e UnauthorizedError) Is(target error) bool {
	_, ok := target.(UnauthorizedError)
	if ok {
		return true
	}
	_, ok = target.(*UnauthorizedError)
	return ok
}

// ErrUnauthorized is the sentinel error for forbidden operations.
var ErrUnauthorized = UnauthorizedError{}

// InconsistencyError reports that an engagement mutation and its activity
// ledger entry could not both be made durable. The enclosing transaction has
// been rolled back; the error exists so the failure is surfaced and logged
// with enough context for reconciliation, never silently swallowed.
type InconsistencyError struct {
	Action  string
	ActorID int64
	HeroID  int64
	Step    string
	Cause   error
}

func (e InconsistencyError) Error() string {
	return fmt.Sprintf("engagement %s for actor %d on hero %d: %s failed: %v",
		e.Action, e.ActorID, e.HeroID, e.Step, e.Cause)
}

func (e InconsistencyError) Unwrap() error { return e.Cause }

func (e InconsistencyError) Is(target error) bool {
	_, ok := target.(InconsistencyError)
	if ok {
		return true
	}
	_, ok = target.(*InconsistencyError)
	return ok
}

// ErrInconsistency is the sentinel error for partial multi-step write
// failures.
var ErrInconsistency = InconsistencyError{}
