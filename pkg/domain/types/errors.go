package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrValidationFailed: client-side input rejected before dispatch.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrPrecondition: the transition guard denied the action for the
	// entity's current state.
	ErrPrecondition = goerr.New("action not allowed in current state")

	// ErrConflict: a mutation for the same entity is already in flight.
	ErrConflict = goerr.New("request already in progress")

	// ErrNetwork: transport failure, timeout, or non-2xx response.
	ErrNetwork = goerr.New("backend request failed")

	// ErrNotFound: the referenced entity no longer exists.
	ErrNotFound = goerr.New("not found")

	// ErrConfirmationDeclined: the confirmation gate did not receive an
	// explicit acknowledgment; no mutation was dispatched.
	ErrConfirmationDeclined = goerr.New("confirmation declined")

	ErrInvalidOption = goerr.New("invalid option")
)
