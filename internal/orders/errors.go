package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: lookup or cancel on an order number that does not resolve.
	ErrNotFound = errors.New("order not found")

	// ErrInventoryUnavailable: the inventory dependency failed after the
	// retry/breaker/timeout budget. Distinct from a business rejection.
	ErrInventoryUnavailable = errors.New("inventory service unavailable")
)

// ValidationError rejects a malformed placement request before any network
// call is made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid order request: %s", e.Reason)
}
