package booking

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus rejects a status value outside the booking enumeration.
var ErrUnknownStatus = errors.New("unknown booking status")

// ProviderRequiredError indicates a status move that needs an assigned
// provider first.
type ProviderRequiredError struct {
	BookingID string
	Status    string
}

func (e ProviderRequiredError) Error() string {
	return fmt.Sprintf("booking %s cannot move to %s without an assigned provider", e.BookingID, e.Status)
}
