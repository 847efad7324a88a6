package catalog

import "fmt"

// PriceBelowMinimumError rejects a service price under its floor.
type PriceBelowMinimumError struct {
	Price   float64
	Minimum float64
}

func (e PriceBelowMinimumError) Error() string {
	return fmt.Sprintf("price %.2f is below the service minimum %.2f", e.Price, e.Minimum)
}
