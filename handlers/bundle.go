package handlers

import (
	staffRepoPkg "marketdesk/database/repository/staff"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	// StaffRepo backs the auth middleware's token-hash lookup.
	StaffRepo staffRepoPkg.StaffRepository

	Auth      *AuthHandler
	Booking   *BookingHandler
	Staff     *StaffHandler
	Location  *LocationHandler
	Catalog   *CatalogHandler
	Business  *BusinessHandler
	Billing   *BillingHandler
	Banking   *BankingHandler
	Messaging *MessagingHandler
}
