package billing

import (
	businessRepo "marketdesk/database/repository/business"
	"marketdesk/models"
)

// CheckoutSession is what the dashboard needs to send the user into Stripe
// Checkout.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// BillingService handles the business's platform subscription and tax
// registration through Stripe. Stripe is an opaque remote; every call here is
// a thin orchestration with no retry.
type BillingService interface {
	CreateCheckoutSession(businessID, plan string) (*CheckoutSession, error)
	GetSubscription(businessID string) (*models.Subscription, error)
	CancelSubscription(businessID string) error

	GetTaxInfo(businessID string) (*models.TaxInfo, error)
	UpsertTaxInfo(info *models.TaxInfo) (*models.TaxInfo, error)
}

// StripeBillingService is the production implementation against the Stripe
// API. The API key is set globally in main, the way stripe-go expects.
type StripeBillingService struct {
	Repo businessRepo.BusinessRepository
	// PriceID is the Stripe price the platform subscription bills against.
	PriceID string
	// BaseURL is the dashboard origin used for checkout redirect URLs.
	BaseURL string
}
