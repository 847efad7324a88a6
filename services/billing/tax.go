package billing

import (
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/taxid"
	"go.uber.org/zap"
)

func (s *StripeBillingService) GetTaxInfo(businessID string) (*models.TaxInfo, error) {
	return s.Repo.GetTaxInfo(businessID)
}

// UpsertTaxInfo registers the tax ID with Stripe against the business's
// customer record and stores the result. A previously registered Stripe tax
// ID is deleted first, best-effort.
func (s *StripeBillingService) UpsertTaxInfo(info *models.TaxInfo) (*models.TaxInfo, error) {
	if info.TaxIDType == "" || info.TaxIDValue == "" {
		return nil, fmt.Errorf("tax ID type and value are required")
	}

	sub, err := s.Repo.GetSubscription(info.BusinessID)
	if err != nil || sub.StripeCustomerID == "" {
		return nil, fmt.Errorf("business %s has no Stripe customer; start a subscription first", info.BusinessID)
	}

	if existing, err := s.Repo.GetTaxInfo(info.BusinessID); err == nil && existing.StripeTaxID != "" {
		if _, err := taxid.Del(existing.StripeTaxID, &stripe.TaxIDParams{
			Customer: stripe.String(sub.StripeCustomerID),
		}); err != nil {
			// A stale tax ID on the customer is harmless; carry on.
			utils.GetLogger().Warn("Failed to delete previous Stripe tax ID", zap.Error(err))
		}
	}

	created, err := taxid.New(&stripe.TaxIDParams{
		Customer: stripe.String(sub.StripeCustomerID),
		Type:     stripe.String(info.TaxIDType),
		Value:    stripe.String(info.TaxIDValue),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register tax ID with Stripe: %w", err)
	}

	info.StripeTaxID = created.ID
	info.UpdatedAt = time.Now()
	if err := s.Repo.UpsertTaxInfo(info); err != nil {
		return nil, err
	}
	return info, nil
}
