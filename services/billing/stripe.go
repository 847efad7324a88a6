package billing

import (
	"fmt"
	"time"

	"marketdesk/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/subscription"
)

// CreateCheckoutSession creates a Stripe Checkout session for the platform
// subscription and records it as pending. Completion is read back from Stripe
// on the next GetSubscription call rather than via webhooks.
func (s *StripeBillingService) CreateCheckoutSession(businessID, plan string) (*CheckoutSession, error) {
	profile, err := s.Repo.GetProfile(businessID)
	if err != nil {
		return nil, fmt.Errorf("business profile not found: %w", err)
	}

	existing, err := s.Repo.GetSubscription(businessID)
	customerID := ""
	if err == nil && existing != nil {
		customerID = existing.StripeCustomerID
	}
	if customerID == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(profile.Email),
			Name:  stripe.String(profile.DisplayName),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Stripe customer: %w", err)
		}
		customerID = cust.ID
	}

	params := &stripe.CheckoutSessionParams{
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		Customer: stripe.String(customerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.BaseURL + "/settings/subscription?checkout=success"),
		CancelURL:  stripe.String(s.BaseURL + "/settings/subscription?checkout=cancelled"),
	}
	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	sub := &models.Subscription{
		BusinessID:        businessID,
		Plan:              plan,
		Status:            models.SubscriptionStatusPending,
		StripeCustomerID:  customerID,
		CheckoutSessionID: sess.ID,
		UpdatedAt:         time.Now(),
	}
	if err := s.Repo.UpsertSubscription(sub); err != nil {
		return nil, err
	}

	return &CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

// GetSubscription returns the stored subscription, refreshing a pending one
// from its checkout session first.
func (s *StripeBillingService) GetSubscription(businessID string) (*models.Subscription, error) {
	sub, err := s.Repo.GetSubscription(businessID)
	if err != nil {
		return nil, err
	}

	if sub.Status == models.SubscriptionStatusPending && sub.CheckoutSessionID != "" {
		sess, err := session.Get(sub.CheckoutSessionID, nil)
		if err != nil {
			return sub, nil // Stripe unreachable; serve the stored state
		}
		if sess.Subscription != nil {
			stripeSub, err := subscription.Get(sess.Subscription.ID, nil)
			if err == nil {
				sub.StripeSubscriptionID = stripeSub.ID
				sub.Status = string(stripeSub.Status)
				sub.CurrentPeriodEnd = time.Unix(stripeSub.CurrentPeriodEnd, 0)
				sub.UpdatedAt = time.Now()
				if err := s.Repo.UpsertSubscription(sub); err != nil {
					return nil, err
				}
			}
		}
	}
	return sub, nil
}

// CancelSubscription cancels the Stripe subscription immediately and records
// the new status.
func (s *StripeBillingService) CancelSubscription(businessID string) error {
	sub, err := s.Repo.GetSubscription(businessID)
	if err != nil {
		return fmt.Errorf("no subscription for business %s: %w", businessID, err)
	}
	if sub.StripeSubscriptionID == "" {
		return fmt.Errorf("business %s has no active Stripe subscription", businessID)
	}

	if _, err := subscription.Cancel(sub.StripeSubscriptionID, nil); err != nil {
		return fmt.Errorf("failed to cancel Stripe subscription: %w", err)
	}

	sub.Status = models.SubscriptionStatusCanceled
	sub.UpdatedAt = time.Now()
	return s.Repo.UpsertSubscription(sub)
}
