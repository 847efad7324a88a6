package models

import "time"

// DayHours is one weekday's opening window, 24-hour "HH:MM" strings.
type DayHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// BusinessHours maps lowercase weekday names ("monday" .. "sunday") to their
// opening window. Days the business is closed are omitted from the map.
type BusinessHours map[string]DayHours

// BusinessProfile is the business's own record: identity, contacts, branding.
type BusinessProfile struct {
	ID          string `bson:"id" json:"id"`
	OwnerID     string `bson:"owner_id" json:"owner_id"`
	DisplayName string `bson:"display_name" json:"display_name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Email       string `bson:"email" json:"email"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`
	Timezone    string `bson:"timezone,omitempty" json:"timezone,omitempty"`

	LogoURL       string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	LogoAssetID   string `bson:"logo_asset_id,omitempty" json:"-"`
	BannerURL     string `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	BannerAssetID string `bson:"banner_asset_id,omitempty" json:"-"`

	Hours BusinessHours `bson:"hours,omitempty" json:"hours,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// BusinessDocument is an uploaded compliance or verification file.
type BusinessDocument struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"business_id" json:"business_id"`
	Kind        string    `bson:"kind" json:"kind"` // e.g., "license", "insurance", "w9"
	FileURL     string    `bson:"file_url" json:"file_url"`
	FileAssetID string    `bson:"file_asset_id,omitempty" json:"-"`
	FileName    string    `bson:"file_name,omitempty" json:"file_name,omitempty"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// TaxInfo holds the business's tax registration as mirrored to Stripe.
type TaxInfo struct {
	BusinessID   string    `bson:"business_id" json:"business_id"`
	LegalName    string    `bson:"legal_name" json:"legal_name"`
	TaxIDType    string    `bson:"tax_id_type" json:"tax_id_type"` // Stripe tax_id type, e.g., "us_ein"
	TaxIDValue   string    `bson:"tax_id_value" json:"tax_id_value"`
	StripeTaxID  string    `bson:"stripe_tax_id,omitempty" json:"stripe_tax_id,omitempty"`
	Country      string    `bson:"country,omitempty" json:"country,omitempty"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Subscription statuses mirror Stripe's.
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusPending  = "pending" // checkout session created, not yet completed
)

// Subscription tracks the business's platform subscription in Stripe.
type Subscription struct {
	BusinessID           string    `bson:"business_id" json:"business_id"`
	Plan                 string    `bson:"plan" json:"plan"`
	Status               string    `bson:"status" json:"status"`
	StripeCustomerID     string    `bson:"stripe_customer_id,omitempty" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string    `bson:"stripe_subscription_id,omitempty" json:"stripe_subscription_id,omitempty"`
	CheckoutSessionID    string    `bson:"checkout_session_id,omitempty" json:"checkout_session_id,omitempty"`
	CurrentPeriodEnd     time.Time `bson:"current_period_end,omitempty" json:"current_period_end,omitzero"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

// BankLink tracks a Plaid-linked bank account used for payouts.
type BankLink struct {
	BusinessID      string    `bson:"business_id" json:"business_id"`
	PlaidItemID     string    `bson:"plaid_item_id" json:"plaid_item_id"`
	PlaidAccountID  string    `bson:"plaid_account_id,omitempty" json:"plaid_account_id,omitempty"`
	InstitutionName string    `bson:"institution_name,omitempty" json:"institution_name,omitempty"`
	Status          string    `bson:"status" json:"status"` // "linked" or "revoked"
	LinkedAt        time.Time `bson:"linked_at" json:"linked_at"`
}
