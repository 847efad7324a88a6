package banking

import (
	"context"

	"marketdesk/models"

	businessRepo "marketdesk/database/repository/business"
)

// BankingService drives the Plaid Link flow for payout accounts.
type BankingService interface {
	// CreateLinkToken starts a Link session for the business.
	CreateLinkToken(ctx context.Context, businessID string) (string, error)

	// CompleteLink exchanges the public token from a finished Link session
	// and records the resulting bank link.
	CompleteLink(ctx context.Context, businessID, publicToken, accountID, institution string) (*models.BankLink, error)

	// GetBankLink returns the current link for the business, if any.
	GetBankLink(ctx context.Context, businessID string) (*models.BankLink, error)
}

// TokenExchanger is the slice of the Plaid client the service needs.
type TokenExchanger interface {
	CreateLinkToken(ctx context.Context, businessID string) (string, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error)
}

// DefaultBankingService implements BankingService on top of the Plaid
// client and the business repository.
type DefaultBankingService struct {
	Plaid TokenExchanger
	Repo  businessRepo.BusinessRepository
}

func NewBankingService(plaid TokenExchanger, repo businessRepo.BusinessRepository) BankingService {
	return &DefaultBankingService{Plaid: plaid, Repo: repo}
}
