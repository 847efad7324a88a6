package banking

import (
	"context"
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"go.uber.org/zap"
)

func (s *DefaultBankingService) CreateLinkToken(ctx context.Context, businessID string) (string, error) {
	token, err := s.Plaid.CreateLinkToken(ctx, businessID)
	if err != nil {
		return "", fmt.Errorf("failed to create link token: %w", err)
	}
	return token, nil
}

func (s *DefaultBankingService) CompleteLink(ctx context.Context, businessID, publicToken, accountID, institution string) (*models.BankLink, error) {
	// We keep the item ID as the durable handle. The access token is not
	// persisted in the link record.
	_, itemID, err := s.Plaid.ExchangePublicToken(ctx, publicToken)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange public token: %w", err)
	}

	utils.GetLogger().Info("Linked bank account",
		zap.String("businessID", businessID),
		zap.String("itemID", itemID))

	link := &models.BankLink{
		BusinessID:      businessID,
		PlaidItemID:     itemID,
		PlaidAccountID:  accountID,
		InstitutionName: institution,
		Status:          "linked",
		LinkedAt:        time.Now().UTC(),
	}
	if err := s.Repo.UpsertBankLink(link); err != nil {
		return nil, fmt.Errorf("failed to store bank link: %w", err)
	}
	return link, nil
}

func (s *DefaultBankingService) GetBankLink(ctx context.Context, businessID string) (*models.BankLink, error) {
	link, err := s.Repo.GetBankLink(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank link: %w", err)
	}
	return link, nil
}
