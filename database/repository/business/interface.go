package businessRepo

import (
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessRepository abstracts persistence for the business profile and its
// satellite records: documents, tax info, subscription, and bank link.
type BusinessRepository interface {
	GetProfile(businessID string) (*models.BusinessProfile, error)
	UpdateProfileWithDocument(businessID string, updateDoc bson.M) error

	ListDocuments(businessID string) ([]models.BusinessDocument, error)
	CreateDocument(doc *models.BusinessDocument) error
	GetDocument(id string) (*models.BusinessDocument, error)
	DeleteDocument(id string) error

	GetTaxInfo(businessID string) (*models.TaxInfo, error)
	UpsertTaxInfo(info *models.TaxInfo) error

	GetSubscription(businessID string) (*models.Subscription, error)
	UpsertSubscription(sub *models.Subscription) error

	GetBankLink(businessID string) (*models.BankLink, error)
	UpsertBankLink(link *models.BankLink) error
}
