package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService wraps the hosted object store used for avatars, banners,
// logos, and business documents.
type StorageService interface {
	// UploadFile stores the file (an io.Reader or a local path) under the
	// given folder and returns the asset's public ID and delivery URL.
	UploadFile(ctx context.Context, file interface{}, destFolder string) (publicID, url string, err error)
	// DeleteFile removes a file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
