package service

import (
	"context"
	"io"
)

// ImageUpload is the result of a successful image upload.
type ImageUpload struct {
	URL      string // Public delivery URL of the asset.
	PublicID string // Host-side identifier, needed to delete the asset later.
}

// ImageService defines the interface to the image hosting provider.
type ImageService interface {
	// Upload stores an image and returns its public URL and ID.
	Upload(ctx context.Context, fileName string, content io.Reader) (*ImageUpload, error)

	// Delete removes a previously uploaded asset by its public ID.
	Delete(ctx context.Context, publicID string) error
}
