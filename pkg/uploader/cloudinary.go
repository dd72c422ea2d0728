package uploader

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const projectFolder = "buildhive_projects"

// Uploader stores image blobs and returns public URLs.
type Uploader interface {
	Upload(ctx context.Context, data []byte) (string, error)
}

type cloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader parses a cloudinary:// URL into a client.
func NewCloudinaryUploader(cloudinaryURL string) (Uploader, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &cloudinaryUploader{client: client}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, data []byte) (string, error) {
	result, err := u.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       projectFolder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload failed: no url returned")
	}
	return result.SecureURL, nil
}

// NoopUploader is used when no Cloudinary URL is configured. Uploads
// are rejected so projects fall back to external image links.
type NoopUploader struct{}

func (NoopUploader) Upload(ctx context.Context, data []byte) (string, error) {
	return "", fmt.Errorf("image uploads are not configured")
}
