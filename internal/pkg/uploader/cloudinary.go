// internal/pkg/uploader/cloudinary.go
package uploader

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/oklog/ulid/v2"
)

// ImageUploader stores voucher images on an external image host.
type ImageUploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, url string) error
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

var validExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

const maxImageSize = 10 * 1024 * 1024

// Upload pushes a voucher image and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if !validExtensions[strings.ToLower(path.Ext(file.Filename))] {
		return "", fmt.Errorf("unsupported image format: use JPG, PNG, GIF or WEBP")
	}
	if file.Size > maxImageSize {
		return "", fmt.Errorf("image too large: maximum 10MB allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	truthy := true
	result, err := u.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       fmt.Sprintf("voucher_%s", ulid.Make().String()),
		UniqueFilename: &truthy,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload voucher image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("empty secure URL in cloudinary response")
	}

	return result.SecureURL, nil
}

// Delete removes a previously uploaded voucher by its URL.
func (u *CloudinaryUploader) Delete(ctx context.Context, url string) error {
	publicID := publicIDFromURL(url, u.folder)
	if publicID == "" {
		return fmt.Errorf("cannot derive public id from voucher url")
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete voucher image: %w", err)
	}
	return nil
}

// publicIDFromURL extracts "<folder>/<name>" from a cloudinary delivery URL.
func publicIDFromURL(url, folder string) string {
	base := strings.TrimSuffix(path.Base(url), path.Ext(url))
	if base == "" || base == "." {
		return ""
	}
	if folder == "" {
		return base
	}
	return folder + "/" + base
}
