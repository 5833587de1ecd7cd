package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadService struct {
	cld *cloudinary.Cloudinary
}

var Uploads *UploadService

func InitializeUploads(cloudinaryURL string) error {
	if cloudinaryURL == "" {
		return fmt.Errorf("cloudinary URL is required")
	}

	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	Uploads = &UploadService{cld: cld}
	return nil
}

// UploadImage stores one image and returns its HTTPS delivery URL.
func (s *UploadService) UploadImage(ctx context.Context, file multipart.File, folder string) (string, error) {
	truthy := true
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       fmt.Sprintf("%s/%d", folder, time.Now().UnixNano()),
		Folder:         folder,
		UseFilename:    &truthy,
		UniqueFilename: &truthy,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := result.SecureURL
	if url == "" {
		url = strings.Replace(result.URL, "http://", "https://", 1)
	}
	return url, nil
}
