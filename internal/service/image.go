package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/fahrielsara/portfolio-backend/config"
)

// allowedImageTypes maps acceptable upload content types to the stored
// file extension.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageService stores uploaded site assets (profile photo, project covers,
// social images) in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Upload stores the image bytes under site-assets/ with a generated name
// and returns the public URL. originalName only contributes a fallback
// extension when the content type is missing.
func (s *ImageService) Upload(ctx context.Context, data []byte, originalName, contentType string) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		// Some browsers omit the part content type; fall back to the
		// file extension before rejecting.
		ext = strings.ToLower(path.Ext(originalName))
		switch ext {
		case ".png", ".jpg", ".jpeg", ".webp", ".gif":
			contentType = "image/" + strings.TrimPrefix(ext, ".")
			if ext == ".jpg" || ext == ".jpeg" {
				contentType = "image/jpeg"
			}
		default:
			return "", fmt.Errorf("unsupported image type %q", contentType)
		}
	}

	fileName := fmt.Sprintf("site-assets/%s%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName)
	log.Printf("[ImageService] Uploaded %s", publicURL)
	return publicURL, nil
}
