package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"
)

const (
	// MaxImageSize is the maximum allowed file size for image uploads (10MB).
	MaxImageSize = 10 * 1024 * 1024
	// FolderImages is the S3 prefix for program image objects.
	FolderImages = "images"
)

// Allowed image MIME types and extensions.
var (
	AllowedImageTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/jpg":  ".jpg",
		"image/png":  ".png",
		"image/webp": ".webp",
		"image/gif":  ".gif",
	}
	AllowedImageExtensions = map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".webp": "image/webp",
		".gif":  "image/gif",
	}
)

// S3Config holds S3 client configuration.
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	AssetsBucket    string
}

// S3 is the asset host for program images. Uploaded objects are publicly
// readable so the stored URL stays stable for the storefront and admin UI.
type S3 struct {
	client   *s3.Client
	uploader *manager.Uploader
	cfg      S3Config
	logger   *zap.Logger
}

// NewS3 creates an S3 client from static credentials, falling back to the
// default credential chain when none are configured.
func NewS3(ctx context.Context, cfg S3Config, logger *zap.Logger) (*S3, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)))
	} else if logger != nil {
		logger.Warn("S3 client using default credential chain (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY not set)")
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg)
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
	})
	return &S3{
		client:   client,
		uploader: uploader,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// ValidateImageType returns true if the content type and/or extension are
// allowed for program images.
func ValidateImageType(contentType, filename string) bool {
	ext := strings.ToLower(path.Ext(filename))
	if contentType != "" {
		if _, ok := AllowedImageTypes[strings.ToLower(contentType)]; ok {
			return true
		}
	}
	if ext != "" {
		if _, ok := AllowedImageExtensions[ext]; ok {
			return true
		}
	}
	return false
}

// ContentTypeForFilename returns the MIME type for an image filename.
func ContentTypeForFilename(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ct, ok := AllowedImageExtensions[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ImageKey returns the S3 object key for an uploaded image:
// images/{id}{ext}. The id is caller-supplied (a uuid) so re-uploads of
// the same filename never collide.
func ImageKey(id, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := AllowedImageExtensions[ext]; !ok {
		ext = ".jpg"
	}
	return path.Join(FolderImages, id+ext)
}

// PublicObjectURL returns the public URL for an object in the assets bucket.
func (s *S3) PublicObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.AssetsBucket, s.cfg.Region, key)
}

// UploadImage streams an image to the assets bucket and returns its
// public URL.
func (s *S3) UploadImage(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) (string, error) {
	var contentLengthPtr *int64
	if contentLength > 0 {
		contentLengthPtr = &contentLength
	}
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.AssetsBucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: contentLengthPtr,
		ACL:           types.ObjectCannedACLPublicRead,
	}
	if _, err := s.uploader.Upload(ctx, input); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	return s.PublicObjectURL(key), nil
}

// DeleteObject removes an object from the assets bucket.
func (s *S3) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.AssetsBucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
