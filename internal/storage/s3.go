// Package storage uploads product images to object storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, body []byte, contentType string) (string, error)
}

// s3Uploader implements Uploader against AWS S3.
type s3Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3Uploader creates an S3-backed image uploader.
func NewS3Uploader(ctx context.Context, bucket, region, prefix string, logger zerolog.Logger) (Uploader, error) {
	logger = logger.With().Str("component", "s3-uploader").Logger()

	// Load AWS configuration
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 uploader initialised")

	return &s3Uploader{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Upload stores the image under a timestamped key and returns its public URL.
func (u *s3Uploader) Upload(ctx context.Context, filename string, body []byte, contentType string) (string, error) {
	key := path.Join(u.prefix, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &u.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		u.logger.Error().Err(err).Str("key", key).Msg("failed to upload image")
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)

	u.logger.Info().
		Str("key", key).
		Int("size", len(body)).
		Msg("image uploaded")

	return url, nil
}

// disabledUploader rejects uploads when object storage is not configured.
type disabledUploader struct{}

// NewDisabledUploader returns an Uploader that always fails with a clear
// message. Wired when S3 is disabled so handlers stay uniform.
func NewDisabledUploader() Uploader {
	return disabledUploader{}
}

func (disabledUploader) Upload(context.Context, string, []byte, string) (string, error) {
	return "", fmt.Errorf("image storage is not configured")
}
