package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds the S3-compatible object store settings (AWS or MinIO)
type Config struct {
	Enabled      bool
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string // leave empty for AWS; set for MinIO
	PublicURL    string // base URL photos are served from; defaults to BaseEndpoint/bucket
}

// PhotoStore uploads report photos and returns publicly addressable URLs
type PhotoStore struct {
	client *s3.Client
	config Config
}

// NewPhotoStore builds the S3 client. Returns nil when the store is disabled;
// callers treat a nil store as "uploads unavailable".
func NewPhotoStore(cfg Config) (*PhotoStore, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &PhotoStore{client: client, config: cfg}, nil
}

// newObjectKey spreads uploads across date prefixes so listing stays cheap
func newObjectKey() string {
	d := time.Now().UTC()
	return fmt.Sprintf("reports/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), uuid.New())
}

// Upload stores the photo and returns its public URL
func (ps *PhotoStore) Upload(ctx context.Context, body io.Reader, contentType string) (string, error) {
	key := newObjectKey()

	_, err := ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.config.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return ps.publicURL(key), nil
}

func (ps *PhotoStore) publicURL(key string) string {
	if ps.config.PublicURL != "" {
		return strings.TrimRight(ps.config.PublicURL, "/") + "/" + key
	}
	if ps.config.BaseEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(ps.config.BaseEndpoint, "/"), ps.config.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", ps.config.Bucket, ps.config.Region, key)
}
