package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-recap/pkg/config"
)

// MinIOClient archives raw transcripts in a MinIO (S3 compatible) bucket
type MinIOClient struct {
	client *minio.Client
	bucket string
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket when it does not exist yet. Transcripts
// stay private, so no bucket policy is set.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Archive uploads the transcript text under key and returns the object key
func (m *MinIOClient) Archive(ctx context.Context, key, content string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: contentTypeFor(key),
		UserMetadata: map[string]string{
			"source": "meeting-recap",
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript %s: %w", key, err)
	}
	return key, nil
}

// Bucket returns the configured bucket name
func (m *MinIOClient) Bucket() string {
	return m.bucket
}

func contentTypeFor(key string) string {
	switch {
	case strings.HasSuffix(key, ".json"):
		return "application/json"
	case strings.HasSuffix(key, ".csv"):
		return "text/csv"
	default:
		return "text/plain; charset=utf-8"
	}
}
