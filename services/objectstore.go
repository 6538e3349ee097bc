package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const BucketName = "gallery"

// ObjectStore is the binary side of the gallery: image bytes addressed by
// bucket key. Handlers get one injected so tests can substitute a fake.
type ObjectStore interface {
	// Put writes an object under key with the given content type.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// PublicURL derives the publicly addressable URL for key. Pure, no
	// network call; the bucket is expected to be readable.
	PublicURL(key string) string
	// Remove deletes the given keys best-effort. It keeps going after an
	// individual failure and returns the first error seen; callers must not
	// treat failure as fatal for already-committed catalog state.
	Remove(ctx context.Context, keys ...string) error
}

// MinioStore is the MinIO-backed ObjectStore.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioStore connects to MinIO and ensures the gallery bucket exists.
func NewMinioStore(endpoint, accessKey, secretKey string, useSSL bool, publicURL string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to object storage: %w", err)
	}

	store := &MinioStore{
		client:    client,
		bucket:    BucketName,
		publicURL: publicURL,
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, store.bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", store.bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, store.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", store.bucket, err)
		}
		slog.Info("created storage bucket", "bucket", store.bucket)
	}

	return store, nil
}

func (s *MinioStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key)
}

func (s *MinioStore) Remove(ctx context.Context, keys ...string) error {
	var firstErr error
	for _, key := range keys {
		if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			slog.Warn("failed to remove object", "key", key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
