package media

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
)

// GCSStore writes objects into a Cloud Storage bucket and returns the
// standard public URL for each.
type GCSStore struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewGCSStore(bucket *storage.BucketHandle, bucketName string) *GCSStore {
	return &GCSStore{
		bucket:     bucket,
		bucketName: bucketName,
	}
}

func (s *GCSStore) Write(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	w := s.bucket.Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", objectName, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
