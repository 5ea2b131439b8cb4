// Package media validates and stores image uploads.
package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

const MaxUploadBytes = 5 << 20 // 5 MiB

var (
	ErrInvalidFileType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidFolder   = errors.New("invalid target folder")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var allowedFolders = map[string]bool{
	"projects": true,
	"profile":  true,
	"temp":     true,
}

// BlobStore writes an object and returns its publicly resolvable URI.
type BlobStore interface {
	Write(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

type Uploader struct {
	store BlobStore
	now   func() time.Time
}

func NewUploader(store BlobStore) *Uploader {
	return &Uploader{
		store: store,
		now:   time.Now,
	}
}

// Validate applies the upload gates without touching storage.
func Validate(data []byte, mimeType, folder string) error {
	if !allowedTypes[mimeType] {
		return ErrInvalidFileType
	}
	if len(data) > MaxUploadBytes {
		return ErrFileTooLarge
	}
	if !allowedFolders[folder] {
		return ErrInvalidFolder
	}
	return nil
}

// Upload stores the payload under a name prefixed with a nanosecond
// timestamp, so a re-upload of the same filename never overwrites an earlier
// object.
func (u *Uploader) Upload(ctx context.Context, data []byte, mimeType, folder, filename string) (string, error) {
	if err := Validate(data, mimeType, folder); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("%s/%d_%s", folder, u.now().UnixNano(), sanitizeFilename(filename))

	uri, err := u.store.Write(ctx, objectName, mimeType, data)
	if err != nil {
		return "", fmt.Errorf("write object %s: %w", objectName, err)
	}

	return uri, nil
}

// sanitizeFilename strips any path component and characters that are awkward
// in object names or URLs.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
