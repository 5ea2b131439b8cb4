package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/devport/portfolio-backend/internal/content/domain"
)

const inquiriesCollection = "inquiries"

// InquiryRepository persists contact-form submissions. Inquiries are never
// read back through the public API; the only read is the rate-limit count.
type InquiryRepository struct {
	client *firestore.Client
}

func NewInquiryRepository(client *firestore.Client) *InquiryRepository {
	return &InquiryRepository{client: client}
}

func (r *InquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) (string, error) {
	ref := r.client.Collection(inquiriesCollection).NewDoc()
	if _, err := ref.Create(ctx, inq); err != nil {
		return "", fmt.Errorf("create inquiry: %w", err)
	}
	return ref.ID, nil
}

// CountRecent counts inquiries from the client key submitted at or after the
// cutoff. It backs the sliding-window rate limiter.
func (r *InquiryRepository) CountRecent(ctx context.Context, clientKey string, since time.Time) (int, error) {
	iter := r.client.Collection(inquiriesCollection).
		Where("clientKey", "==", clientKey).
		Where("submittedAt", ">=", since).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("count inquiries for %s: %w", clientKey, err)
		}
		count++
	}

	return count, nil
}
