package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/devport/portfolio-backend/internal/content/domain"
	"github.com/devport/portfolio-backend/internal/ratelimit"
	"github.com/devport/portfolio-backend/internal/validation"
)

// WriteService handles the public contact-form path.
type WriteService struct {
	inquiries InquiryRepo
	limiter   ratelimit.Limiter
}

func NewWriteService(inquiries InquiryRepo, limiter ratelimit.Limiter) *WriteService {
	return &WriteService{
		inquiries: inquiries,
		limiter:   limiter,
	}
}

// SubmitInquiry validates, rate-limits and persists a submission, in that
// order. Validation runs first so a malformed submission never consumes the
// caller's rate-limit budget.
func (s *WriteService) SubmitInquiry(ctx context.Context, form validation.ContactFormInput, clientKey string) error {
	if fields := validation.ContactForm(form); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	ok, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		// Fail closed: an unanswerable limiter rejects the write.
		return fmt.Errorf("%w: rate limit check failed: %v", domain.ErrUnavailable, err)
	}
	if !ok {
		return ErrRateLimited
	}

	inq := &domain.Inquiry{
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Subject:   strings.TrimSpace(form.Subject),
		Message:   strings.TrimSpace(form.Message),
		ClientKey: clientKey,
		Read:      false,
		Replied:   false,
	}

	if _, err := s.inquiries.Create(ctx, inq); err != nil {
		return fmt.Errorf("persist inquiry: %w", err)
	}

	return nil
}
