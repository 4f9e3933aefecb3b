package service

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
)

type ConsentService interface {
	// GetConsent returns nil when the shopper has not answered the banner yet.
	GetConsent(ctx context.Context, sessionID string) (*models.Consent, error)
	SaveConsent(ctx context.Context, sessionID string, req *models.ConsentRequest) (*models.Consent, error)
}

type consentService struct {
	store *session.Store
	now   func() time.Time
}

func NewConsentService(store *session.Store) ConsentService {
	return &consentService{store: store, now: time.Now}
}

// GetConsent implements ConsentService.
func (s *consentService) GetConsent(ctx context.Context, sessionID string) (*models.Consent, error) {
	consent, err := s.store.LoadConsent(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load consent").WithError(err)
	}

	return consent, nil
}

// SaveConsent implements ConsentService. Necessary cookies are always on.
func (s *consentService) SaveConsent(ctx context.Context, sessionID string, req *models.ConsentRequest) (*models.Consent, error) {
	consent := &models.Consent{
		Necessary: true,
		Analytics: req.Analytics,
		Marketing: req.Marketing,
		Timestamp: s.now().UTC(),
	}

	if err := s.store.SaveConsent(ctx, sessionID, consent); err != nil {
		return nil, errors.StorageError("Failed to save consent").WithError(err)
	}

	return consent, nil
}
