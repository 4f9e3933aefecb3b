package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/cache"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// Checkout fields kept per shopper session.
const (
	FieldState           = "state"
	FieldBuyer           = "buyer"
	FieldOrderID         = "order_id"
	FieldTotal           = "total"
	FieldProductNames    = "product_names"
	FieldReceiptLastSent = "receipt_last_sent"
)

var checkoutFields = []string{
	FieldState,
	FieldBuyer,
	FieldOrderID,
	FieldTotal,
	FieldProductNames,
	FieldReceiptLastSent,
}

// Store is the server-side replacement for the browser's local and session storage.
// Cart and consent survive indefinitely, checkout bookkeeping expires with the session.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
	locks *keyedMutex
}

func NewStore(c cache.Cache, sessionTTL time.Duration) *Store {
	return &Store{
		cache: c,
		ttl:   sessionTTL,
		locks: newKeyedMutex(),
	}
}

// Lock serialises read-modify-write sequences on one session.
func (s *Store) Lock(sessionID string) (unlock func()) {
	return s.locks.lock(sessionID)
}

// LoadCart returns the persisted lines. Unreadable data yields an empty cart.
func (s *Store) LoadCart(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine

	found, err := s.cache.Get(ctx, cache.Key(cache.CartKeyPrefix, sessionID), &lines)
	if err != nil {
		if isDecodeError(err) {
			return []models.CartLine{}, nil
		}

		return nil, err
	}

	if !found || lines == nil {
		return []models.CartLine{}, nil
	}

	return lines, nil
}

func (s *Store) SaveCart(ctx context.Context, sessionID string, lines []models.CartLine) error {
	if lines == nil {
		lines = []models.CartLine{}
	}

	return s.cache.Set(ctx, cache.Key(cache.CartKeyPrefix, sessionID), lines, cache.NoExpiry)
}

func (s *Store) LoadConsent(ctx context.Context, sessionID string) (*models.Consent, error) {
	var consent models.Consent

	found, err := s.cache.Get(ctx, cache.Key(cache.ConsentKeyPrefix, sessionID), &consent)
	if err != nil {
		if isDecodeError(err) {
			return nil, nil
		}

		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &consent, nil
}

func (s *Store) SaveConsent(ctx context.Context, sessionID string, consent *models.Consent) error {
	return s.cache.Set(ctx, cache.Key(cache.ConsentKeyPrefix, sessionID), consent, cache.NoExpiry)
}

func (s *Store) SetCheckout(ctx context.Context, sessionID, field string, value any) error {
	return s.cache.Set(ctx, checkoutKey(sessionID, field), value, s.ttl)
}

// GetCheckout decodes a checkout field into dst. A missing or corrupt field reports false.
func (s *Store) GetCheckout(ctx context.Context, sessionID, field string, dst any) (bool, error) {
	found, err := s.cache.Get(ctx, checkoutKey(sessionID, field), dst)
	if err != nil {
		if isDecodeError(err) {
			return false, nil
		}

		return false, err
	}

	return found, nil
}

// ClearCheckout removes every checkout field of the session.
func (s *Store) ClearCheckout(ctx context.Context, sessionID string) error {
	keys := make([]string, 0, len(checkoutFields))
	for _, f := range checkoutFields {
		keys = append(keys, checkoutKey(sessionID, f))
	}

	return s.cache.Delete(ctx, keys...)
}

// ClaimReceipt marks the receipt of orderID as sent. Only the first caller gets true.
func (s *Store) ClaimReceipt(ctx context.Context, orderID string) (bool, error) {
	return s.cache.SetNX(ctx, cache.Key(cache.ReceiptKeyPrefix, orderID), true, 0)
}

// ReleaseReceipt undoes ClaimReceipt after a failed send so it can be retried.
func (s *Store) ReleaseReceipt(ctx context.Context, orderID string) error {
	return s.cache.Delete(ctx, cache.Key(cache.ReceiptKeyPrefix, orderID))
}

func checkoutKey(sessionID, field string) string {
	return cache.Key(cache.CheckoutKeyPrefix, sessionID, field)
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError

	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
