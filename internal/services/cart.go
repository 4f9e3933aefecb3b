package service

import (
	"context"
	"slices"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
	"github.com/shopspring/decimal"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	Increment(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error)
	Decrement(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartService struct {
	store     *session.Store
	publisher events.Publisher
}

func NewCartService(store *session.Store, publisher events.Publisher) CartService {
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &cartService{store: store, publisher: publisher}
}

// GetCart implements CartService.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	lines, err := s.store.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	return buildCart(sessionID, lines), nil
}

// AddItem implements CartService.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	qty := max(1, req.Quantity)

	cart, err := s.mutate(ctx, sessionID, func(lines []models.CartLine) []models.CartLine {
		if i := indexOf(lines, req.ID); i >= 0 {
			lines[i].Quantity += qty
			return lines
		}

		return append(lines, models.CartLine{
			ID:       req.ID,
			Name:     req.Name,
			Price:    req.Price,
			Image:    req.Image,
			Quantity: qty,
		})
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.CartItemAdded{
		SessionID: sessionID,
		LineID:    string(req.ID),
		Quantity:  qty,
		OpenCart:  req.OpenCart,
	})

	return cart, nil
}

// Increment implements CartService.
func (s *cartService) Increment(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(lines []models.CartLine) []models.CartLine {
		if i := indexOf(lines, id); i >= 0 {
			lines[i].Quantity++
		}

		return lines
	})
}

// Decrement implements CartService. A line reaching zero is dropped.
func (s *cartService) Decrement(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(lines []models.CartLine) []models.CartLine {
		i := indexOf(lines, id)
		if i < 0 {
			return lines
		}

		lines[i].Quantity--
		if lines[i].Quantity <= 0 {
			return slices.Delete(lines, i, i+1)
		}

		return lines
	})
}

// RemoveItem implements CartService.
func (s *cartService) RemoveItem(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(lines []models.CartLine) []models.CartLine {
		return slices.DeleteFunc(lines, func(l models.CartLine) bool { return l.ID == id })
	})
}

// Clear implements CartService.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	if err := s.store.SaveCart(ctx, sessionID, nil); err != nil {
		return errors.StorageError("Failed to clear cart").WithError(err)
	}

	return nil
}

// mutate runs a read-modify-write of the session cart under the session lock
// and persists the full line list.
func (s *cartService) mutate(ctx context.Context, sessionID string, fn func([]models.CartLine) []models.CartLine) (*models.Cart, error) {
	unlock := s.store.Lock(sessionID)
	defer unlock()

	lines, err := s.store.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.StorageError("Failed to load cart").WithError(err)
	}

	lines = fn(lines)

	if err := s.store.SaveCart(ctx, sessionID, lines); err != nil {
		return nil, errors.StorageError("Failed to update cart").WithError(err)
	}

	return buildCart(sessionID, lines), nil
}

func indexOf(lines []models.CartLine, id models.LineID) int {
	return slices.IndexFunc(lines, func(l models.CartLine) bool { return l.ID == id })
}

func buildCart(sessionID string, lines []models.CartLine) *models.Cart {
	cart := &models.Cart{
		SessionID:  sessionID,
		Lines:      lines,
		TotalPrice: decimal.Zero,
	}

	for _, l := range lines {
		cart.TotalItems += l.Quantity
		cart.TotalPrice = cart.TotalPrice.Add(l.Subtotal())
	}

	return cart
}
