package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/events"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

const defaultHistoryLimit = 100

type CommercialService interface {
	Quote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error)
	// PlaceOrder persists the order first. A failed confirmation email is
	// reported in the result and never undoes the saved order.
	PlaceOrder(ctx context.Context, agent string, req *models.CommercialOrderRequest) (*models.CommercialOrderResult, error)
	ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error)
}

type CommercialConfig struct {
	VATRate            float64
	MaxDiscountPercent float64
	TemplateID         string
	OrdersInbox        string
	Locale             string
}

type commercialService struct {
	repo          repository.CommercialOrderRepository
	catalog       CatalogService
	notifications NotificationService
	publisher     events.Publisher
	cfg           CommercialConfig
}

func NewCommercialService(repo repository.CommercialOrderRepository, catalog CatalogService, notifications NotificationService, publisher events.Publisher, cfg CommercialConfig) CommercialService {
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &commercialService{
		repo:          repo,
		catalog:       catalog,
		notifications: notifications,
		publisher:     publisher,
		cfg:           cfg,
	}
}

// Quote implements CommercialService.
func (s *commercialService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	return s.quote(ctx, req.Quantities, req.DiscountPercent)
}

// PlaceOrder implements CommercialService.
func (s *commercialService) PlaceOrder(ctx context.Context, agent string, req *models.CommercialOrderRequest) (*models.CommercialOrderResult, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("agent", agent))

	quote, err := s.quote(ctx, req.Quantities, req.DiscountPercent)
	if err != nil {
		return nil, err
	}

	order := &models.CommercialOrder{
		Agent:    agent,
		Customer: req.Customer,
		Quote:    *quote,
		Notes:    strings.TrimSpace(req.Notes),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		logger.Error("Failed to save commercial order", slog.String("error", err.Error()))
		return nil, errors.DatabaseError("Failed to save the order").WithError(err)
	}

	logger.Info("Commercial order saved", slog.Int64("order_id", order.ID), slog.String("total", quote.Total.StringFixed(2)))

	result := &models.CommercialOrderResult{Order: order, EmailSent: true}

	if _, err := s.notifications.SendEmail(ctx, s.confirmationEmail(order)); err != nil {
		logger.Warn("Order saved but confirmation email failed", slog.Int64("order_id", order.ID), slog.String("error", err.Error()))

		result.EmailSent = false
		result.EmailError = err.Error()
	}

	s.publisher.Publish(ctx, events.CommercialOrderSaved{
		OrderID: order.ID,
		Agent:   agent,
		Total:   quote.Total.StringFixed(2),
	})

	return result, nil
}

// ListOrders implements CommercialService.
func (s *commercialService) ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error) {
	if limit <= 0 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}

	orders, err := s.repo.ListOrders(ctx, strings.TrimSpace(agent), limit)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load orders").WithError(err)
	}

	return orders, nil
}

// quote prices the quantities against the catalog. Lines keep catalog order
// and quantities of zero or less are ignored.
func (s *commercialService) quote(ctx context.Context, quantities map[string]int, discountPercent float64) (*models.Quote, error) {
	products := s.catalog.AllProducts(ctx)
	seen := make(map[string]bool, len(quantities))

	lines := []models.QuoteLine{}
	subtotal := decimal.Zero

	for _, p := range products {
		id := strconv.FormatInt(p.ID, 10)

		qty, ok := quantities[id]
		if !ok {
			continue
		}

		seen[id] = true

		if qty <= 0 {
			continue
		}

		unit := decimal.NewFromFloat(p.Price).Round(2)
		lineTotal := unit.Mul(decimal.NewFromInt(int64(qty)))

		lines = append(lines, models.QuoteLine{
			ProductID: id,
			Name:      p.Name.Get(s.cfg.Locale, "es"),
			UnitPrice: unit,
			Quantity:  qty,
			Subtotal:  lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	var unknown []string
	for id := range quantities {
		if !seen[id] {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, errors.ValidationError("Unknown product in order").WithDetail(strings.Join(unknown, ", "))
	}

	if len(lines) == 0 {
		return nil, errors.ValidationError("Add at least one product to the order")
	}

	return priceQuote(lines, subtotal, discountPercent, s.cfg), nil
}

// priceQuote applies the clamped discount, then VAT on the discounted base.
func priceQuote(lines []models.QuoteLine, subtotal decimal.Decimal, discountPercent float64, cfg CommercialConfig) *models.Quote {
	hundred := decimal.NewFromInt(100)

	pct := decimal.NewFromFloat(discountPercent)
	pct = decimal.Max(decimal.Zero, decimal.Min(pct, decimal.NewFromFloat(cfg.MaxDiscountPercent)))

	discount := subtotal.Mul(pct).Div(hundred).Round(2)
	base := subtotal.Sub(discount)
	rate := decimal.NewFromFloat(cfg.VATRate)
	vat := base.Mul(rate).Round(2)

	return &models.Quote{
		Lines:           lines,
		Subtotal:        subtotal.Round(2),
		DiscountPercent: pct,
		Discount:        discount,
		TaxableBase:     base.Round(2),
		VATRate:         rate,
		VAT:             vat,
		Total:           base.Add(vat).Round(2),
	}
}

func (s *commercialService) confirmationEmail(order *models.CommercialOrder) *models.TemplateEmail {
	ref := strconv.FormatInt(order.ID, 10)
	q := order.Quote

	var text strings.Builder
	fmt.Fprintf(&text, "Order %s for %s\n\n", ref, order.Customer.Name)

	lines := make([]map[string]any, 0, len(q.Lines))
	for _, l := range q.Lines {
		fmt.Fprintf(&text, "%s x%d  %s = %s EUR\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal.StringFixed(2))

		lines = append(lines, map[string]any{
			"name":       l.Name,
			"quantity":   l.Quantity,
			"unit_price": l.UnitPrice.StringFixed(2),
			"subtotal":   l.Subtotal.StringFixed(2),
		})
	}

	fmt.Fprintf(&text, "\nSubtotal: %s EUR\nDiscount (%s%%): -%s EUR\nVAT: %s EUR\nTotal: %s EUR\n",
		q.Subtotal.StringFixed(2), q.DiscountPercent.String(), q.Discount.StringFixed(2), q.VAT.StringFixed(2), q.Total.StringFixed(2))

	if order.Notes != "" {
		fmt.Fprintf(&text, "\nNotes: %s\n", order.Notes)
	}

	return &models.TemplateEmail{
		Kind:       models.NotificationCommercialOrder,
		Reference:  ref,
		Recipient:  order.Customer.Email,
		Name:       order.Customer.Name,
		Subject:    "Order confirmation " + ref,
		TemplateID: s.cfg.TemplateID,
		BCC:        []string{s.cfg.OrdersInbox},
		Data: map[string]any{
			"order_id":         ref,
			"agent":            order.Agent,
			"customer":         order.Customer.Name,
			"customer_email":   order.Customer.Email,
			"customer_phone":   order.Customer.Phone,
			"tax_id":           order.Customer.TaxID,
			"address":          order.Customer.Address,
			"lines":            lines,
			"subtotal":         q.Subtotal.StringFixed(2),
			"discount_percent": q.DiscountPercent.String(),
			"discount":         q.Discount.StringFixed(2),
			"vat":              q.VAT.StringFixed(2),
			"total":            q.Total.StringFixed(2),
			"notes":            order.Notes,
		},
		Text: text.String(),
	}
}
