package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/catalog"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

const (
	SourceRemote = "remote"
	SourceStatic = "static"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductsEnvelope, error)
	// GetProduct resolves ref as a numeric id or a slug. An empty sportID matches any sport.
	GetProduct(ctx context.Context, sportID, ref string) (*models.Product, error)
	AllProducts(ctx context.Context) []models.Product
}

type catalogService struct {
	client *catalog.Client
	static []models.Product
}

func NewCatalogService(client *catalog.Client, static []models.Product) CatalogService {
	return &catalogService{client: client, static: static}
}

// ListProducts implements CatalogService. The bundled catalog answers
// whenever the product API is unavailable.
func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductsEnvelope, error) {
	if env, ok := s.client.Fetch(ctx, filter); ok {
		env.Metadata = withSource(env.Metadata, SourceRemote)
		return env, nil
	}

	if s.client.Configured() {
		middleware.LoggerFromContext(ctx).Info("Serving static catalog", slog.Int("products", len(s.static)))
	}

	products := catalog.Filter(s.static, filter)

	return &models.ProductsEnvelope{
		Success:        true,
		Products:       products,
		Total:          len(products),
		Metadata:       withSource(nil, SourceStatic),
		FiltersApplied: &filter,
	}, nil
}

// GetProduct implements CatalogService.
func (s *catalogService) GetProduct(ctx context.Context, sportID, ref string) (*models.Product, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.BadRequestError("Product reference is required")
	}

	id, idErr := strconv.ParseInt(ref, 10, 64)

	for _, p := range s.AllProducts(ctx) {
		if sportID != "" && !strings.EqualFold(p.SportID, sportID) {
			continue
		}

		if (idErr == nil && p.ID == id) || strings.EqualFold(p.Slug, ref) {
			return &p, nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

// AllProducts implements CatalogService.
func (s *catalogService) AllProducts(ctx context.Context) []models.Product {
	env, _ := s.ListProducts(ctx, models.ProductFilter{})

	return env.Products
}

func withSource(meta map[string]any, source string) map[string]any {
	if meta == nil {
		meta = make(map[string]any, 1)
	}

	meta["source"] = source

	return meta
}
