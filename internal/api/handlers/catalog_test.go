package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func maca() models.Product {
	return models.Product{
		ID:       21,
		Slug:     "maca-andina",
		Name:     models.LocalizedText{"es": "Maca Andina", "en": "Andean Maca"},
		Category: models.LocalizedText{"es": "Energía", "en": "Energy"},
		Price:    12.5,
		SportID:  "running",
	}
}

func setupCatalogHandler(t *testing.T) (*handlers.CatalogHandler, *mocks.CatalogService, *mocks.SearchService) {
	catalogService := mocks.NewCatalogService(t)
	searchService := mocks.NewSearchService(t)

	return handlers.NewCatalogHandler(catalogService, searchService), catalogService, searchService
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Success - Filters passed through", func(t *testing.T) {
		// Arrange
		handler, catalogService, _ := setupCatalogHandler(t)

		catalogService.On("ListProducts", mock.Anything, mock.MatchedBy(func(f models.ProductFilter) bool {
			return f.Sport == "running" && f.Available != nil && *f.Available && f.ID == nil
		})).Return(&models.ProductsEnvelope{Success: true, Products: []models.Product{maca()}, Total: 1}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?sport=running&available=true", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var env models.ProductsEnvelope
		decodeData(t, rr, &env)
		require.Len(t, env.Products, 1)
		assert.Equal(t, "maca-andina", env.Products[0].Slug)
	})

	t.Run("Failure - Invalid id filter", func(t *testing.T) {
		// Arrange
		handler, _, _ := setupCatalogHandler(t)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products?id=abc", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProductAPI(t *testing.T) {
	t.Run("Success - Bare envelope", func(t *testing.T) {
		// Arrange
		handler, catalogService, _ := setupCatalogHandler(t)

		catalogService.On("ListProducts", mock.Anything, mock.Anything).
			Return(&models.ProductsEnvelope{Success: true, Products: []models.Product{maca()}, Total: 1}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/products", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ProductAPI().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var env models.ProductsEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, 1, env.Total)
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("Success - By sport and slug", func(t *testing.T) {
		// Arrange
		handler, catalogService, _ := setupCatalogHandler(t)
		product := maca()

		catalogService.On("GetProduct", mock.Anything, "running", "maca-andina").Return(&product, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/products/running/maca-andina", nil,
			map[string]string{"sportId": "running", "ref": "maca-andina"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Product
		decodeData(t, rr, &got)
		assert.Equal(t, int64(21), got.ID)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		handler, catalogService, _ := setupCatalogHandler(t)

		catalogService.On("GetProduct", mock.Anything, "", "nope").Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/product/nope", nil, map[string]string{"ref": "nope"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)

		resp := decodeData(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestSearchHandler(t *testing.T) {
	t.Run("Success - Query and locale forwarded", func(t *testing.T) {
		// Arrange
		handler, _, searchService := setupCatalogHandler(t)

		searchService.On("Search", mock.Anything, "maca", "en").
			Return(&models.SearchResponse{Query: "maca", Suggestions: []models.Product{maca()}, Results: []models.Product{maca()}}).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/search?q=maca&locale=en", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Search().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var res models.SearchResponse
		decodeData(t, rr, &res)
		assert.Equal(t, "maca", res.Query)
		assert.Len(t, res.Results, 1)
	})
}
