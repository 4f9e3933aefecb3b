package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	searchService  service.SearchService
}

func NewCatalogHandler(catalogService service.CatalogService, searchService service.SearchService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, searchService: searchService}
}

func parseProductFilter(r *http.Request) (models.ProductFilter, error) {
	q := r.URL.Query()
	filter := models.ProductFilter{
		Sport:    q.Get("sport"),
		Category: q.Get("category"),
	}

	if v := q.Get("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errors.BadRequestError("Invalid available filter").WithDetail(v)
		}

		filter.Available = &available
	}

	if v := q.Get("id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, errors.BadRequestError("Invalid product id").WithDetail(v)
		}

		filter.ID = &id
	}

	return filter, nil
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Lists catalog products. Served from the product API, or the bundled catalog when it is unavailable.
//	@Tags			Catalog
//	@Produce		json
//	@Param			sport		query		string					false	"Sport id"
//	@Param			category	query		string					false	"Category"
//	@Param			available	query		bool					false	"Only available products"
//	@Param			id			query		int						false	"Product id"
//	@Success		200			{object}	models.ProductsEnvelope	"Products"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid filter"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseProductFilter(r)
		if err != nil {
			logger.Warn("Invalid product filter", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		env, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, env)
	}
}

// ProductAPI godoc
//
//	@Summary		Product API contract
//	@Description	Same data as ListProducts in the bare product API shape, without the success envelope wrapper.
//	@Tags			Backend
//	@Produce		json
//	@Param			sport		query		string					false	"Sport id"
//	@Param			category	query		string					false	"Category"
//	@Param			available	query		bool					false	"Only available products"
//	@Param			id			query		int						false	"Product id"
//	@Success		200			{object}	models.ProductsEnvelope	"Products"
//	@Router			/api/products [get]
func (h *CatalogHandler) ProductAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseProductFilter(r)
		if err != nil {
			_ = response.WriteJson(w, http.StatusBadRequest, models.ProductsEnvelope{Success: false, Products: []models.Product{}})
			return
		}

		env, err := h.catalogService.ListProducts(r.Context(), filter)
		if err != nil {
			_ = response.WriteJson(w, http.StatusInternalServerError, models.ProductsEnvelope{Success: false, Products: []models.Product{}})
			return
		}

		_ = response.WriteJson(w, http.StatusOK, env)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Description	Finds a product by numeric id or slug. The sport segment is optional.
//	@Tags			Catalog
//	@Produce		json
//	@Param			sportId	path		string					false	"Sport id"
//	@Param			ref		path		string					true	"Product id or slug"
//	@Success		200		{object}	models.Product			"Product"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{sportId}/{ref} [get]
//	@Router			/product/{ref} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sportID := r.PathValue("sportId")
		ref := r.PathValue("ref")

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("ref", ref), slog.String("sport", sportID))

		product, err := h.catalogService.GetProduct(r.Context(), sportID, ref)
		if err != nil {
			logger.Info("Product lookup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// Search godoc
//
//	@Summary		Search products
//	@Description	Ranks products for the query. An empty query returns a random sample.
//	@Tags			Catalog
//	@Produce		json
//	@Param			q		query		string					false	"Search text"
//	@Param			locale	query		string					false	"Display locale"
//	@Success		200		{object}	models.SearchResponse	"Ranked results"
//	@Router			/search [get]
func (h *CatalogHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		res := h.searchService.Search(r.Context(), q.Get("q"), q.Get("locale"))

		response.Success(w, http.StatusOK, res)
	}
}
