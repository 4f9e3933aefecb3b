package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CommercialHandler struct {
	commercialService service.CommercialService
	validator         *validator.Validate
}

func NewCommercialHandler(commercialService service.CommercialService) *CommercialHandler {
	return &CommercialHandler{commercialService: commercialService, validator: validator.New()}
}

// Quote godoc
//
//	@Summary		Price a bulk order
//	@Description	Subtotal, discount capped at 30%, 21% VAT on the discounted base and total.
//	@Tags			Commercial
//	@Accept			json
//	@Produce		json
//	@Param			quote	body		models.QuoteRequest		true	"Quantities per product id"
//	@Success		200		{object}	models.Quote			"Quote"
//	@Failure		400		{object}	response.ErrorResponse	"Unknown product or empty order"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/commercial/quote [post]
func (h *CommercialHandler) Quote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.QuoteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quote input")
			return
		}

		quote, err := h.commercialService.Quote(r.Context(), &req)
		if err != nil {
			logger.Warn("Quote rejected", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, quote)
	}
}

// PlaceOrder godoc
//
//	@Summary		Confirm a bulk order
//	@Description	Saves the order and emails the confirmation. An email failure is reported with email_sent=false and the order stays saved.
//	@Tags			Commercial
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CommercialOrderRequest	true	"Customer and quantities"
//	@Success		201		{object}	models.CommercialOrderResult	"Saved order"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		401		{object}	response.ErrorResponse			"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse			"Order could not be saved"
//	@Security		BearerAuth
//	@Router			/commercial/orders [post]
func (h *CommercialHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized commercial order attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CommercialOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid commercial order input")
			return
		}

		result, err := h.commercialService.PlaceOrder(r.Context(), claims.Username, &req)
		if err != nil {
			logger.Error("Failed to place commercial order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, result)
	}
}

// ListOrders godoc
//
//	@Summary		Order history
//	@Description	Newest first. agent filters by agent username, empty lists everyone.
//	@Tags			Commercial
//	@Produce		json
//	@Param			agent	query		string					false	"Agent username"
//	@Param			limit	query		int						false	"Maximum orders (default and max 100)"
//	@Success		200		{array}		models.CommercialOrder	"Orders"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/commercial/orders [get]
func (h *CommercialHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		q := r.URL.Query()

		limit := 0
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				response.Error(w, errors.BadRequestError("Invalid limit").WithDetail(v))
				return
			}

			limit = n
		}

		orders, err := h.commercialService.ListOrders(r.Context(), q.Get("agent"), limit)
		if err != nil {
			logger.Error("Failed to list commercial orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}
