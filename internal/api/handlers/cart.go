package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// requireSession writes the error response itself when the request carries no session.
func requireSession(w http.ResponseWriter, r *http.Request) (string, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	sid := middleware.SessionIDFromContext(r.Context())
	if sid == "" {
		logger.Warn("Request without shopper session")
		response.Error(w, errors.BadRequestError("Session is required"))

		return "", logger, false
	}

	return sid, logger, true
}

// GetCart godoc
//
//	@Summary		Get the cart
//	@Description	Returns the shopper's cart with derived totals.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Shopper session id (or sid cookie)"
//	@Success		200				{object}	models.Cart				"Cart"
//	@Failure		500				{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to load cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adds a product line, merging with an existing line of the same id. Quantity defaults to 1.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item"
//	@Success		200		{object}	models.Cart				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sid, &req)
		if err != nil {
			logger.Error("Failed to add cart item", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Cart item added", slog.String("item", string(req.ID)), slog.Int("total_items", cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) lineHandler(op string, call func(r *http.Request, sid string, id models.LineID) (*models.Cart, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Item id is required"))
			return
		}

		cart, err := call(r, sid, models.LineID(id))
		if err != nil {
			logger.Error("Cart update failed", slog.String("op", op), slog.String("item", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// Increment godoc
//
//	@Summary	Increase a line quantity by one
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string					true	"Line id"
//	@Success	200	{object}	models.Cart				"Updated cart"
//	@Failure	500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router		/cart/items/{id}/increment [post]
func (h *CartHandler) Increment() http.HandlerFunc {
	return h.lineHandler("increment", func(r *http.Request, sid string, id models.LineID) (*models.Cart, error) {
		return h.cartService.Increment(r.Context(), sid, id)
	})
}

// Decrement godoc
//
//	@Summary		Decrease a line quantity by one
//	@Description	A line that reaches zero is removed. Unknown ids are ignored.
//	@Tags			Cart
//	@Produce		json
//	@Param			id	path		string					true	"Line id"
//	@Success		200	{object}	models.Cart				"Updated cart"
//	@Failure		500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/cart/items/{id}/decrement [post]
func (h *CartHandler) Decrement() http.HandlerFunc {
	return h.lineHandler("decrement", func(r *http.Request, sid string, id models.LineID) (*models.Cart, error) {
		return h.cartService.Decrement(r.Context(), sid, id)
	})
}

// RemoveItem godoc
//
//	@Summary	Remove a line
//	@Tags		Cart
//	@Produce	json
//	@Param		id	path		string					true	"Line id"
//	@Success	200	{object}	models.Cart				"Updated cart"
//	@Failure	500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.lineHandler("remove", func(r *http.Request, sid string, id models.LineID) (*models.Cart, error) {
		return h.cartService.RemoveItem(r.Context(), sid, id)
	})
}

// ClearCart godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Success	204
//	@Failure	500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		if err := h.cartService.Clear(r.Context(), sid); err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
