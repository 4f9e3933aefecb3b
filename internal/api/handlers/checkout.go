package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

type checkoutStateResponse struct {
	State models.CheckoutState `json:"state"`
}

func wantsHTML(r *http.Request) bool {
	return r.URL.Query().Get("format") == "html" || strings.Contains(r.Header.Get("Accept"), "text/html")
}

// parseReturnParams reads what the gateway appended to the return URL.
// outcome is empty for /payment-result, where the status parameter decides.
func parseReturnParams(r *http.Request, outcome models.ReturnOutcome) *models.ReturnParams {
	_ = r.ParseForm()
	v := r.Form

	params := &models.ReturnParams{
		Outcome:            outcome,
		OrderID:            v.Get("order"),
		Message:            v.Get("message"),
		SignatureVersion:   v.Get(payment.FieldSignatureVersion),
		MerchantParameters: v.Get(payment.FieldMerchantParameters),
		Signature:          v.Get(payment.FieldSignature),
		CheckoutSessionID:  v.Get("session_id"),
	}

	if params.OrderID == "" {
		params.OrderID = v.Get("orderId")
	}

	if params.Outcome == "" {
		switch strings.ToLower(v.Get("status")) {
		case "ok", "success":
			params.Outcome = models.ReturnSuccess
		case "ko", "failure", "error":
			params.Outcome = models.ReturnFailure
		default:
			// signed data without a status still gets verified
			if params.MerchantParameters != "" && params.Signature != "" {
				params.Outcome = models.ReturnSuccess
			} else {
				params.Outcome = models.ReturnFailure
			}
		}
	}

	return params
}

// StartCheckout godoc
//
//	@Summary		Start checkout
//	@Description	Builds the order from the cart, stashes the buyer details and returns the signed gateway handoff. With format=html or Accept text/html the auto-submitting form page is returned instead.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json,html
//	@Param			checkout	body		models.CheckoutRequest		true	"Buyer details"
//	@Param			format		query		string						false	"html for the handoff page"
//	@Success		200			{object}	models.CheckoutResponse		"Gateway handoff"
//	@Failure		400			{object}	response.ErrorResponse		"Empty cart or invalid buyer details"
//	@Failure		502			{object}	response.ErrorResponse		"The payment could not be processed"
//	@Router			/checkout [post]
func (h *CheckoutHandler) StartCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		res, err := h.checkoutService.StartCheckout(r.Context(), sid, &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if wantsHTML(r) {
			page, err := payment.RenderForm(res.Handoff)
			if err != nil {
				logger.Error("Failed to render handoff form", slog.String("error", err.Error()))
				response.Error(w, errors.InternalError("Failed to prepare the payment page").WithError(err))
				return
			}

			response.HTML(w, http.StatusOK, page)
			return
		}

		response.Success(w, http.StatusOK, res)
	}
}

// CheckoutState godoc
//
//	@Summary	Current checkout state
//	@Tags		Checkout
//	@Produce	json
//	@Success	200	{object}	checkoutStateResponse	"State"
//	@Router		/checkout/state [get]
func (h *CheckoutHandler) CheckoutState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		state, err := h.checkoutService.State(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to read checkout state", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, checkoutStateResponse{State: state})
	}
}

// ClearSession godoc
//
//	@Summary		Forget checkout details
//	@Description	Removes the stashed buyer details, order id, totals and receipt bookkeeping.
//	@Tags			Checkout
//	@Success		204
//	@Failure		500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/checkout/session [delete]
func (h *CheckoutHandler) ClearSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		if err := h.checkoutService.ClearSession(r.Context(), sid); err != nil {
			logger.Error("Failed to clear checkout session", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ResendReceipt godoc
//
//	@Summary		Resend the receipt
//	@Description	Sends the receipt of the last order again. Limited to one request every 120 seconds.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.ReceiptResponse	"Receipt sent"
//	@Failure		404	{object}	response.ErrorResponse	"No recent order"
//	@Failure		429	{object}	response.ErrorResponse	"Throttled"
//	@Failure		502	{object}	response.ErrorResponse	"Email delivery failed"
//	@Router			/checkout/receipt/resend [post]
func (h *CheckoutHandler) ResendReceipt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		res, err := h.checkoutService.ResendReceipt(r.Context(), sid)
		if err != nil {
			logger.Warn("Receipt resend refused", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Receipt resent", slog.String("order_id", res.OrderID))
		response.Success(w, http.StatusOK, res)
	}
}

// PaymentResult godoc
//
//	@Summary		Gateway return
//	@Description	Landing for the gateway redirect. /pago-ok and /pago-ko fix the outcome, /payment-result reads status=ok|ko.
//	@Tags			Checkout
//	@Produce		json
//	@Param			status					query		string					false	"ok or ko"
//	@Param			order					query		string					false	"Order id"
//	@Param			message					query		string					false	"Gateway message"
//	@Param			Ds_MerchantParameters	query		string					false	"Signed parameters"
//	@Param			Ds_Signature			query		string					false	"Signature"
//	@Param			session_id				query		string					false	"Hosted checkout session"
//	@Success		200						{object}	models.PaymentResult	"Outcome"
//	@Router			/payment-result [get]
//	@Router			/pago-ok [get]
//	@Router			/pago-ko [get]
func (h *CheckoutHandler) PaymentResult(outcome models.ReturnOutcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		res, err := h.checkoutService.HandleReturn(r.Context(), sid, parseReturnParams(r, outcome))
		if err != nil {
			logger.Error("Failed to process gateway return", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, res)
	}
}

// Notify godoc
//
//	@Summary		Gateway notification
//	@Description	Server-to-server notification carrying signed merchant parameters.
//	@Tags			Checkout
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Success		200	{object}	models.PaymentResult	"Recorded"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid signature"
//	@Failure		404	{object}	response.ErrorResponse	"Notifications disabled"
//	@Router			/checkout/notify [post]
func (h *CheckoutHandler) Notify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		res, err := h.checkoutService.HandleNotification(r.Context(), parseReturnParams(r, models.ReturnSuccess))
		if err != nil {
			logger.Warn("Rejected gateway notification", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Gateway notification recorded", slog.String("order_id", res.OrderID), slog.String("outcome", string(res.Outcome)))
		response.Success(w, http.StatusOK, res)
	}
}

// SignPayment godoc
//
//	@Summary		Sign a payment
//	@Description	Signing backend contract. Answers the signed merchant parameters for an amount in minor units.
//	@Tags			Backend
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.PaymentRequest	true	"Amount in cents"
//	@Success		200		{object}	models.SignedPayload	"Signed payload"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		404		{object}	response.ErrorResponse	"Signing disabled"
//	@Router			/api/create [post]
func (h *CheckoutHandler) SignPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.PaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid signing request")
			return
		}

		payload, err := h.checkoutService.SignPayment(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to sign payment", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		_ = response.WriteJson(w, http.StatusOK, payload)
	}
}
