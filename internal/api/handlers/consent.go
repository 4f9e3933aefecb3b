package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ConsentHandler struct {
	consentService service.ConsentService
	validator      *validator.Validate
}

func NewConsentHandler(consentService service.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService, validator: validator.New()}
}

// GetConsent godoc
//
//	@Summary		Cookie preferences
//	@Description	Returns the stored cookie preferences, or null when the banner has not been answered.
//	@Tags			Consent
//	@Produce		json
//	@Success		200	{object}	models.Consent			"Preferences"
//	@Failure		500	{object}	response.ErrorResponse	"Session store unavailable"
//	@Router			/consent [get]
func (h *ConsentHandler) GetConsent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		consent, err := h.consentService.GetConsent(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to load consent", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, consent)
	}
}

// SaveConsent godoc
//
//	@Summary		Save cookie preferences
//	@Tags			Consent
//	@Accept			json
//	@Produce		json
//	@Param			consent	body		models.ConsentRequest	true	"Preferences"
//	@Success		200		{object}	models.Consent			"Stored preferences"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid body"
//	@Router			/consent [put]
func (h *ConsentHandler) SaveConsent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ConsentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		consent, err := h.consentService.SaveConsent(r.Context(), sid, &req)
		if err != nil {
			logger.Error("Failed to save consent", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Consent saved", slog.Bool("analytics", consent.Analytics), slog.Bool("marketing", consent.Marketing))
		response.Success(w, http.StatusOK, consent)
	}
}
