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

type PartnerHandler struct {
	partnerService service.PartnerService
	validator      *validator.Validate
}

func NewPartnerHandler(partnerService service.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: partnerService, validator: validator.New()}
}

// Login godoc
//
//	@Summary		Partner login
//	@Description	Checks collaborator or agent credentials and issues a bearer token. Repeated failures are rate limited.
//	@Tags			Partners
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Credentials"
//	@Success		200			{object}	models.LoginResponse	"Token and profile"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/collaborators/login [post]
//	@Router			/commercial/login [post]
func (h *PartnerHandler) Login(role models.PartnerRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("role", string(role)))

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.partnerService.Login(r.Context(), role, &req)
		if err != nil {
			logger.Error("Login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			_ = response.WriteJson(w, status, resp)
			return
		}

		logger.Info("Partner logged in", slog.String("username", req.Username))
		_ = response.WriteJson(w, http.StatusOK, resp)
	}
}

// Profile godoc
//
//	@Summary		Partner profile
//	@Description	Returns the logged in partner's name and discount code.
//	@Tags			Partners
//	@Produce		json
//	@Success		200	{object}	models.PartnerProfile	"Profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"Account removed"
//	@Security		BearerAuth
//	@Router			/collaborators/me [get]
func (h *PartnerHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		profile, err := h.partnerService.Profile(r.Context(), claims)
		if err != nil {
			logger.Warn("Profile lookup failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, profile)
	}
}
