package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type PartnerService interface {
	Login(ctx context.Context, role models.PartnerRole, req *models.LoginRequest) (*models.LoginResponse, error)
	// Profile re-reads the credentials list so discount changes show up
	// without a new login.
	Profile(ctx context.Context, claims *models.Claims) (*models.PartnerProfile, error)
}

// CredentialSource is where one role's partner list lives. The URL wins,
// the file is read when the URL is unset or unreachable.
type CredentialSource struct {
	URL  string
	Path string
}

type PartnerConfig struct {
	Sources              map[models.PartnerRole]CredentialSource
	FallbackUsername     string
	FallbackPasswordHash string
	FallbackName         string
	JWTKey               []byte
	TokenTTL             time.Duration
}

type partnerService struct {
	rateLimiter repository.RateLimitRepository
	httpClient  *http.Client
	cfg         PartnerConfig
	now         func() time.Time
}

func NewPartnerService(rateLimiter repository.RateLimitRepository, httpClient *http.Client, cfg PartnerConfig) PartnerService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 12 * time.Hour
	}

	return &partnerService{rateLimiter: rateLimiter, httpClient: httpClient, cfg: cfg, now: time.Now}
}

// Login implements PartnerService.
func (s *partnerService) Login(ctx context.Context, role models.PartnerRole, req *models.LoginRequest) (*models.LoginResponse, error) {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("role", string(role)))
	username := strings.TrimSpace(req.Username)

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, string(role), username)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	partner := s.authenticate(ctx, role, username, req.Password)
	if partner == nil {
		logger.Info("Partner login rejected", slog.String("username", username))

		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid username or password",
			RemainingTries: remaining,
		}, nil
	}

	if err := s.rateLimiter.ResetLoginAttempts(ctx, string(role), username); err != nil {
		logger.Warn("Failed to reset login attempts", slog.String("error", err.Error()))
	}

	now := s.now()
	claims := &models.Claims{
		Username:     partner.Username,
		Name:         partner.Name,
		Role:         role,
		DiscountCode: partner.DiscountCode,
		Discount:     partner.Discount,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   partner.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.cfg.JWTKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	logger.Info("Partner logged in", slog.String("username", partner.Username))

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(s.cfg.TokenTTL.Seconds()),
		Profile:   claims.Profile(),
	}, nil
}

// Profile implements PartnerService.
func (s *partnerService) Profile(ctx context.Context, claims *models.Claims) (*models.PartnerProfile, error) {
	if claims == nil {
		return nil, errors.UnauthorizedError("Authentication required")
	}

	partners, ok := s.partners(ctx, claims.Role)
	if !ok {
		return claims.Profile(), nil
	}

	for _, p := range partners {
		if p.Username == claims.Username {
			return &models.PartnerProfile{
				Username:     p.Username,
				Name:         displayName(p),
				Role:         claims.Role,
				DiscountCode: p.DiscountCode,
				Discount:     p.Discount,
			}, nil
		}
	}

	return nil, errors.NotFoundError("Account no longer exists")
}

func (s *partnerService) authenticate(ctx context.Context, role models.PartnerRole, username, password string) *models.Partner {
	partners, ok := s.partners(ctx, role)
	if !ok {
		middleware.LoggerFromContext(ctx).Warn("Partner list unavailable, using fallback credentials", slog.String("role", string(role)))
		partners = s.fallback()
	}

	for i := range partners {
		p := &partners[i]
		if p.Username != username {
			continue
		}

		if passwordMatches(p, password) {
			p.Name = displayName(*p)
			return p
		}

		return nil
	}

	return nil
}

func (s *partnerService) fallback() []models.Partner {
	if s.cfg.FallbackUsername == "" || s.cfg.FallbackPasswordHash == "" {
		return nil
	}

	return []models.Partner{{
		Username:     s.cfg.FallbackUsername,
		PasswordHash: s.cfg.FallbackPasswordHash,
		Name:         s.cfg.FallbackName,
	}}
}

// partners loads the role's list. ok is false when neither the URL nor the
// file produced a list.
func (s *partnerService) partners(ctx context.Context, role models.PartnerRole) ([]models.Partner, bool) {
	logger := middleware.LoggerFromContext(ctx)
	src := s.cfg.Sources[role]

	if src.URL != "" {
		list, err := s.fetch(ctx, src.URL)
		if err == nil {
			return list, true
		}

		logger.Warn("Partner list endpoint failed", slog.String("role", string(role)), slog.String("error", err.Error()))
	}

	if src.Path != "" {
		data, err := os.ReadFile(src.Path)
		if err == nil {
			var list []models.Partner
			if err = json.Unmarshal(data, &list); err == nil {
				return list, true
			}
		}

		logger.Warn("Partner list file unreadable", slog.String("path", src.Path), slog.String("error", err.Error()))
	}

	return nil, false
}

func (s *partnerService) fetch(ctx context.Context, url string) ([]models.Partner, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("partner list returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var list []models.Partner
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode partner list: %w", err)
	}

	return list, nil
}

func passwordMatches(p *models.Partner, password string) bool {
	if p.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil
	}

	if p.Password == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(p.Password), []byte(password)) == 1
}

func displayName(p models.Partner) string {
	if p.Name != "" {
		return p.Name
	}

	return p.Username
}
