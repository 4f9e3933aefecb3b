package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type PartnerRole string

const (
	RoleCollaborator PartnerRole = "collaborator"
	RoleAgent        PartnerRole = "agent"
)

// Partner is one entry of the collaborators or agents list.
type Partner struct {
	Username     string  `json:"username"`
	Password     string  `json:"password,omitempty"`
	PasswordHash string  `json:"password_hash,omitempty"`
	Name         string  `json:"name,omitempty"`
	DiscountCode string  `json:"discount_code,omitempty"`
	Discount     float64 `json:"discount,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success        bool            `json:"success"`
	Token          string          `json:"token,omitempty"`
	ExpiresIn      int             `json:"expires_in,omitempty"`
	RemainingTries int             `json:"remaining_tries,omitempty"`
	RetryAfter     int             `json:"retry_after,omitempty"`
	Message        string          `json:"message,omitempty"`
	Profile        *PartnerProfile `json:"profile,omitempty"`
}

type PartnerProfile struct {
	Username     string      `json:"username"`
	Name         string      `json:"name"`
	Role         PartnerRole `json:"role"`
	DiscountCode string      `json:"discount_code,omitempty"`
	Discount     float64     `json:"discount,omitempty"`
}

// Claims carried by collaborator and agent tokens.
type Claims struct {
	Username     string      `json:"username"`
	Name         string      `json:"name"`
	Role         PartnerRole `json:"role"`
	DiscountCode string      `json:"discount_code,omitempty"`
	Discount     float64     `json:"discount,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Profile() *PartnerProfile {
	return &PartnerProfile{
		Username:     c.Username,
		Name:         c.Name,
		Role:         c.Role,
		DiscountCode: c.DiscountCode,
		Discount:     c.Discount,
	}
}
