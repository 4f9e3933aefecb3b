package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutState string

const (
	CheckoutIdle                     CheckoutState = "idle"
	CheckoutBuildingOrder            CheckoutState = "building_order"
	CheckoutAwaitingGatewaySignature CheckoutState = "awaiting_gateway_signature"
	CheckoutRedirecting              CheckoutState = "redirecting"
	CheckoutReturnSuccess            CheckoutState = "return_success"
	CheckoutReturnFailure            CheckoutState = "return_failure"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Buyer is the contact and shipping data stashed before the gateway redirect.
type Buyer struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country,omitempty"`
}

type CheckoutRequest struct {
	Buyer       Buyer  `json:"buyer" validate:"required"`
	Description string `json:"description,omitempty" validate:"max=125"`
}

// PaymentRequest is the body of the signing endpoint (POST /api/create).
type PaymentRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
}

// SignedPayload is what the signing endpoint answers.
type SignedPayload struct {
	URL                string `json:"url"`
	SignatureVersion   string `json:"signatureVersion"`
	MerchantParameters string `json:"merchantParameters"`
	Signature          string `json:"signature"`
	OrderID            string `json:"orderId"`
}

// Handoff describes how the browser leaves the store for the gateway.
type Handoff struct {
	Method string            `json:"method"`
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields,omitempty"`
}

type CheckoutResponse struct {
	OrderID string          `json:"order_id"`
	Amount  int64           `json:"amount"`
	Total   decimal.Decimal `json:"total"`
	State   CheckoutState   `json:"state"`
	Handoff *Handoff        `json:"handoff"`
}

type ReturnOutcome string

const (
	ReturnSuccess ReturnOutcome = "success"
	ReturnFailure ReturnOutcome = "failure"
)

// ReturnParams is what the gateway appended to the return URL. OrderID is
// client supplied and never selects the order that gets updated.
type ReturnParams struct {
	Outcome            ReturnOutcome
	OrderID            string
	Message            string
	SignatureVersion   string
	MerchantParameters string
	Signature          string
	CheckoutSessionID  string
}

type PaymentResult struct {
	Outcome      ReturnOutcome `json:"outcome"`
	OrderID      string        `json:"order_id,omitempty"`
	Message      string        `json:"message,omitempty"`
	ReceiptSent  bool          `json:"receipt_sent"`
	ReceiptError string        `json:"receipt_error,omitempty"`

	// Pending is set when the order still waits for the gateway notification.
	Pending bool `json:"pending,omitempty"`
}

type ReceiptResponse struct {
	OrderID string `json:"order_id"`
	Sent    bool   `json:"sent"`
	Message string `json:"message,omitempty"`
}

// CheckoutOrder is the server-side record of a storefront checkout.
type CheckoutOrder struct {
	ID         string      `json:"id"`
	SessionID  string      `json:"session_id"`
	Amount     int64       `json:"amount"`
	Currency   string      `json:"currency"`
	Status     OrderStatus `json:"status"`
	BuyerEmail string      `json:"buyer_email"`
	Lines      []CartLine  `json:"lines"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
