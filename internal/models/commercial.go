package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest maps product ids to quantities.
type QuoteRequest struct {
	Quantities      map[string]int `json:"quantities" validate:"required,min=1"`
	DiscountPercent float64        `json:"discount_percent"`
}

type QuoteLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type Quote struct {
	Lines           []QuoteLine     `json:"lines"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Discount        decimal.Decimal `json:"discount"`
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	VAT             decimal.Decimal `json:"vat"`
	Total           decimal.Decimal `json:"total"`
}

type CommercialCustomer struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	TaxID   string `json:"tax_id,omitempty"`
	Address string `json:"address,omitempty"`
}

type CommercialOrderRequest struct {
	Customer        CommercialCustomer `json:"customer" validate:"required"`
	Quantities      map[string]int     `json:"quantities" validate:"required,min=1"`
	DiscountPercent float64            `json:"discount_percent"`
	Notes           string             `json:"notes,omitempty" validate:"max=1000"`
}

type CommercialOrder struct {
	ID        int64              `json:"id"`
	Agent     string             `json:"agent"`
	Customer  CommercialCustomer `json:"customer"`
	Quote     Quote              `json:"quote"`
	Notes     string             `json:"notes,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// CommercialOrderResult reports a saved order and whether the confirmation went out.
type CommercialOrderResult struct {
	Order      *CommercialOrder `json:"order"`
	EmailSent  bool             `json:"email_sent"`
	EmailError string           `json:"email_error,omitempty"`
}
