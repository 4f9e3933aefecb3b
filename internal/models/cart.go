package models

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)

// Price keeps the value exactly as the product feed sent it, either a JSON
// number or a string such as "12,50", and parses it on demand.
type Price struct {
	raw json.RawMessage
}

func PriceFromString(s string) *Price {
	b, _ := json.Marshal(s)
	return &Price{raw: b}
}

func PriceFromFloat(f float64) *Price {
	return &Price{raw: json.RawMessage(strconv.FormatFloat(f, 'f', -1, 64))}
}

// Amount returns the numeric value. The comma is accepted as decimal
// separator and trailing garbage ("12,50 €") is ignored.
func (p *Price) Amount() (decimal.Decimal, bool) {
	if p == nil || len(p.raw) == 0 || bytes.Equal(p.raw, []byte("null")) {
		return decimal.Zero, false
	}

	text := string(p.raw)
	if p.raw[0] == '"' {
		if err := json.Unmarshal(p.raw, &text); err != nil {
			return decimal.Zero, false
		}
	}

	text = strings.Replace(strings.TrimSpace(text), ",", ".", 1)
	match := numericPrefix.FindString(text)
	if match == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, false
	}

	return amount, true
}

func (p *Price) String() string {
	if p == nil || len(p.raw) == 0 {
		return ""
	}
	if p.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(p.raw, &s); err == nil {
			return s
		}
	}
	return string(p.raw)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("null"), nil
	}
	return p.raw, nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	p.raw = append(p.raw[:0], data...)
	return nil
}

// LineID accepts both numeric and string product ids; identity is the string form.
type LineID string

func (id *LineID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = LineID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = LineID(n.String())
	return nil
}

type CartLine struct {
	ID       LineID `json:"id"`
	Name     string `json:"name"`
	Price    *Price `json:"price,omitempty"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// Subtotal is price × quantity, zero when the price is missing or unparsable.
func (l CartLine) Subtotal() decimal.Decimal {
	amount, ok := l.Price.Amount()
	if !ok {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	SessionID  string          `json:"session_id"`
	Lines      []CartLine      `json:"lines"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type AddItemRequest struct {
	ID       LineID `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Price    *Price `json:"price,omitempty"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	OpenCart bool   `json:"open_cart"`
}

// ToMinorUnits converts an amount into the integer cents the gateway expects.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
