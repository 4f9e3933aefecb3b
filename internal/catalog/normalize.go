package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// rawProduct is a product as the API or the static file spell it: prices
// may be strings with a decimal comma and texts may be plain strings.
type rawProduct struct {
	ID                json.Number         `json:"id"`
	Slug              string              `json:"slug"`
	Name              json.RawMessage     `json:"name"`
	Description       json.RawMessage     `json:"description"`
	Price             json.RawMessage     `json:"price"`
	PriceFormatted    string              `json:"price_formatted"`
	Size              string              `json:"size"`
	Image             string              `json:"image"`
	Category          json.RawMessage     `json:"category"`
	SportID           string              `json:"sportId"`
	Available         *bool               `json:"available"`
	SKU               string              `json:"sku"`
	AmazonLinks       map[string]string   `json:"amazonLinks"`
	PricesBySize      map[string]string   `json:"pricesBySize"`
	NutritionalValues json.RawMessage     `json:"nutritionalValues"`
	Application       json.RawMessage     `json:"application"`
	Recommendations   json.RawMessage     `json:"recommendations"`
	Rating            *float64            `json:"rating"`
	Votes             *int                `json:"votes"`
	Objectives        map[string][]string `json:"objectives"`
}

type rawEnvelope struct {
	Success        bool                  `json:"success"`
	Products       []rawProduct          `json:"products"`
	Total          int                   `json:"total"`
	Metadata       map[string]any        `json:"metadata"`
	FiltersApplied *models.ProductFilter `json:"filters_applied"`
}

// Normalizer turns raw products into models.Product for a fixed set of locales.
type Normalizer struct {
	Locales []string
}

func (n Normalizer) Product(r rawProduct) models.Product {
	id, _ := r.ID.Int64()

	p := models.Product{
		ID:                id,
		Slug:              r.Slug,
		Name:              n.text(r.Name),
		Description:       n.text(r.Description),
		Price:             parsePrice(r.Price),
		PriceFormatted:    r.PriceFormatted,
		Size:              r.Size,
		Image:             r.Image,
		Category:          n.text(r.Category),
		SportID:           r.SportID,
		Available:         r.Available == nil || *r.Available,
		SKU:               r.SKU,
		AmazonLinks:       r.AmazonLinks,
		PricesBySize:      r.PricesBySize,
		NutritionalValues: n.optionalText(r.NutritionalValues),
		Application:       n.optionalText(r.Application),
		Recommendations:   n.optionalText(r.Recommendations),
		Rating:            r.Rating,
		Votes:             r.Votes,
		Objectives:        r.Objectives,
	}

	if p.Slug == "" {
		p.Slug = Slugify(p.Name.Get(n.primary(), ""))
	}

	return p
}

func (n Normalizer) Products(raw []rawProduct) []models.Product {
	out := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		out = append(out, n.Product(r))
	}

	return out
}

func (n Normalizer) primary() string {
	if len(n.Locales) == 0 {
		return "es"
	}

	return n.Locales[0]
}

// text promotes a plain string to every locale and keeps maps as they are.
func (n Normalizer) text(raw json.RawMessage) models.LocalizedText {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.LocalizedText{}
	}

	var m map[string]string
	if err := json.Unmarshal(raw, &m); err == nil {
		return m
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.LocalizedText{}
	}

	out := make(models.LocalizedText, len(n.Locales))
	for _, l := range n.Locales {
		out[l] = s
	}

	if len(out) == 0 {
		out[n.primary()] = s
	}

	return out
}

func (n Normalizer) optionalText(raw json.RawMessage) models.LocalizedText {
	t := n.text(raw)
	if len(t) == 0 {
		return nil
	}

	return t
}

// parsePrice reads the price the same way cart lines do, so "24,90 €" and
// 24.9 agree. Anything unparseable is 0.
func parsePrice(raw json.RawMessage) float64 {
	var p models.Price
	if err := p.UnmarshalJSON(bytes.TrimSpace(raw)); err != nil {
		return 0
	}

	amount, ok := p.Amount()
	if !ok {
		return 0
	}

	f, _ := amount.Float64()

	return f
}
