package models

// LocalizedText maps a locale ("es", "en", ...) to a display string.
type LocalizedText map[string]string

// Get returns the text for locale, falling back to fallback and then to any value.
func (t LocalizedText) Get(locale, fallback string) string {
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t[fallback]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

type Product struct {
	ID                int64               `json:"id"`
	Slug              string              `json:"slug"`
	Name              LocalizedText       `json:"name"`
	Description       LocalizedText       `json:"description"`
	Price             float64             `json:"price"`
	PriceFormatted    string              `json:"price_formatted,omitempty"`
	Size              string              `json:"size,omitempty"`
	Image             string              `json:"image,omitempty"`
	Category          LocalizedText       `json:"category"`
	SportID           string              `json:"sportId"`
	Available         bool                `json:"available"`
	SKU               string              `json:"sku,omitempty"`
	AmazonLinks       map[string]string   `json:"amazonLinks,omitempty"`
	PricesBySize      map[string]string   `json:"pricesBySize,omitempty"`
	NutritionalValues LocalizedText       `json:"nutritionalValues,omitempty"`
	Application       LocalizedText       `json:"application,omitempty"`
	Recommendations   LocalizedText       `json:"recommendations,omitempty"`
	Rating            *float64            `json:"rating,omitempty"`
	Votes             *int                `json:"votes,omitempty"`
	Objectives        map[string][]string `json:"objectives,omitempty"`
}

type ProductFilter struct {
	Sport     string `json:"sport,omitempty"`
	Category  string `json:"category,omitempty"`
	Available *bool  `json:"available,omitempty"`
	ID        *int64 `json:"id,omitempty"`
}

// ProductsEnvelope is the wire shape of the product API.
type ProductsEnvelope struct {
	Success        bool           `json:"success"`
	Products       []Product      `json:"products"`
	Total          int            `json:"total"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	FiltersApplied *ProductFilter `json:"filters_applied,omitempty"`
}

type SearchResponse struct {
	Query       string    `json:"query"`
	Suggestions []Product `json:"suggestions"`
	Results     []Product `json:"results"`
}
