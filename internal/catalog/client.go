package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// Client reads the remote product API. It never returns an error: callers
// get ok=false and decide whether to fall back.
type Client struct {
	baseURL    string
	httpClient *http.Client
	normalizer Normalizer
}

func NewClient(baseURL string, httpClient *http.Client, locales []string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		normalizer: Normalizer{Locales: locales},
	}
}

func (c *Client) Configured() bool {
	return c != nil && c.baseURL != ""
}

func (c *Client) Fetch(ctx context.Context, filter models.ProductFilter) (*models.ProductsEnvelope, bool) {
	logger := middleware.LoggerFromContext(ctx)

	if !c.Configured() {
		return emptyEnvelope(), false
	}

	endpoint := c.baseURL + "/products"
	if q := Query(filter).Encode(); q != "" {
		endpoint += "?" + q
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Warn("Failed to build product API request", slog.String("error", err.Error()))
		return emptyEnvelope(), false
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("Product API unreachable", slog.String("error", err.Error()))
		return emptyEnvelope(), false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("Product API returned an error", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))

		return emptyEnvelope(), false
	}

	var raw rawEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		logger.Warn("Product API returned malformed JSON", slog.String("error", err.Error()))
		return emptyEnvelope(), false
	}

	if !raw.Success {
		return emptyEnvelope(), false
	}

	products := c.normalizer.Products(raw.Products)

	return &models.ProductsEnvelope{
		Success:        true,
		Products:       products,
		Total:          len(products),
		Metadata:       raw.Metadata,
		FiltersApplied: raw.FiltersApplied,
	}, true
}

// Query encodes the non-empty filter fields as the API expects them.
func Query(f models.ProductFilter) url.Values {
	q := url.Values{}

	if f.Sport != "" {
		q.Set("sport", f.Sport)
	}

	if f.Category != "" {
		q.Set("category", f.Category)
	}

	if f.Available != nil {
		q.Set("available", strconv.FormatBool(*f.Available))
	}

	if f.ID != nil {
		q.Set("id", strconv.FormatInt(*f.ID, 10))
	}

	return q
}

// ParseFilter is the inverse of Query. Unparsable values are ignored.
func ParseFilter(q url.Values) models.ProductFilter {
	f := models.ProductFilter{
		Sport:    q.Get("sport"),
		Category: q.Get("category"),
	}

	if v, err := strconv.ParseBool(q.Get("available")); err == nil {
		f.Available = &v
	}

	if v, err := strconv.ParseInt(q.Get("id"), 10, 64); err == nil {
		f.ID = &v
	}

	return f
}

func emptyEnvelope() *models.ProductsEnvelope {
	return &models.ProductsEnvelope{Success: false, Products: []models.Product{}}
}
