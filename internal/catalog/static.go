package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

//go:embed products.json
var embeddedProducts []byte

// LoadStatic reads the fallback catalog from path, or the embedded copy when
// path is empty. The file is either a bare array or a products envelope.
func LoadStatic(path string, locales []string) ([]models.Product, error) {
	data := embeddedProducts

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read static catalog %s: %w", path, err)
		}

		data = b
	}

	var raw []rawProduct

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var env rawEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("failed to parse static catalog: %w", err)
		}

		raw = env.Products
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse static catalog: %w", err)
	}

	return Normalizer{Locales: locales}.Products(raw), nil
}

// Filter applies the API's query semantics to an in-memory list.
func Filter(products []models.Product, f models.ProductFilter) []models.Product {
	out := make([]models.Product, 0, len(products))

	for _, p := range products {
		if f.Sport != "" && !strings.EqualFold(p.SportID, f.Sport) {
			continue
		}

		if f.Category != "" && !matchesCategory(p.Category, f.Category) {
			continue
		}

		if f.Available != nil && p.Available != *f.Available {
			continue
		}

		if f.ID != nil && p.ID != *f.ID {
			continue
		}

		out = append(out, p)
	}

	return out
}

func matchesCategory(t models.LocalizedText, want string) bool {
	for _, v := range t {
		if strings.EqualFold(v, want) || Slugify(v) == Slugify(want) {
			return true
		}
	}

	return false
}
