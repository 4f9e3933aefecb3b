package service_test

import (
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int64, name, desc, cat string) models.Product {
	return models.Product{
		ID:          id,
		Name:        models.LocalizedText{"es": name},
		Description: models.LocalizedText{"es": desc},
		Category:    models.LocalizedText{"es": cat},
	}
}

func ids(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func TestRank(t *testing.T) {
	products := []models.Product{
		product(1, "Barrita proteica", "Snack de proteína", "Snacks"),
		product(2, "Proteína whey", "Recuperación", "Proteínas"),
		product(3, "Creatina", "Fuerza", "Rendimiento"),
		product(4, "Ácido proteico", "Sin relación", "Otros"),
		product(5, "Gel", "Energía con proteína", "Geles"),
	}

	t.Run("Success - Weighted score with prefix bonus", func(t *testing.T) {
		// Act
		got := service.Rank(products, "  Proteína ", "es", "es")

		// Assert
		// 2: name 5 + category 1 + prefix 3; 1 and 5: description 2
		assert.Equal(t, []int64{2, 1, 5}, ids(got))
	})

	t.Run("Success - Ties ordered by collated name", func(t *testing.T) {
		// Arrange
		tied := []models.Product{
			product(10, "Zinc", "x", "y"),
			product(11, "Ácido fólico", "x", "y"),
			product(12, "Bicarbonato", "x", "y"),
		}

		// Act
		got := service.Rank(tied, "x", "es", "es")

		// Assert
		assert.Equal(t, []int64{11, 12, 10}, ids(got))
	})

	t.Run("Success - Zero score excluded", func(t *testing.T) {
		assert.Empty(t, service.Rank(products, "zzz", "es", "es"))
	})
}

func TestSearch(t *testing.T) {
	svc := service.NewSearchService(staticCatalogService(t), "es")

	t.Run("Success - Empty query returns four distinct products", func(t *testing.T) {
		// Act
		res := svc.Search(t.Context(), "   ", "es")

		// Assert
		require.Len(t, res.Results, service.RandomSamples)
		seen := map[int64]bool{}
		for _, p := range res.Results {
			assert.False(t, seen[p.ID])
			seen[p.ID] = true
		}
	})

	t.Run("Success - Dropdown is bounded", func(t *testing.T) {
		// Act
		res := svc.Search(t.Context(), "a e", "es")

		// Assert
		assert.LessOrEqual(t, len(res.Suggestions), service.DropdownSize)
		assert.GreaterOrEqual(t, len(res.Results), len(res.Suggestions))
		assert.Equal(t, res.Results[:len(res.Suggestions)], res.Suggestions)
	})

	t.Run("Success - Name match ranks first", func(t *testing.T) {
		res := svc.Search(t.Context(), "creatina", "es")

		require.NotEmpty(t, res.Results)
		assert.Equal(t, "creatina-monohidrato", res.Results[0].Slug)
	})
}
