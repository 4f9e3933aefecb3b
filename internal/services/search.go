package service

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DropdownSize  = 8
	RandomSamples = 4
)

const (
	nameWeight        = 5
	descriptionWeight = 2
	categoryWeight    = 1
	prefixBonus       = 3
)

type SearchService interface {
	Search(ctx context.Context, query, locale string) *models.SearchResponse
}

type searchService struct {
	catalog       CatalogService
	defaultLocale string
	shuffle       func(n int, swap func(i, j int))
}

func NewSearchService(catalog CatalogService, defaultLocale string) SearchService {
	return &searchService{catalog: catalog, defaultLocale: defaultLocale, shuffle: rand.Shuffle}
}

// Search implements SearchService.
func (s *searchService) Search(ctx context.Context, query, locale string) *models.SearchResponse {
	if locale == "" {
		locale = s.defaultLocale
	}

	products := s.catalog.AllProducts(ctx)
	trimmed := strings.TrimSpace(query)

	if trimmed == "" {
		sample := s.sample(products, RandomSamples)
		return &models.SearchResponse{Query: query, Suggestions: sample, Results: sample}
	}

	results := Rank(products, trimmed, locale, s.defaultLocale)

	return &models.SearchResponse{
		Query:       query,
		Suggestions: results[:min(DropdownSize, len(results))],
		Results:     results,
	}
}

// sample returns n distinct products in random order, or all of them when there are fewer.
func (s *searchService) sample(products []models.Product, n int) []models.Product {
	out := slices.Clone(products)
	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out[:min(n, len(out))]
}

type scored struct {
	product models.Product
	name    string
	score   int
}

// Rank scores every product against query and returns the matches, best first.
// Ties are ordered by the localized name using the locale's collation.
func Rank(products []models.Product, query, locale, fallback string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	tokens := strings.Fields(q)

	matches := make([]scored, 0, len(products))

	for _, p := range products {
		name := p.Name.Get(locale, fallback)
		lname := strings.ToLower(name)
		desc := strings.ToLower(p.Description.Get(locale, fallback))
		cat := strings.ToLower(p.Category.Get(locale, fallback))

		score := 0

		for _, tok := range tokens {
			if strings.Contains(lname, tok) {
				score += nameWeight
			}

			if strings.Contains(desc, tok) {
				score += descriptionWeight
			}

			if strings.Contains(cat, tok) {
				score += categoryWeight
			}
		}

		if strings.HasPrefix(lname, q) {
			score += prefixBonus
		}

		if score > 0 {
			matches = append(matches, scored{product: p, name: name, score: score})
		}
	}

	col := collate.New(language.Make(locale), collate.IgnoreCase)

	slices.SortStableFunc(matches, func(a, b scored) int {
		if a.score != b.score {
			return b.score - a.score
		}

		return col.CompareString(a.name, b.name)
	})

	out := make([]models.Product, len(matches))
	for i, m := range matches {
		out[i] = m.product
	}

	return out
}
