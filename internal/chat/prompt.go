package chat

import (
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

type Policy struct {
	StoreName       string
	ContactEmail    string
	ContactPhone    string
	ReturnPolicy    string
	PaymentProvider string
}

// BuildContext is the fixed preamble followed by one line per product, at most maxProducts.
func BuildContext(p Policy, products []models.Product, locale, fallback string, maxProducts int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the shopping assistant of %s, an online store of sports supplements.\n", p.StoreName)
	b.WriteString("Answer briefly in the language of the customer. Only recommend products from the list below.\n")
	b.WriteString("When you recommend a product add a line LINK:/products/<sportId>/<slug> for it.\n")
	fmt.Fprintf(&b, "Contact: %s", p.ContactEmail)

	if p.ContactPhone != "" {
		fmt.Fprintf(&b, ", %s", p.ContactPhone)
	}

	b.WriteString(".\n")
	fmt.Fprintf(&b, "Returns: %s\n", p.ReturnPolicy)
	fmt.Fprintf(&b, "Payments are processed securely by %s.\n\n", p.PaymentProvider)
	b.WriteString("Products (sportId/slug | name | category | price | size | availability):\n")

	for i, pr := range products {
		if i >= maxProducts {
			break
		}

		availability := "in stock"
		if !pr.Available {
			availability = "out of stock"
		}

		fmt.Fprintf(&b, "%s/%s | %s | %s | %.2f EUR | %s | %s\n",
			pr.SportID, pr.Slug,
			pr.Name.Get(locale, fallback),
			pr.Category.Get(locale, fallback),
			pr.Price, pr.Size, availability)
	}

	return b.String()
}
