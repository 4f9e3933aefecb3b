package payment

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/stripe"
)

// StripeGateway hands off to a hosted Stripe Checkout page.
type StripeGateway struct {
	client     stripe.Client
	currency   string
	successURL string
	cancelURL  string
}

func NewStripeGateway(client stripe.Client, currency, successURL, cancelURL string) *StripeGateway {
	return &StripeGateway{client: client, currency: currency, successURL: successURL, cancelURL: cancelURL}
}

func (g *StripeGateway) Name() string { return GatewayStripe }

func (g *StripeGateway) Prepare(ctx context.Context, order *Order) (*models.Handoff, error) {
	cs, err := g.client.CreateCheckoutSession(ctx, &stripe.CheckoutRequest{
		OrderID:       order.ID,
		Amount:        order.Amount,
		Currency:      g.currency,
		Description:   order.Description,
		CustomerEmail: order.BuyerEmail,
		SuccessURL:    returnURL(g.successURL, order.ID, true),
		CancelURL:     returnURL(g.cancelURL, order.ID, false),
	})
	if err != nil {
		return nil, err
	}

	if cs.URL == "" {
		return nil, ErrIncompletePayload
	}

	return &models.Handoff{Method: http.MethodGet, URL: cs.URL}, nil
}

// Confirm looks up the checkout session named in the return URL.
func (g *StripeGateway) Confirm(ctx context.Context, sessionID string) (*Verification, error) {
	cs, err := g.client.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &Verification{
		OrderID:    cs.ClientReferenceID,
		Authorized: stripe.IsPaid(cs),
		Code:       string(cs.PaymentStatus),
	}, nil
}

// returnURL appends the gateway and order markers. Stripe substitutes the
// literal {CHECKOUT_SESSION_ID} placeholder, so it must stay unescaped.
func returnURL(base, orderID string, withSession bool) string {
	q := url.Values{}
	q.Set("gateway", GatewayStripe)
	q.Set("order", orderID)

	sep := "?"
	if u, err := url.Parse(base); err == nil && u.RawQuery != "" {
		sep = "&"
	}

	out := base + sep + q.Encode()
	if withSession {
		out += "&session_id={CHECKOUT_SESSION_ID}"
	}

	return out
}
