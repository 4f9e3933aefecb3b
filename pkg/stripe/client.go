package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

type CheckoutSession = stripe.CheckoutSession

type CheckoutRequest struct {
	OrderID       string
	Amount        int64
	Currency      string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// defines the methods that any of payment client must implement.
type Client interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	Ping(ctx context.Context) error
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// CreateCheckoutSession opens a hosted payment page charging the whole order as one line.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	params := &stripe.CheckoutSessionParams{
		Params:            stripe.Params{Context: ctx},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.OrderID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	params.AddMetadata("order_id", req.OrderID)

	return session.New(params)
}

func (s *stripeClient) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	return session.Get(id, &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}})
}

// Ping reads the account balance, the cheapest authenticated call.
func (s *stripeClient) Ping(ctx context.Context) error {
	_, err := balance.Get(&stripe.BalanceParams{Params: stripe.Params{Context: ctx}})

	return err
}

// IsPaid reports whether a checkout session has been paid.
func IsPaid(cs *CheckoutSession) bool {
	return cs != nil && cs.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid
}
