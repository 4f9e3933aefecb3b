package payment

import (
	"context"
	"errors"
	"net/http"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// Gateway names as used in configuration and events.
const (
	GatewayRedsys = "redsys"
	GatewayRemote = "remote"
	GatewayStripe = "stripe"
)

// Form field names the gateway expects in the handoff POST.
const (
	FieldSignatureVersion   = "Ds_SignatureVersion"
	FieldMerchantParameters = "Ds_MerchantParameters"
	FieldSignature          = "Ds_Signature"
)

var ErrIncompletePayload = errors.New("payment: signed payload is incomplete")

type Order struct {
	ID          string
	Amount      int64
	Description string
	BuyerEmail  string
}

// Gateway turns an order into the handoff that sends the shopper to the payment page.
type Gateway interface {
	Name() string
	Prepare(ctx context.Context, order *Order) (*models.Handoff, error)
}

// Signer produces the three signed fields of a form-POST gateway.
type Signer interface {
	Sign(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error)
}

// Verification is the outcome of checking a signed gateway response.
type Verification struct {
	OrderID    string
	Authorized bool
	Code       string
}

// Verifier checks the signed parameters a gateway appends to its responses.
type Verifier interface {
	Verify(version, merchantParameters, signature string) (*Verification, error)
}

// SignedFormGateway hands off with an auto-submitted POST form carrying a signed payload.
type SignedFormGateway struct {
	name   string
	signer Signer
}

func NewSignedFormGateway(name string, signer Signer) *SignedFormGateway {
	return &SignedFormGateway{name: name, signer: signer}
}

func (g *SignedFormGateway) Name() string { return g.name }

func (g *SignedFormGateway) Prepare(ctx context.Context, order *Order) (*models.Handoff, error) {
	payload, err := g.signer.Sign(ctx, &models.PaymentRequest{
		Amount:      order.Amount,
		Description: order.Description,
		OrderID:     order.ID,
	})
	if err != nil {
		return nil, err
	}

	if payload.URL == "" || payload.MerchantParameters == "" || payload.Signature == "" {
		return nil, ErrIncompletePayload
	}

	return &models.Handoff{
		Method: http.MethodPost,
		URL:    payload.URL,
		Fields: map[string]string{
			FieldSignatureVersion:   payload.SignatureVersion,
			FieldMerchantParameters: payload.MerchantParameters,
			FieldSignature:          payload.Signature,
		},
	}, nil
}
