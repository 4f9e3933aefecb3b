package payment

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/pkg/redsys"
)

// RedsysSigner signs locally with the merchant secret.
type RedsysSigner struct {
	client      *redsys.Client
	urlOK       string
	urlKO       string
	merchantURL string
}

func NewRedsysSigner(client *redsys.Client, urlOK, urlKO, merchantURL string) *RedsysSigner {
	return &RedsysSigner{client: client, urlOK: urlOK, urlKO: urlKO, merchantURL: merchantURL}
}

func (s *RedsysSigner) Sign(_ context.Context, req *models.PaymentRequest) (*models.SignedPayload, error) {
	signed, err := s.client.Sign(redsys.Payment{
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Description: req.Description,
		MerchantURL: s.merchantURL,
		URLOK:       s.urlOK,
		URLKO:       s.urlKO,
	})
	if err != nil {
		return nil, err
	}

	return &models.SignedPayload{
		URL:                signed.URL,
		SignatureVersion:   signed.SignatureVersion,
		MerchantParameters: signed.MerchantParameters,
		Signature:          signed.Signature,
		OrderID:            signed.OrderID,
	}, nil
}

func (s *RedsysSigner) Verify(version, merchantParameters, signature string) (*Verification, error) {
	n, err := s.client.Verify(version, merchantParameters, signature)
	if err != nil {
		return nil, err
	}

	return &Verification{OrderID: n.Order(), Authorized: n.Authorized(), Code: n.Response()}, nil
}
