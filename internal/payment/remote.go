package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// RemoteSigner delegates signing to a backend implementing POST /api/create.
type RemoteSigner struct {
	endpoint   string
	httpClient *http.Client
}

func NewRemoteSigner(endpoint string, httpClient *http.Client) *RemoteSigner {
	return &RemoteSigner{endpoint: endpoint, httpClient: httpClient}
}

func (s *RemoteSigner) Sign(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build signing request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("signing endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("signing endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload models.SignedPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode signed payload: %w", err)
	}

	if payload.OrderID == "" {
		payload.OrderID = req.OrderID
	}

	return &payload, nil
}
