// Package redsys signs payment requests for the Redsys virtual POS and
// verifies the parameters it appends to the merchant return URLs.
package redsys

import (
	"crypto/cipher"
	"crypto/des"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const SignatureVersion = "HMAC_SHA256_V1"

var (
	ErrInvalidSignature = errors.New("redsys: signature mismatch")
	ErrInvalidKey       = errors.New("redsys: secret key must be a base64 encoded 24 byte 3DES key")
)

type Config struct {
	FormURL         string
	MerchantCode    string
	Terminal        string
	Currency        string
	TransactionType string
	SecretKey       string
	MerchantName    string
}

type Payment struct {
	OrderID     string
	Amount      int64
	Description string
	MerchantURL string
	URLOK       string
	URLKO       string
}

type SignedRequest struct {
	URL                string
	SignatureVersion   string
	MerchantParameters string
	Signature          string
	OrderID            string
}

type Client struct {
	cfg Config
	key []byte
}

func New(cfg Config) (*Client, error) {
	key, err := base64.StdEncoding.DecodeString(cfg.SecretKey)
	if err != nil || len(key) != 24 {
		return nil, ErrInvalidKey
	}

	return &Client{cfg: cfg, key: key}, nil
}

func (c *Client) Sign(p Payment) (*SignedRequest, error) {
	if p.OrderID == "" {
		return nil, errors.New("redsys: order id is required")
	}

	if p.Amount <= 0 {
		return nil, errors.New("redsys: amount must be positive")
	}

	params := map[string]string{
		"DS_MERCHANT_AMOUNT":          strconv.FormatInt(p.Amount, 10),
		"DS_MERCHANT_ORDER":           p.OrderID,
		"DS_MERCHANT_MERCHANTCODE":    c.cfg.MerchantCode,
		"DS_MERCHANT_CURRENCY":        c.cfg.Currency,
		"DS_MERCHANT_TRANSACTIONTYPE": c.cfg.TransactionType,
		"DS_MERCHANT_TERMINAL":        c.cfg.Terminal,
	}

	optional := map[string]string{
		"DS_MERCHANT_MERCHANTURL":        p.MerchantURL,
		"DS_MERCHANT_URLOK":              p.URLOK,
		"DS_MERCHANT_URLKO":              p.URLKO,
		"DS_MERCHANT_PRODUCTDESCRIPTION": p.Description,
		"DS_MERCHANT_MERCHANTNAME":       c.cfg.MerchantName,
	}

	for k, v := range optional {
		if v != "" {
			params[k] = v
		}
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("redsys: failed to encode parameters: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	mac, err := c.mac(p.OrderID, encoded)
	if err != nil {
		return nil, err
	}

	return &SignedRequest{
		URL:                c.cfg.FormURL,
		SignatureVersion:   SignatureVersion,
		MerchantParameters: encoded,
		Signature:          base64.StdEncoding.EncodeToString(mac),
		OrderID:            p.OrderID,
	}, nil
}

// Notification is the decoded Ds_MerchantParameters of a gateway response.
type Notification struct {
	Params map[string]string
}

func (n *Notification) get(key string) string {
	for k, v := range n.Params {
		if strings.EqualFold(k, key) {
			return v
		}
	}

	return ""
}

func (n *Notification) Order() string    { return n.get("Ds_Order") }
func (n *Notification) Response() string { return n.get("Ds_Response") }

// Authorized reports a Ds_Response in the 0000-0099 range.
func (n *Notification) Authorized() bool {
	code, err := strconv.Atoi(strings.TrimSpace(n.Response()))
	if err != nil {
		return false
	}

	return code >= 0 && code <= 99
}

// Verify checks the signature of a response and decodes its parameters.
func (c *Client) Verify(version, encodedParams, signature string) (*Notification, error) {
	if version != "" && version != SignatureVersion {
		return nil, fmt.Errorf("redsys: unsupported signature version %q", version)
	}

	raw, err := decodeBase64(encodedParams)
	if err != nil {
		return nil, fmt.Errorf("redsys: failed to decode parameters: %w", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("redsys: failed to parse parameters: %w", err)
	}

	n := &Notification{Params: make(map[string]string, len(decoded))}
	for k, v := range decoded {
		n.Params[k] = fmt.Sprint(v)
	}

	order := n.Order()
	if order == "" {
		return nil, errors.New("redsys: response has no Ds_Order")
	}

	mac, err := c.mac(order, encodedParams)
	if err != nil {
		return nil, err
	}

	expected := base64.URLEncoding.EncodeToString(mac)
	if !hmac.Equal([]byte(expected), []byte(toURLAlphabet(signature))) {
		return nil, ErrInvalidSignature
	}

	return n, nil
}

// mac derives the per-order key by 3DES-CBC encrypting the order id with the
// merchant key, then HMACs the encoded parameters with it.
func (c *Client) mac(order, encodedParams string) ([]byte, error) {
	block, err := des.NewTripleDESCipher(c.key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	plain := []byte(order)
	if rem := len(plain) % block.BlockSize(); rem != 0 {
		plain = append(plain, make([]byte, block.BlockSize()-rem)...)
	}

	derived := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, make([]byte, block.BlockSize())).CryptBlocks(derived, plain)

	h := hmac.New(sha256.New, derived)
	h.Write([]byte(encodedParams))

	return h.Sum(nil), nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(toURLAlphabet(s), "=")

	return base64.RawURLEncoding.DecodeString(s)
}

func toURLAlphabet(s string) string {
	return strings.NewReplacer("+", "-", "/", "_").Replace(s)
}
