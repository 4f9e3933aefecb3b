package redsys

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "sq7HjrUOBfKmC576ILgskD5srU870gJ7"

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := New(Config{
		FormURL:         "https://sis-t.redsys.es:25443/sis/realizarPago",
		MerchantCode:    "999008881",
		Terminal:        "1",
		Currency:        "978",
		TransactionType: "0",
		SecretKey:       testKey,
	})
	require.NoError(t, err)

	return c
}

func TestMacKnownVector(t *testing.T) {
	c := newTestClient(t)
	params := "eyJEU19NRVJDSEFOVF9BTU9VTlQiOiIxNDUiLCJEU19NRVJDSEFOVF9PUkRFUiI6IjEyMzQ1Njc4OTAxMiJ9"

	mac, err := c.mac("123456789012", params)

	require.NoError(t, err)
	assert.Equal(t, "Fale8zYnYByPqBmAXvXEpay8hdKWO2kPjZJJikk/PsE=", base64.StdEncoding.EncodeToString(mac))
}

func TestSign(t *testing.T) {
	c := newTestClient(t)

	t.Run("Success", func(t *testing.T) {
		signed, err := c.Sign(Payment{OrderID: "123456789012", Amount: 2490, URLOK: "https://shop.test/pago-ok"})
		require.NoError(t, err)

		assert.Equal(t, SignatureVersion, signed.SignatureVersion)
		assert.Equal(t, "123456789012", signed.OrderID)

		raw, err := base64.StdEncoding.DecodeString(signed.MerchantParameters)
		require.NoError(t, err)

		var params map[string]string
		require.NoError(t, json.Unmarshal(raw, &params))
		assert.Equal(t, "2490", params["DS_MERCHANT_AMOUNT"])
		assert.Equal(t, "999008881", params["DS_MERCHANT_MERCHANTCODE"])
		assert.Equal(t, "https://shop.test/pago-ok", params["DS_MERCHANT_URLOK"])
		assert.NotContains(t, params, "DS_MERCHANT_URLKO")
	})

	t.Run("Failure - Missing Order Or Amount", func(t *testing.T) {
		_, err := c.Sign(Payment{Amount: 10})
		require.Error(t, err)

		_, err = c.Sign(Payment{OrderID: "1", Amount: 0})
		require.Error(t, err)
	})
}

func responseFor(t *testing.T, c *Client, params map[string]string) (string, string) {
	t.Helper()

	raw, err := json.Marshal(params)
	require.NoError(t, err)

	encoded := base64.URLEncoding.EncodeToString(raw)
	mac, err := c.mac(params["Ds_Order"], encoded)
	require.NoError(t, err)

	return encoded, base64.URLEncoding.EncodeToString(mac)
}

func TestVerify(t *testing.T) {
	c := newTestClient(t)

	t.Run("Success - Authorized Response", func(t *testing.T) {
		encoded, sig := responseFor(t, c, map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0000"})

		n, err := c.Verify(SignatureVersion, encoded, sig)

		require.NoError(t, err)
		assert.Equal(t, "123456789012", n.Order())
		assert.True(t, n.Authorized())
	})

	t.Run("Success - Denied Response", func(t *testing.T) {
		encoded, sig := responseFor(t, c, map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0190"})

		n, err := c.Verify(SignatureVersion, encoded, sig)

		require.NoError(t, err)
		assert.False(t, n.Authorized())
	})

	t.Run("Failure - Tampered Signature", func(t *testing.T) {
		encoded, _ := responseFor(t, c, map[string]string{"Ds_Order": "123456789012", "Ds_Response": "0000"})

		_, err := c.Verify(SignatureVersion, encoded, "AAAA")

		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("Failure - Unknown Version", func(t *testing.T) {
		_, err := c.Verify("HMAC_SHA512_V2", "e30=", "x")

		assert.Error(t, err)
	})
}

func TestNewRejectsBadKey(t *testing.T) {
	_, err := New(Config{SecretKey: "c2hvcnQ="})
	assert.ErrorIs(t, err, ErrInvalidKey)
}
