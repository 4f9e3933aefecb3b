package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		name   string
		err    *appErrors.AppError
		code   string
		status int
	}{
		{"validation", appErrors.ValidationError("bad"), appErrors.ErrCodeValidation, http.StatusBadRequest},
		{"not found", appErrors.NotFoundError("missing"), appErrors.ErrCodeNotFound, http.StatusNotFound},
		{"unauthorized", appErrors.UnauthorizedError("who"), appErrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"storage", appErrors.StorageError("redis"), appErrors.ErrCodeStorageError, http.StatusInternalServerError},
		{"third party", appErrors.ThirdPartyError("gateway"), appErrors.ErrCodeThirdPartyError, http.StatusBadGateway},
		{"throttled", appErrors.TooManyRequestsError("wait"), appErrors.ErrCodeTooManyRequests, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.StatusCode)
		})
	}
}

func TestWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := appErrors.ThirdPartyError("The payment could not be processed").WithError(cause).WithDetail("timeout")

	assert.Equal(t, "The payment could not be processed", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "timeout", err.Detail)

	wrapped := fmt.Errorf("checkout: %w", err)
	appErr, ok := appErrors.IsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)

	_, ok = appErrors.IsAppError(cause)
	assert.False(t, ok)
}

func TestAddValidationError(t *testing.T) {
	err := appErrors.AddValidationError("email", "must be a valid address")
	assert.Equal(t, "Invalid field 'email': must be a valid address", err.Message)
}
