package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/supplements-storefront/internal/errors"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetConsentHandler(t *testing.T) {
	t.Run("Success - Banner not answered", func(t *testing.T) {
		// Arrange
		consentService := mocks.NewConsentService(t)
		handler := handlers.NewConsentHandler(consentService)

		consentService.On("GetConsent", mock.Anything, testutils.TestSessionID).Return(nil, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/consent", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetConsent().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":null}`, rr.Body.String())
	})

	t.Run("Failure - Store unavailable", func(t *testing.T) {
		// Arrange
		consentService := mocks.NewConsentService(t)
		handler := handlers.NewConsentHandler(consentService)

		consentService.On("GetConsent", mock.Anything, testutils.TestSessionID).Return(nil, appErrors.StorageError("Failed to load consent")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/consent", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetConsent().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSaveConsentHandler(t *testing.T) {
	t.Run("Success - Choices recorded", func(t *testing.T) {
		// Arrange
		consentService := mocks.NewConsentService(t)
		handler := handlers.NewConsentHandler(consentService)

		ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		consentService.On("SaveConsent", mock.Anything, testutils.TestSessionID, &models.ConsentRequest{Analytics: true}).
			Return(&models.Consent{Necessary: true, Analytics: true, Timestamp: ts}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/api/v1/consent", bytes.NewReader([]byte(`{"analytics":true,"marketing":false}`)), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.SaveConsent().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var consent models.Consent
		decodeData(t, rr, &consent)
		assert.True(t, consent.Necessary)
		assert.True(t, consent.Analytics)
		assert.False(t, consent.Marketing)
		assert.True(t, ts.Equal(consent.Timestamp))
	})
}
