package service_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	service "github.com/aaravmahajanofficial/supplements-storefront/internal/services"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/session"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsent(t *testing.T) {
	store := session.NewStore(testutils.NewMemoryCache(), time.Hour)
	svc := service.NewConsentService(store)

	t.Run("Success - Nothing stored yet", func(t *testing.T) {
		consent, err := svc.GetConsent(t.Context(), sid)

		require.NoError(t, err)
		assert.Nil(t, consent)
	})

	t.Run("Success - Save and read back", func(t *testing.T) {
		// Act
		saved, err := svc.SaveConsent(t.Context(), sid, &models.ConsentRequest{Analytics: true})
		require.NoError(t, err)

		got, err := svc.GetConsent(t.Context(), sid)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Necessary)
		assert.True(t, got.Analytics)
		assert.False(t, got.Marketing)
		assert.WithinDuration(t, time.Now(), saved.Timestamp, time.Minute)
		assert.True(t, saved.Timestamp.Equal(got.Timestamp))
	})
}
