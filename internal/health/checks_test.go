package health

import (
	"context"
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/config"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(provider string) *config.Config {
	return &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "store", Password: "secret", Name: "store", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379", Username: "default"},
		Gateway:      config.Gateway{Provider: provider},
	}
}

func names(cfg *config.Config, endpoints *Endpoints) []string {
	var out []string
	for _, c := range Checks(cfg, endpoints) {
		out = append(out, c.Name)
	}
	return out
}

func TestChecks(t *testing.T) {
	t.Run("Success - Redsys checks storage only", func(t *testing.T) {
		// Act
		got := names(testConfig("redsys"), &Endpoints{})

		// Assert
		assert.Equal(t, []string{"database", "redis"}, got)
	})

	t.Run("Success - Stripe gateway adds its check", func(t *testing.T) {
		// Arrange
		client := mocks.NewStripeClient(t)
		client.On("Ping", mock.Anything).Return(nil).Once()

		// Act
		checks := Checks(testConfig("stripe"), &Endpoints{StripeClient: client})

		// Assert
		require.Len(t, checks, 3)
		assert.Equal(t, "stripe", checks[2].Name)
		assert.NoError(t, checks[2].Check(context.Background()))
	})

	t.Run("Failure - Stripe unreachable", func(t *testing.T) {
		// Arrange
		client := mocks.NewStripeClient(t)
		client.On("Ping", mock.Anything).Return(errors.New("dial tcp: timeout")).Once()

		// Act
		err := stripeCheck(client)(context.Background())

		// Assert
		assert.ErrorContains(t, err, "failed to connect to stripe")
	})

	t.Run("Failure - Stripe client missing", func(t *testing.T) {
		// Act
		err := stripeCheck(nil)(context.Background())

		// Assert
		assert.Error(t, err)
	})
}
