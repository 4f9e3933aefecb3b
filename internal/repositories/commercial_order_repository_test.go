package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCommercialOrderRepoTest(t *testing.T) (repository.CommercialOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCommercialOrderRepo(db), mock
}

func TestCommercialOrderRepository(t *testing.T) {
	ctx := context.Background()
	customer := models.CommercialCustomer{Name: "Gimnasio Norte", Email: "compras@norte.test"}
	quote := models.Quote{Total: decimal.RequireFromString("121")}

	t.Run("CreateOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCommercialOrderRepoTest(t)
			order := &models.CommercialOrder{Agent: "ana", Customer: customer, Quote: quote}
			customerJSON, _ := json.Marshal(customer)
			quoteJSON, _ := json.Marshal(quote)
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO commercial_orders`)).
				WithArgs("ana", customerJSON, quoteJSON, "121.00", "").
				WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))

			// Act
			err := repo.CreateOrder(ctx, order)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(42), order.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			repo, mock := setupCommercialOrderRepoTest(t)
			dbErr := errors.New("connection refused")
			mock.ExpectQuery(`INSERT INTO commercial_orders`).WillReturnError(dbErr)

			err := repo.CreateOrder(ctx, &models.CommercialOrder{Agent: "ana"})

			assert.ErrorIs(t, err, dbErr)
		})
	})

	t.Run("ListOrders", func(t *testing.T) {
		t.Run("Success - Filtered By Agent", func(t *testing.T) {
			repo, mock := setupCommercialOrderRepoTest(t)
			customerJSON, _ := json.Marshal(customer)
			quoteJSON, _ := json.Marshal(quote)

			rows := sqlmock.NewRows([]string{"id", "agent", "customer", "quote", "notes", "created_at"}).
				AddRow(int64(2), "ana", customerJSON, quoteJSON, "", time.Now()).
				AddRow(int64(1), "ana", customerJSON, quoteJSON, "urgent", time.Now())
			mock.ExpectQuery(`SELECT (.+) FROM commercial_orders`).WithArgs("ana", 50).WillReturnRows(rows)

			orders, err := repo.ListOrders(ctx, "ana", 50)

			require.NoError(t, err)
			require.Len(t, orders, 2)
			assert.Equal(t, "Gimnasio Norte", orders[0].Customer.Name)
			assert.True(t, orders[1].Quote.Total.Equal(decimal.NewFromInt(121)))
		})

		t.Run("Success - Empty", func(t *testing.T) {
			repo, mock := setupCommercialOrderRepoTest(t)
			mock.ExpectQuery(`SELECT (.+) FROM commercial_orders`).WithArgs("", 50).
				WillReturnRows(sqlmock.NewRows([]string{"id", "agent", "customer", "quote", "notes", "created_at"}))

			orders, err := repo.ListOrders(ctx, "", 50)

			require.NoError(t, err)
			assert.NotNil(t, orders)
			assert.Empty(t, orders)
		})

		t.Run("Failure - Corrupt Quote", func(t *testing.T) {
			repo, mock := setupCommercialOrderRepoTest(t)
			customerJSON, _ := json.Marshal(customer)
			rows := sqlmock.NewRows([]string{"id", "agent", "customer", "quote", "notes", "created_at"}).
				AddRow(int64(3), "ana", customerJSON, []byte(`{`), "", time.Now())
			mock.ExpectQuery(`SELECT (.+) FROM commercial_orders`).WillReturnRows(rows)

			_, err := repo.ListOrders(ctx, "ana", 50)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to unmarshal quote of order 3")
		})
	})
}
