package repository_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/supplements-storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCheckoutOrderRepoTest(t *testing.T) (repository.CheckoutOrderRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewCheckoutOrderRepo(db), mock
}

func TestCheckoutOrderRepository(t *testing.T) {
	ctx := context.Background()
	lines := []models.CartLine{{ID: "7", Name: "Whey", Price: models.PriceFromString("24,90"), Quantity: 1}}
	linesJSON, _ := json.Marshal(lines)

	t.Run("CreateOrder", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			repo, mock := setupCheckoutOrderRepoTest(t)
			order := &models.CheckoutOrder{
				ID:         "123456789012",
				SessionID:  "sess-1",
				Amount:     2490,
				Currency:   "978",
				Status:     models.OrderStatusPending,
				BuyerEmail: "ana@example.com",
				Lines:      lines,
			}
			now := time.Now()

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO checkout_orders`)).
				WithArgs(order.ID, order.SessionID, order.Amount, order.Currency, order.Status, order.BuyerEmail, linesJSON).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			// Act
			err := repo.CreateOrder(ctx, order)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, now, order.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet(), "SQL mock expectations were not met")
		})

		t.Run("Failure - Database Error", func(t *testing.T) {
			repo, mock := setupCheckoutOrderRepoTest(t)
			dbErr := errors.New("duplicate key")

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO checkout_orders`)).WillReturnError(dbErr)

			err := repo.CreateOrder(ctx, &models.CheckoutOrder{ID: "1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), "failed to create checkout order")
		})
	})

	t.Run("GetOrderByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			repo, mock := setupCheckoutOrderRepoTest(t)
			now := time.Now()

			rows := sqlmock.NewRows([]string{"id", "session_id", "amount", "currency", "status", "buyer_email", "lines", "created_at", "updated_at"}).
				AddRow("123456789012", "sess-1", int64(2490), "978", "paid", "ana@example.com", linesJSON, now, now)
			mock.ExpectQuery(`SELECT (.+) FROM checkout_orders WHERE id = \$1`).WithArgs("123456789012").WillReturnRows(rows)

			order, err := repo.GetOrderByID(ctx, "123456789012")

			require.NoError(t, err)
			assert.Equal(t, models.OrderStatusPaid, order.Status)
			require.Len(t, order.Lines, 1)
			assert.Equal(t, "Whey", order.Lines[0].Name)
		})

		t.Run("Failure - Not Found", func(t *testing.T) {
			repo, mock := setupCheckoutOrderRepoTest(t)
			mock.ExpectQuery(`SELECT (.+) FROM checkout_orders`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

			order, err := repo.GetOrderByID(ctx, "missing")

			assert.Nil(t, order)
			assert.ErrorIs(t, err, sql.ErrNoRows)
		})
	})

	t.Run("UpdateOrderStatus", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			repo, mock := setupCheckoutOrderRepoTest(t)
			mock.ExpectExec(regexp.QuoteMeta(`UPDATE checkout_orders SET status = $1, updated_at = NOW() WHERE id = $2`)).
				WithArgs(models.OrderStatusPaid, "123456789012").
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdateOrderStatus(ctx, "123456789012", models.OrderStatusPaid))
			assert.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - No Rows", func(t *testing.T) {
			repo, mock := setupCheckoutOrderRepoTest(t)
			mock.ExpectExec(`UPDATE checkout_orders`).WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateOrderStatus(ctx, "nope", models.OrderStatusFailed)

			assert.ErrorIs(t, err, sql.ErrNoRows)
		})
	})
}
