package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
)

type CheckoutOrderRepository interface {
	CreateOrder(ctx context.Context, order *models.CheckoutOrder) error
	GetOrderByID(ctx context.Context, id string) (*models.CheckoutOrder, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
}

type checkoutOrderRepository struct {
	DB *sql.DB
}

func NewCheckoutOrderRepo(db *sql.DB) CheckoutOrderRepository {
	return &checkoutOrderRepository{DB: db}
}

func (r *checkoutOrderRepository) CreateOrder(ctx context.Context, order *models.CheckoutOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal order lines: %w", err)
	}

	query := `
		INSERT INTO checkout_orders (id, session_id, amount, currency, status, buyer_email, lines, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, order.ID, order.SessionID, order.Amount, order.Currency, order.Status, order.BuyerEmail, lines).
		Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create checkout order: %w", err)
	}

	return nil
}

func (r *checkoutOrderRepository) GetOrderByID(ctx context.Context, id string) (*models.CheckoutOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, session_id, amount, currency, status, buyer_email, lines, created_at, updated_at
		FROM checkout_orders
		WHERE id = $1
	`

	order := &models.CheckoutOrder{}

	var lines []byte

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&order.ID, &order.SessionID, &order.Amount, &order.Currency, &order.Status, &order.BuyerEmail, &lines, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout order %s: %w", id, err)
	}

	if len(lines) > 0 {
		if err := json.Unmarshal(lines, &order.Lines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order lines: %w", err)
		}
	}

	return order, nil
}

// UpdateOrderStatus returns sql.ErrNoRows when the order does not exist.
func (r *checkoutOrderRepository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE checkout_orders SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update checkout order status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
