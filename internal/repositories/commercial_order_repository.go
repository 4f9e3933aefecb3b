package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
)

type CommercialOrderRepository interface {
	CreateOrder(ctx context.Context, order *models.CommercialOrder) error
	ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error)
}

type commercialOrderRepository struct {
	DB *sql.DB
}

func NewCommercialOrderRepo(db *sql.DB) CommercialOrderRepository {
	return &commercialOrderRepository{DB: db}
}

func (r *commercialOrderRepository) CreateOrder(ctx context.Context, order *models.CommercialOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	customer, err := json.Marshal(order.Customer)
	if err != nil {
		return fmt.Errorf("failed to marshal customer: %w", err)
	}

	quote, err := json.Marshal(order.Quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	query := `
		INSERT INTO commercial_orders (agent, customer, quote, total, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, order.Agent, customer, quote, order.Quote.Total.StringFixed(2), order.Notes).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create commercial order: %w", err)
	}

	return nil
}

// ListOrders returns the newest orders first. An empty agent lists every agent.
func (r *commercialOrderRepository) ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, agent, customer, quote, notes, created_at
		FROM commercial_orders
		WHERE ($1 = '' OR agent = $1)
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, agent, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list commercial orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.CommercialOrder{}

	for rows.Next() {
		order := &models.CommercialOrder{}

		var customer, quote []byte

		if err := rows.Scan(&order.ID, &order.Agent, &customer, &quote, &order.Notes, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commercial order: %w", err)
		}

		if err := json.Unmarshal(customer, &order.Customer); err != nil {
			return nil, fmt.Errorf("failed to unmarshal customer of order %d: %w", order.ID, err)
		}

		if err := json.Unmarshal(quote, &order.Quote); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quote of order %d: %w", order.ID, err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commercial orders: %w", err)
	}

	return orders, nil
}
