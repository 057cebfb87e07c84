package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(n models.LowStockNotification) (models.LowStockNotification, error) {
	query := `INSERT INTO low_stock_notifications (id, date, product_id, product_name, current_stock, minimum_stock)
		VALUES ($1, $2, $3, $4, $5, $6)`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	n.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, n.ID, n.Date, n.Product.ID, n.Product.Name, n.CurrentStock, n.MinimumStock)
	if err != nil {
		return models.LowStockNotification{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	return n, nil
}

// List returns notifications ordered by date descending.
func (r *PostgresNotificationRepository) List(page Page) ([]models.LowStockNotification, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM low_stock_notifications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	query := `SELECT id, date, product_id, product_name, current_stock, minimum_stock
		FROM low_stock_notifications ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []models.LowStockNotification
	for rows.Next() {
		var n models.LowStockNotification
		if err := rows.Scan(&n.ID, &n.Date, &n.Product.ID, &n.Product.Name, &n.CurrentStock, &n.MinimumStock); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}
	return notifications, total, rows.Err()
}
