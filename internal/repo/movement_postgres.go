package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

func (r *PostgresMovementRepository) Create(m models.StockMovement) (models.StockMovement, error) {
	query := `INSERT INTO stock_movements (id, date, type, product_id, product_name, quantity, action, username)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	m.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Date, string(m.Type), m.Product.ID, m.Product.Name, m.Quantity, string(m.Action), m.Username)
	if err != nil {
		return models.StockMovement{}, fmt.Errorf("failed to insert movement: %w", err)
	}
	return m, nil
}

// List returns movements ordered by date descending.
func (r *PostgresMovementRepository) List(page Page) ([]models.StockMovement, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	query := `SELECT id, date, type, product_id, product_name, quantity, action, username
		FROM stock_movements ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	var movements []models.StockMovement
	for rows.Next() {
		var m models.StockMovement
		if err := rows.Scan(&m.ID, &m.Date, &m.Type, &m.Product.ID, &m.Product.Name, &m.Quantity, &m.Action, &m.Username); err != nil {
			return nil, 0, err
		}
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return movements, total, nil
}

func (r *PostgresMovementRepository) CountByTypeAfter(t models.MovementType, since time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE type = $1 AND date > $2`,
		string(t), since).Scan(&count)
	return count, err
}

func (r *PostgresMovementRepository) CountByTypeBetween(t models.MovementType, start, end time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_movements WHERE type = $1 AND date >= $2 AND date < $3`,
		string(t), start, end).Scan(&count)
	return count, err
}

func (r *PostgresMovementRepository) CountByUsernameAfter(since time.Time) ([]models.UsernameCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := `SELECT username, COUNT(*) AS cnt FROM stock_movements
		WHERE date > $1 GROUP BY username ORDER BY cnt DESC, username ASC`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.UsernameCount
	for rows.Next() {
		var uc models.UsernameCount
		if err := rows.Scan(&uc.Username, &uc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, uc)
	}
	return counts, rows.Err()
}

// CountByProductCategory joins movements to live products, so movements whose
// product has been deleted are not counted.
func (r *PostgresMovementRepository) CountByProductCategory(category models.Category) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	query := `SELECT COUNT(*) FROM stock_movements m
		JOIN products p ON m.product_id = p.id WHERE p.category = $1`
	var count int
	err := r.db.QueryRowContext(ctx, query, string(category)).Scan(&count)
	return count, err
}
