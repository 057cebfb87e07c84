package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, name, description, price, initial_stock, stock, minimum_stock, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	p.ID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Description, p.Price, p.InitialStock, p.Stock, p.MinimumStock, p.Category)
	if err != nil && strings.Contains(err.Error(), "unique constraint") {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, name, description, price, initial_stock, stock, minimum_stock, category FROM products ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresProductRepository) GetByID(id string) (models.Product, error) {
	query := `SELECT id, name, description, price, initial_stock, stock, minimum_stock, category FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InitialStock, &p.Stock, &p.MinimumStock, &p.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, price = $3, initial_stock = $4, stock = $5, minimum_stock = $6, category = $7 WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Description, p.Price, p.InitialStock, p.Stock, p.MinimumStock, p.Category, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id string) error {
	query := `DELETE FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Filter(filter ProductFilter) ([]models.Product, int, error) {
	conditions, args, argIdx := filterConditions(filter)

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM products WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, price, initial_stock, stock, minimum_stock, category FROM products WHERE 1=1`
	query += conditions
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Page.Size, filter.Page.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	return products, totalCount, err
}

func filterConditions(filter ProductFilter) (string, []any, int) {
	query := ""
	argIdx := 1
	args := []any{}

	if filter.Name != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Name+"%")
		argIdx++
	}
	if len(filter.Categories) > 0 {
		placeholders := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			placeholders[i] = fmt.Sprintf("$%d", argIdx)
			args = append(args, string(c))
			argIdx++
		}
		query += " AND category IN (" + strings.Join(placeholders, ", ") + ")"
	}
	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", argIdx)
		args = append(args, *filter.MinPrice)
		argIdx++
	}
	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", argIdx)
		args = append(args, *filter.MaxPrice)
		argIdx++
	}

	return query, args, argIdx
}

func (r *PostgresProductRepository) BelowMinimumStock(page Page) ([]models.Product, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE stock < minimum_stock`).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, price, initial_stock, stock, minimum_stock, category
		FROM products WHERE stock < minimum_stock ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	return products, totalCount, err
}

func (r *PostgresProductRepository) CountAll() (int, error) {
	return r.countQuery(`SELECT COUNT(*) FROM products`)
}

func (r *PostgresProductRepository) SumStock() (int, error) {
	return r.countQuery(`SELECT COALESCE(SUM(stock), 0) FROM products`)
}

func (r *PostgresProductRepository) SumValue() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(price * stock), 0) FROM products`).Scan(&total)
	return total, err
}

func (r *PostgresProductRepository) CountByCategory(category models.Category) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE category = $1`, string(category)).Scan(&count)
	return count, err
}

func (r *PostgresProductRepository) countQuery(query string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.InitialStock, &p.Stock, &p.MinimumStock, &p.Category); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
