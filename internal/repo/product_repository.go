package repo

import "github.com/rogerio-castellano/ims-backend/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(filter ProductFilter) ([]models.Product, int, error)
	BelowMinimumStock(page Page) ([]models.Product, int, error)

	// Dashboard aggregation queries.
	CountAll() (int, error)
	SumStock() (int, error)
	SumValue() (float64, error)
	CountByCategory(category models.Category) (int, error)
}
