package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Create adds a new product to the repository, assigning its ID.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = uuid.NewString()
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Filter returns the page of products matching the filter plus the total match
// count before paging.
func (r *InMemoryProductRepository) Filter(filter ProductFilter) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := []models.Product{}
	for _, p := range r.products {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	start, end := filter.Page.Slice(len(filtered))
	return filtered[start:end], len(filtered), nil
}

// BelowMinimumStock returns the page of products whose stock is strictly below
// their minimum.
func (r *InMemoryProductRepository) BelowMinimumStock(page Page) ([]models.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	low := []models.Product{}
	for _, p := range r.products {
		if p.Stock < p.MinimumStock {
			low = append(low, p)
		}
	}

	start, end := page.Slice(len(low))
	return low[start:end], len(low), nil
}

func (r *InMemoryProductRepository) CountAll() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *InMemoryProductRepository) SumStock() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, p := range r.products {
		total += p.Stock
	}
	return total, nil
}

func (r *InMemoryProductRepository) SumValue() (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0.0
	for _, p := range r.products {
		total += p.Price * float64(p.Stock)
	}
	return total, nil
}

func (r *InMemoryProductRepository) CountByCategory(category models.Category) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.products {
		if p.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
