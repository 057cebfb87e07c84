package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// ProductLookup resolves a movement's product snapshot to the live product.
// The in-memory movement store needs it for the per-category movement counts;
// the Postgres store does the same with a join.
type ProductLookup interface {
	GetByID(id string) (models.Product, error)
}

// InMemoryMovementRepository is an in-memory implementation of MovementRepository.
type InMemoryMovementRepository struct {
	mu        sync.RWMutex
	movements []models.StockMovement
	products  ProductLookup
}

func NewInMemoryMovementRepository(products ProductLookup) *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.StockMovement{},
		products:  products,
	}
}

func (r *InMemoryMovementRepository) Create(movement models.StockMovement) (models.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	movement.ID = uuid.NewString()
	r.movements = append(r.movements, movement)
	return movement, nil
}

// List returns movements ordered by date descending.
func (r *InMemoryMovementRepository) List(page Page) ([]models.StockMovement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]models.StockMovement, len(r.movements))
	copy(ordered, r.movements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	start, end := page.Slice(len(ordered))
	return ordered[start:end], len(ordered), nil
}

func (r *InMemoryMovementRepository) CountByTypeAfter(t models.MovementType, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, m := range r.movements {
		if m.Type == t && m.Date.After(since) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryMovementRepository) CountByTypeBetween(t models.MovementType, start, end time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, m := range r.movements {
		if m.Type == t && !m.Date.Before(start) && m.Date.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryMovementRepository) CountByUsernameAfter(since time.Time) ([]models.UsernameCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byUser := map[string]int{}
	for _, m := range r.movements {
		if m.Date.After(since) {
			byUser[m.Username]++
		}
	}

	counts := make([]models.UsernameCount, 0, len(byUser))
	for username, count := range byUser {
		counts = append(counts, models.UsernameCount{Username: username, Count: count})
	}
	return counts, nil
}

// CountByProductCategory counts movements whose snapshot product still exists
// and currently belongs to the category. Movements of deleted products are
// excluded because the lookup fails.
func (r *InMemoryMovementRepository) CountByProductCategory(category models.Category) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, m := range r.movements {
		p, err := r.products.GetByID(m.Product.ID)
		if err != nil {
			continue
		}
		if p.Category == category {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = []models.StockMovement{}
}
