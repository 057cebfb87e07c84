package repo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// InMemoryNotificationRepository is an in-memory implementation of NotificationRepository.
type InMemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.LowStockNotification
}

func NewInMemoryNotificationRepository() *InMemoryNotificationRepository {
	return &InMemoryNotificationRepository{
		notifications: []models.LowStockNotification{},
	}
}

func (r *InMemoryNotificationRepository) Create(n models.LowStockNotification) (models.LowStockNotification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = uuid.NewString()
	r.notifications = append(r.notifications, n)
	return n, nil
}

// List returns notifications ordered by date descending.
func (r *InMemoryNotificationRepository) List(page Page) ([]models.LowStockNotification, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ordered := make([]models.LowStockNotification, len(r.notifications))
	copy(ordered, r.notifications)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.After(ordered[j].Date)
	})

	start, end := page.Slice(len(ordered))
	return ordered[start:end], len(ordered), nil
}

func (r *InMemoryNotificationRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = []models.LowStockNotification{}
}
