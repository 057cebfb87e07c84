package repo

import "github.com/rogerio-castellano/ims-backend/internal/models"

// NotificationRepository stores low-stock notifications for later retrieval.
type NotificationRepository interface {
	Create(n models.LowStockNotification) (models.LowStockNotification, error)
	List(page Page) ([]models.LowStockNotification, int, error)
}
