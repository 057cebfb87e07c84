package stock

import (
	"time"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// EvaluateLowStock returns a notification when the product's stock is strictly
// below its minimum, nil otherwise. No suppression state is kept; each
// qualifying call yields a fresh record.
func EvaluateLowStock(p models.Product) *models.LowStockNotification {
	if p.Stock >= p.MinimumStock {
		return nil
	}
	return &models.LowStockNotification{
		Date:         time.Now().UTC(),
		Product:      models.ProductRef{ID: p.ID, Name: p.Name},
		CurrentStock: p.Stock,
		MinimumStock: p.MinimumStock,
	}
}
