package repo

import (
	"time"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// MovementRepository stores immutable stock movement records. Movements are
// only ever created and read; there is no update or business-level delete.
type MovementRepository interface {
	Create(movement models.StockMovement) (models.StockMovement, error)
	List(page Page) ([]models.StockMovement, int, error)

	// Dashboard aggregation queries.
	CountByTypeAfter(t models.MovementType, since time.Time) (int, error)
	CountByTypeBetween(t models.MovementType, start, end time.Time) (int, error)
	CountByUsernameAfter(since time.Time) ([]models.UsernameCount, error)
	CountByProductCategory(category models.Category) (int, error)
}
