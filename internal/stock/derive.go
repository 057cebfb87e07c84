package stock

import (
	"errors"
	"time"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// ErrMissingPrevious is returned when an Updated or Deleted derivation is
// attempted without the product's prior state. That is a caller bug, not a
// recoverable condition.
var ErrMissingPrevious = errors.New("previous product state required for this action")

// DeriveMovement computes the stock movement caused by a product lifecycle
// event, or nil when nothing changed.
//
// For Inserted, previous may be nil and the quantity is the created product's
// stock. For Updated, a nil movement means the stock did not change; otherwise
// direction and quantity follow the sign and magnitude of the delta. For
// Deleted, the quantity is taken from current; callers pass the product as it
// was at delete time as both previous and current.
//
// The movement is not persisted here; the caller owns that.
func DeriveMovement(previous *models.Product, current models.Product, action models.MovementAction, username string) (*models.StockMovement, error) {
	if previous == nil && action != models.ActionInserted {
		return nil, ErrMissingPrevious
	}

	if action == models.ActionUpdated && previous.Stock == current.Stock {
		return nil, nil
	}

	m := &models.StockMovement{
		Date:     time.Now().UTC(),
		Product:  models.ProductRef{ID: current.ID, Name: current.Name},
		Action:   action,
		Username: username,
	}

	switch action {
	case models.ActionDeleted:
		m.Type = models.MovementOutgoing
		m.Quantity = current.Stock
	case models.ActionInserted:
		m.Type = models.MovementIncoming
		m.Quantity = current.Stock
	default:
		if current.Stock > previous.Stock {
			m.Type = models.MovementIncoming
			m.Quantity = current.Stock - previous.Stock
		} else {
			m.Type = models.MovementOutgoing
			m.Quantity = previous.Stock - current.Stock
		}
	}

	return m, nil
}
