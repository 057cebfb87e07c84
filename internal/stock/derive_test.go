package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

func product(id, name string, stock int) models.Product {
	return models.Product{
		ID:           id,
		Name:         name,
		Description:  "test product",
		Price:        9.99,
		InitialStock: stock,
		Stock:        stock,
		MinimumStock: 0,
		Category:     models.CategoryElectronics,
	}
}

func TestDeriveMovement_Inserted(t *testing.T) {
	curr := product("p1", "Laptop X", 25)

	m, err := DeriveMovement(nil, curr, models.ActionInserted, "alice")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, models.MovementIncoming, m.Type)
	assert.Equal(t, 25, m.Quantity)
	assert.Equal(t, models.ActionInserted, m.Action)
	assert.Equal(t, "alice", m.Username)
	assert.Equal(t, models.ProductRef{ID: "p1", Name: "Laptop X"}, m.Product)
	assert.False(t, m.Date.IsZero())
}

func TestDeriveMovement_UpdatedUnchangedStockIsNoOp(t *testing.T) {
	prev := product("p1", "Laptop X", 40)
	curr := product("p1", "Laptop X Pro", 40) // renamed, same stock

	m, err := DeriveMovement(&prev, curr, models.ActionUpdated, "alice")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestDeriveMovement_Updated(t *testing.T) {
	tests := []struct {
		name         string
		prevStock    int
		currStock    int
		wantType     models.MovementType
		wantQuantity int
	}{
		{"stock increase", 50, 60, models.MovementIncoming, 10},
		{"stock decrease", 60, 35, models.MovementOutgoing, 25},
		{"drop to zero", 5, 0, models.MovementOutgoing, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := product("p1", "Laptop X", tt.prevStock)
			curr := product("p1", "Laptop X", tt.currStock)

			m, err := DeriveMovement(&prev, curr, models.ActionUpdated, "alice")
			require.NoError(t, err)
			require.NotNil(t, m)

			assert.Equal(t, tt.wantType, m.Type)
			assert.Equal(t, tt.wantQuantity, m.Quantity)
			assert.GreaterOrEqual(t, m.Quantity, 0)
			assert.Equal(t, "alice", m.Username)
		})
	}
}

func TestDeriveMovement_Deleted(t *testing.T) {
	p := product("p1", "Laptop X", 12)

	m, err := DeriveMovement(&p, p, models.ActionDeleted, "bob")
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, models.MovementOutgoing, m.Type)
	assert.Equal(t, 12, m.Quantity)
	assert.Equal(t, models.ActionDeleted, m.Action)
}

func TestDeriveMovement_MissingPrevious(t *testing.T) {
	curr := product("p1", "Laptop X", 10)

	for _, action := range []models.MovementAction{models.ActionUpdated, models.ActionDeleted} {
		m, err := DeriveMovement(nil, curr, action, "alice")
		assert.ErrorIs(t, err, ErrMissingPrevious, "action %s", action)
		assert.Nil(t, m)
	}
}
