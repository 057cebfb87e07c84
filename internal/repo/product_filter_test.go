package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func seed(t *testing.T, r *InMemoryProductRepository) (laptop, phone, desk models.Product) {
	t.Helper()
	var err error
	laptop, err = r.Create(models.Product{Name: "Laptop X", Description: "d", Price: 1500, Stock: 5, MinimumStock: 2, Category: models.CategoryElectronics})
	require.NoError(t, err)
	phone, err = r.Create(models.Product{Name: "Phone Y", Description: "d", Price: 700, Stock: 1, MinimumStock: 3, Category: models.CategoryElectronics})
	require.NoError(t, err)
	desk, err = r.Create(models.Product{Name: "Standing Desk", Description: "d", Price: 350, Stock: 12, MinimumStock: 1, Category: models.CategoryFurniture})
	require.NoError(t, err)
	return laptop, phone, desk
}

func TestNewPageDefaults(t *testing.T) {
	page := NewPage(nil, nil)
	assert.Equal(t, 0, page.Number)
	assert.Equal(t, 10, page.Size)

	page = NewPage(intPtr(2), intPtr(5))
	assert.Equal(t, 10, page.Offset())
}

func TestFilter_EmptyMatchesEverything(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r)

	products, total, err := r.Filter(ProductFilter{Page: NewPage(nil, nil)})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, products, 3)
}

func TestFilter_NameSubstringCaseInsensitive(t *testing.T) {
	r := NewInMemoryProductRepository()
	laptop, _, _ := seed(t, r)

	products, total, err := r.Filter(ProductFilter{Name: "laptop", Page: NewPage(nil, nil)})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, laptop.ID, products[0].ID)
}

func TestFilter_Categories(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r)

	products, total, err := r.Filter(ProductFilter{
		Categories: []models.Category{models.CategoryElectronics},
		Page:       NewPage(nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, p := range products {
		assert.Equal(t, models.CategoryElectronics, p.Category)
	}
}

func TestFilter_PriceRange(t *testing.T) {
	r := NewInMemoryProductRepository()
	_, phone, desk := seed(t, r)

	products, total, err := r.Filter(ProductFilter{
		MinPrice: floatPtr(300),
		MaxPrice: floatPtr(1000),
		Page:     NewPage(nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	ids := []string{products[0].ID, products[1].ID}
	assert.Contains(t, ids, phone.ID)
	assert.Contains(t, ids, desk.ID)
}

func TestFilter_CombinedCriteriaAreANDed(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r)

	// "o" appears in every name, but only one electronics product is under 1000.
	products, total, err := r.Filter(ProductFilter{
		Name:       "o",
		Categories: []models.Category{models.CategoryElectronics},
		MaxPrice:   floatPtr(1000),
		Page:       NewPage(nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Phone Y", products[0].Name)
}

func TestFilter_InvertedPriceBoundsYieldEmptyResult(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r)

	products, total, err := r.Filter(ProductFilter{
		MinPrice: floatPtr(1000),
		MaxPrice: floatPtr(100),
		Page:     NewPage(nil, nil),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, products)
}

func TestFilter_Pagination(t *testing.T) {
	r := NewInMemoryProductRepository()
	seed(t, r)

	products, total, err := r.Filter(ProductFilter{Page: NewPage(intPtr(1), intPtr(2))})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, products, 1)

	// Offset beyond the result set returns an empty page, not an error.
	products, total, err = r.Filter(ProductFilter{Page: NewPage(intPtr(5), intPtr(10))})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, products)
}

func TestBelowMinimumStock(t *testing.T) {
	r := NewInMemoryProductRepository()
	_, phone, _ := seed(t, r)

	products, total, err := r.BelowMinimumStock(NewPage(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, phone.ID, products[0].ID)
}
