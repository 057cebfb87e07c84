package models

// Category is the closed set of product categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryToys        Category = "Toys"
)

// Categories lists every category in a fixed order. Aggregations iterate this
// slice so that empty categories still show up with a zero count.
var Categories = []Category{
	CategoryElectronics,
	CategoryFurniture,
	CategoryClothing,
	CategoryFood,
	CategoryToys,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a product entity in the inventory system.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	InitialStock int      `json:"initial_stock"`
	Stock        int      `json:"stock"`
	MinimumStock int      `json:"minimum_stock"`
	Category     Category `json:"category"`
}
