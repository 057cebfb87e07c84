package handlers

import "github.com/rogerio-castellano/ims-backend/internal/models"

type ProductRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	InitialStock int     `json:"initial_stock"`
	Stock        int     `json:"stock"`
	MinimumStock int     `json:"minimum_stock"`
	Category     string  `json:"category"`
}

type ProductResponse struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	InitialStock int     `json:"initial_stock"`
	Stock        int     `json:"stock"`
	MinimumStock int     `json:"minimum_stock"`
	Category     string  `json:"category"`
	LowStock     bool    `json:"low_stock,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type MovementsSearchResult struct {
	Data []models.StockMovement `json:"data"`
	Meta Meta                   `json:"meta,omitempty"`
}

type NotificationsSearchResult struct {
	Data []models.LowStockNotification `json:"data"`
	Meta Meta                          `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		InitialStock: p.InitialStock,
		Stock:        p.Stock,
		MinimumStock: p.MinimumStock,
		Category:     string(p.Category),
		LowStock:     p.Stock < p.MinimumStock,
	}
}
