package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ims-backend/internal/models"
	repo "github.com/rogerio-castellano/ims-backend/internal/repo"
	"github.com/rogerio-castellano/ims-backend/internal/stock"
	"github.com/rs/zerolog/log"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog and records the incoming stock movement
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		InitialStock: req.InitialStock,
		Stock:        req.Stock,
		MinimumStock: req.MinimumStock,
		Category:     models.Category(req.Category),
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create product: product name duplicated", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	username, _ := GetUsernameFromRequest(r)
	recordMovementAndNotify(nil, created, models.ActionInserted, username)

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Updates a product; a stock change records a movement, low stock raises a notification
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} []ProductValidationError
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	product := models.Product{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		InitialStock: req.InitialStock,
		Stock:        req.Stock,
		MinimumStock: req.MinimumStock,
		Category:     models.Category(req.Category),
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	username, _ := GetUsernameFromRequest(r)
	recordMovementAndNotify(&existing, updated, models.ActionUpdated, username)

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes a product and records the outgoing movement for its remaining stock
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	existing, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}

	// The deleted product is passed as both previous and current; the movement
	// quantity is its stock at delete time. No low-stock check on delete.
	username, _ := GetUsernameFromRequest(r)
	movement, err := stock.DeriveMovement(&existing, existing, models.ActionDeleted, username)
	if err != nil {
		log.Error().Err(err).Str("product_id", existing.ID).Msg("could not derive delete movement")
	} else if _, err := movementRepo.Create(*movement); err != nil {
		log.Warn().Err(err).Str("product_id", existing.ID).Msg("product deleted but movement not recorded")
	}
	invalidateStats(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// FilterProductsHandler godoc
// @Summary Filter and paginate products
// @Tags products
// @Produce json
// @Param name query string false "Name substring, case-insensitive"
// @Param categories query string false "Comma-separated category list"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /products/search [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := pageFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	categories, err := parseCategories(q.Get("categories"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	minPrice, err := parseFloatPtr(q.Get("minPrice"))
	if err != nil {
		http.Error(w, "minPrice must be a number", http.StatusBadRequest)
		return
	}
	maxPrice, err := parseFloatPtr(q.Get("maxPrice"))
	if err != nil {
		http.Error(w, "maxPrice must be a number", http.StatusBadRequest)
		return
	}

	filter := repo.ProductFilter{
		Name:       q.Get("name"),
		Categories: categories,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Page:       page,
	}

	products, total, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "could not filter products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}

	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func parseCategories(raw string) ([]models.Category, error) {
	if raw == "" {
		return nil, nil
	}
	var categories []models.Category
	for _, part := range strings.Split(raw, ",") {
		c := models.Category(strings.TrimSpace(part))
		if !c.Valid() {
			return nil, errors.New("unknown category: " + string(c))
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// recordMovementAndNotify persists the derived movement and low-stock
// notification for a product mutation. The product write has already
// succeeded, so failures here are logged as recoverable inconsistencies
// instead of failing the request.
func recordMovementAndNotify(previous *models.Product, current models.Product, action models.MovementAction, username string) {
	movement, err := stock.DeriveMovement(previous, current, action, username)
	if err != nil {
		log.Error().Err(err).Str("product_id", current.ID).Str("action", string(action)).Msg("could not derive movement")
	} else if movement != nil {
		if _, err := movementRepo.Create(*movement); err != nil {
			log.Warn().Err(err).Str("product_id", current.ID).Msg("product saved but movement not recorded")
		}
	}

	if notification := stock.EvaluateLowStock(current); notification != nil {
		if _, err := notificationRepo.Create(*notification); err != nil {
			log.Warn().Err(err).Str("product_id", current.ID).Msg("product saved but low-stock notification not recorded")
		}
	}

	invalidateStats(context.Background())
}

func invalidateStats(ctx context.Context) {
	if statsCache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := statsCache.Invalidate(ctx); err != nil {
		log.Debug().Err(err).Msg("could not invalidate stats cache")
	}
}
