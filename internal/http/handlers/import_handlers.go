package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

type csvRow struct {
	Name         string
	Description  string
	Price        float64
	InitialStock int
	Stock        int
	MinimumStock int
	Category     string
}

var csvColumns = []string{"name", "description", "price", "initial_stock", "stock", "minimum_stock", "category"}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", col)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:         record[index["name"]],
			Description:  record[index["description"]],
			Price:        parseFloat(record[index["price"]]),
			InitialStock: parseInt(record[index["initial_stock"]]),
			Stock:        parseInt(record[index["stock"]]),
			MinimumStock: parseInt(record[index["minimum_stock"]]),
			Category:     record[index["category"]],
		})
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ImportProductsHandler godoc
// @Summary Bulk import products from CSV
// @Description Each imported row records its incoming movement and may raise a low-stock notification
// @Tags products
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file with columns name, description, price, initial_stock, stock, minimum_stock, category"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	username, _ := GetUsernameFromRequest(r)
	result := ImportProductsResult{Errors: []ProductValidationError{}}

	for i, row := range rows {
		req := ProductRequest{
			Name:         row.Name,
			Description:  row.Description,
			Price:        row.Price,
			InitialStock: row.InitialStock,
			Stock:        row.Stock,
			MinimumStock: row.MinimumStock,
			Category:     row.Category,
		}
		if rowErrors := validateProduct(req); len(rowErrors) > 0 {
			for _, e := range rowErrors {
				result.Errors = append(result.Errors, ProductValidationError{
					Field:       fmt.Sprintf("row %d: %s", i+1, e.Field),
					Description: e.Description,
				})
			}
			continue
		}

		created, err := productRepo.Create(models.Product{
			Name:         row.Name,
			Description:  row.Description,
			Price:        row.Price,
			InitialStock: row.InitialStock,
			Stock:        row.Stock,
			MinimumStock: row.MinimumStock,
			Category:     models.Category(row.Category),
		})
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{
				Field:       fmt.Sprintf("row %d", i+1),
				Description: "could not create product",
			})
			continue
		}

		recordMovementAndNotify(nil, created, models.ActionInserted, username)
		result.ImportedProductsCount++
	}

	writeJSON(w, http.StatusOK, result)
}
