package handlers

import (
	"strings"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	} else if len(p.Name) > 100 {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name must be at most 100 characters long"})
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, ProductValidationError{Field: "Description", Description: "Description is required"})
	} else if len(p.Description) > 500 {
		errs = append(errs, ProductValidationError{Field: "Description", Description: "Description must be at most 500 characters long"})
	}
	if p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if p.InitialStock < 0 {
		errs = append(errs, ProductValidationError{Field: "InitialStock", Description: "Initial stock cannot be negative"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.MinimumStock < 0 {
		errs = append(errs, ProductValidationError{Field: "MinimumStock", Description: "Minimum stock cannot be negative"})
	}
	if !models.Category(p.Category).Valid() {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Unknown category"})
	}
	return errs
}
