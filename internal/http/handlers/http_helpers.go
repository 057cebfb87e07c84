package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/ims-backend/internal/auth"
	"github.com/rogerio-castellano/ims-backend/internal/repo"
)

// GetUsernameFromRequest reads the acting username from the bearer token. The
// auth middleware has already validated the token on protected routes.
func GetUsernameFromRequest(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")

	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		return "", err
	}

	if username, ok := claims["username"].(string); ok {
		return username, nil
	}
	return "", nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// pageFromQuery builds the pagination descriptor from page/size query
// parameters, applying defaults for absent values.
func pageFromQuery(r *http.Request) (repo.Page, error) {
	q := r.URL.Query()

	number, err := parseIntPtr(q.Get("page"))
	if err != nil || (number != nil && *number < 0) {
		return repo.Page{}, fmt.Errorf("page must be a non-negative number")
	}
	size, err := parseIntPtr(q.Get("size"))
	if err != nil || (size != nil && *size <= 0) {
		return repo.Page{}, fmt.Errorf("size must be a positive number")
	}

	return repo.NewPage(number, size), nil
}

// parseFloatPtr and parseIntPtr treat an absent parameter as nil and a
// malformed one as an error, so bad input gets a 400 instead of silently
// falling back to the default.
func parseFloatPtr(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}
