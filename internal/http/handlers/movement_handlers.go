package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetMovementsHandler godoc
// @Summary List stock movements
// @Description Returns stock movements ordered by date descending
// @Tags movements
// @Produce json
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movements, total, err := movementRepo.List(page)
	if err != nil {
		http.Error(w, "could not fetch movements", http.StatusInternalServerError)
		return
	}

	resp := MovementsSearchResult{Data: movements, Meta: Meta{TotalCount: total}}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
