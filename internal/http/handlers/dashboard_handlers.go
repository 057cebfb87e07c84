package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/ims-backend/internal/stats"
	"github.com/rs/zerolog/log"
)

// GetDashboardStatsHandler godoc
// @Summary Dashboard statistics
// @Description Summary, category distributions, 24h movement window and 7-day series
// @Tags dashboard
// @Produce json
// @Success 200 {object} stats.Snapshot
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/stats [get]
func GetDashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	if statsCache != nil {
		if snap, err := statsCache.Get(r.Context()); err == nil {
			writeJSON(w, http.StatusOK, snap)
			return
		}
	}

	snap, err := stats.Aggregate(productRepo, movementRepo, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate dashboard stats")
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}

	if statsCache != nil {
		if err := statsCache.Set(r.Context(), snap); err != nil {
			log.Debug().Err(err).Msg("could not cache stats snapshot")
		}
	}

	writeJSON(w, http.StatusOK, snap)
}

// GetBelowMinimumStockHandler godoc
// @Summary List products below their minimum stock
// @Tags dashboard
// @Produce json
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /dashboard/below-minimum-stock [get]
func GetBelowMinimumStockHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, total, err := productRepo.BelowMinimumStock(page)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: total},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p)
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
