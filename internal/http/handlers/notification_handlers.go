package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetNotificationsHandler godoc
// @Summary List low-stock notifications
// @Description Returns low-stock notifications ordered by date descending
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, zero-based"
// @Param size query int false "Page size"
// @Success 200 {object} NotificationsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	notifications, total, err := notificationRepo.List(page)
	if err != nil {
		http.Error(w, "could not fetch notifications", http.StatusInternalServerError)
		return
	}

	resp := NotificationsSearchResult{Data: notifications, Meta: Meta{TotalCount: total}}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
