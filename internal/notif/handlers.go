package notif

import (
	"net/http"
	"strconv"

	"socialfeed/internal/common"

	"github.com/gorilla/mux"
)

type AlertHandler struct {
	service *CrisisService
}

func NewAlertHandler(service *CrisisService) *AlertHandler {
	return &AlertHandler{service: service}
}

// RecentAlerts serves GET /admin/alerts?limit=N.
func (h *AlertHandler) RecentAlerts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 50
	}

	alerts, err := h.service.RecentAlerts(r.Context(), limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"alerts":  alerts,
		"count":   len(alerts),
	})
}

// RegisterRoutes mounts the admin routes. admin must already enforce the admin role.
func (h *AlertHandler) RegisterRoutes(admin *mux.Router) {
	admin.HandleFunc("/alerts", h.RecentAlerts).Methods(http.MethodGet)
}
