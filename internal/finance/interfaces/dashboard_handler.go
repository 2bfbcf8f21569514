package interfaces

import (
	"log"
	"net/http"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/application"
)

type DashboardServiceInterface interface {
	GetDashboardSummary(userID string) (*application.DashboardSummary, error)
}

type DashboardHandler struct {
	service      DashboardServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewDashboardHandler(service DashboardServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *DashboardHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &DashboardHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.service.GetDashboardSummary(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Dashboard summary retrieved successfully.",
		"data":    toDashboardResponse(*summary),
	})
}
