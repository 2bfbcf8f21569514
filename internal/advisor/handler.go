package advisor

import (
	"log"
	"net/http"
)

type ServiceInterface interface {
	GetRecommendations(userID string) *Recommendations
}

type respondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type respondErrorFunc func(w http.ResponseWriter, status int, message string)

type Handler struct {
	service      ServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewHandler(service ServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *Handler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetRecommendations always answers 200: the service degrades to the default
// recommendation set instead of surfacing failures.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Recommendations generated successfully.",
		"data":    h.service.GetRecommendations(userID),
	})
}
