package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/shopspring/decimal"
)

type BudgetServiceInterface interface {
	CreateOrUpdateBudget(userID string, amount decimal.Decimal) (*domain.Budget, error)
	GetBudget(userID string) (*domain.Budget, error)
	DeleteBudget(userID string) error
}

type BudgetHandler struct {
	service      BudgetServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewBudgetHandler(service BudgetServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *BudgetHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &BudgetHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *BudgetHandler) CreateOrUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	budget, err := h.service.CreateOrUpdateBudget(userID, req.Amount)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget successfully saved.",
		"data":    toBudgetResponse(*budget),
	})
}

func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	budget, err := h.service.GetBudget(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Budget retrieved successfully.",
		"data":    toBudgetResponse(*budget),
	})
}

func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteBudget(userID); err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
