package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
)

type AccountServiceInterface interface {
	CreateAccount(account *domain.Account) error
	GetUserAccounts(userID string) ([]domain.Account, error)
	GetAccountByID(accountID, userID string) (*domain.Account, error)
	UpdateAccount(accountID, userID string, name, accountType string, isDefault *bool) (*domain.Account, error)
	DeleteAccount(accountID, userID string) error
}

type AccountHandler struct {
	service      AccountServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewAccountHandler(service AccountServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *AccountHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &AccountHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account := req.toDomain(userID)
	if err := h.service.CreateAccount(&account); err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully created.",
		"data":    toAccountResponse(account),
	})
}

func (h *AccountHandler) GetUserAccounts(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	accounts, err := h.service.GetUserAccounts(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Accounts retrieved successfully.",
		"data":    toAccountResponses(accounts),
	})
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.service.GetAccountByID(r.PathValue("id"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account retrieved successfully.",
		"data":    toAccountResponse(*account),
	})
}

func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateAccount(r.PathValue("id"), userID, req.Name, req.Type, req.IsDefault)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Account successfully updated.",
		"data":    toAccountResponse(*account),
	})
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteAccount(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
