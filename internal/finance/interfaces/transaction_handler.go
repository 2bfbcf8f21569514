package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(transaction *domain.Transaction) error
	GetUserTransactions(userID string) ([]domain.Transaction, error)
	GetAccountTransactions(accountID, userID string) ([]domain.Transaction, error)
	GetTransactionByID(transactionID, userID string) (*domain.Transaction, error)
	UpdateTransaction(transactionID, userID string, updated domain.Transaction) (*domain.Transaction, error)
	DeleteTransaction(transactionID, userID string) error
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  respondJSONFunc
	respondError respondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON respondJSONFunc, respondError respondErrorFunc) *TransactionHandler {
	if service == nil {
		log.Fatal("Service must not be nil")
		return nil
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction := req.toDomain(userID)
	if err := h.service.CreateTransaction(&transaction); err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    toTransactionResponse(transaction),
	})
}

func (h *TransactionHandler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetUserTransactions(userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    toTransactionResponses(transactions),
	})
}

func (h *TransactionHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transactions, err := h.service.GetAccountTransactions(r.PathValue("accountId"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    toTransactionResponses(transactions),
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	transaction, err := h.service.GetTransactionByID(r.PathValue("id"), userID)
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    toTransactionResponse(*transaction),
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(r.PathValue("id"), userID, req.toDomain(userID))
	if err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    toTransactionResponse(*transaction),
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteTransaction(r.PathValue("id"), userID); err != nil {
		handleServiceError(h.respondError, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
