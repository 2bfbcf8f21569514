package admin

import (
	"log"
	"net/http"
)

type ServiceInterface interface {
	ListUsers() ([]UserListing, error)
	ListAccounts() ([]AccountListing, error)
	ListTransactions() ([]TransactionListing, error)
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

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		log.Printf("admin: listing users failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Users retrieved successfully.",
		"data":    users,
	})
}

func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts()
	if err != nil {
		log.Printf("admin: listing accounts failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Accounts retrieved successfully.",
		"data":    accounts,
	})
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactions()
	if err != nil {
		log.Printf("admin: listing transactions failed: %v", err)
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}
