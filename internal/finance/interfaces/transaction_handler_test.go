package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateTransaction_Success(t *testing.T) {
	body := `{"accountId":"account-1","type":"EXPENSE","amount":"125.50","category":"Groceries","description":"weekly shop"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response["status"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "EXPENSE", data["type"])
	assert.Equal(t, "125.5", data["amount"])
	assert.Equal(t, "COMPLETED", data["status"])
	assert.Equal(t, 1, len(mockService.transactions))
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader("not json")), "user-1")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	body := `{"accountId":"account-1","type":"TRANSFER","amount":"10","category":"Misc"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{createErr: financeErrors.NewValidationError("invalid transaction type")}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.CreateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestGetTransaction_OtherUserLooksLikeMissing(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/transactions/transaction-1", nil), "user-2")
	req.SetPathValue("id", "transaction-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{{
			ID:        "transaction-1",
			UserID:    "user-1",
			AccountID: "account-1",
			Type:      domain.TransactionTypeExpense,
			Amount:    decimal.RequireFromString("50"),
			Category:  "Transport",
			Status:    domain.TransactionStatusCompleted,
		}},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Not found", response["message"])
}

func TestGetAccountTransactions_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/transactions/account/account-1", nil), "user-1")
	req.SetPathValue("accountId", "account-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{
			{ID: "transaction-1", UserID: "user-1", AccountID: "account-1", Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("100"), Category: "Salary", Status: domain.TransactionStatusCompleted},
			{ID: "transaction-2", UserID: "user-1", AccountID: "account-2", Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("40"), Category: "Transport", Status: domain.TransactionStatusCompleted},
		},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.GetAccountTransactions(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)

	data := response["data"].([]interface{})
	assert.Equal(t, 1, len(data))
}

func TestUpdateTransaction_Success(t *testing.T) {
	body := `{"accountId":"account-1","type":"INCOME","amount":"75","category":"Bonus"}`
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/transactions/transaction-1", strings.NewReader(body)), "user-1")
	req.SetPathValue("id", "transaction-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{{
			ID:        "transaction-1",
			UserID:    "user-1",
			AccountID: "account-1",
			Type:      domain.TransactionTypeExpense,
			Amount:    decimal.RequireFromString("50"),
			Category:  "Transport",
			Status:    domain.TransactionStatusCompleted,
		}},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.UpdateTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "INCOME", data["type"])
	assert.Equal(t, "75", data["amount"])
}

func TestDeleteTransaction_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/transactions/transaction-1", nil), "user-1")
	req.SetPathValue("id", "transaction-1")
	w := httptest.NewRecorder()

	mockService := &MockTransactionService{
		transactions: []domain.Transaction{{
			ID:     "transaction-1",
			UserID: "user-1",
			Type:   domain.TransactionTypeExpense,
			Amount: decimal.RequireFromString("50"),
			Status: domain.TransactionStatusCompleted,
		}},
	}
	handler := NewTransactionHandler(mockService, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, 0, len(mockService.transactions))
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/transactions/missing", nil), "user-1")
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler := NewTransactionHandler(&MockTransactionService{}, respondJSON, respondError)
	handler.DeleteTransaction(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
