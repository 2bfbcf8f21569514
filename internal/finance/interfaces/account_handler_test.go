package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/stretchr/testify/assert"
)

func TestCreateAccount_Success(t *testing.T) {
	body := `{"name":"Main","type":"CHECKING","balance":"1000","isDefault":true}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.CreateAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response["status"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Main", data["name"])
	assert.Equal(t, "CHECKING", data["type"])
	assert.Equal(t, true, data["isDefault"])
	assert.Equal(t, 1, len(mockService.accounts))
}

func TestCreateAccount_InvalidBody(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader("{not json")), "user-1")
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.CreateAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreateAccount_ValidationError(t *testing.T) {
	body := `{"name":"Main","type":"WALLET"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body)), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{createErr: financeErrors.NewValidationError("invalid account type")}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.CreateAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "invalid account type", response["message"])
}

func TestCreateAccount_MissingUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(`{"name":"Main","type":"CASH"}`))
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.CreateAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetUserAccounts_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/accounts", nil), "user-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{
			{ID: "account-1", UserID: "user-1", Name: "Main", Type: domain.AccountTypeChecking},
			{ID: "account-2", UserID: "user-1", Name: "Savings", Type: domain.AccountTypeSavings},
		},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.GetUserAccounts(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)

	data := response["data"].([]interface{})
	assert.Equal(t, 2, len(data))
}

func TestGetAccount_NotFound(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodGet, "/api/accounts/missing", nil), "user-1")
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler := NewAccountHandler(&MockAccountService{}, respondJSON, respondError)
	handler.GetAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "Account not found", response["message"])
}

func TestUpdateAccount_Success(t *testing.T) {
	body := `{"name":"Renamed","type":"SAVINGS"}`
	req := withUserID(httptest.NewRequest(http.MethodPut, "/api/accounts/account-1", strings.NewReader(body)), "user-1")
	req.SetPathValue("id", "account-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{{ID: "account-1", UserID: "user-1", Name: "Main", Type: domain.AccountTypeChecking}},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.UpdateAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var response map[string]interface{}
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", data["name"])
	assert.Equal(t, "SAVINGS", data["type"])
}

func TestDeleteAccount_Success(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/accounts/account-1", nil), "user-1")
	req.SetPathValue("id", "account-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{{ID: "account-1", UserID: "user-1", Name: "Main", Type: domain.AccountTypeChecking}},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.DeleteAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, 0, len(mockService.accounts))
}

func TestDeleteAccount_OtherUser(t *testing.T) {
	req := withUserID(httptest.NewRequest(http.MethodDelete, "/api/accounts/account-1", nil), "user-2")
	req.SetPathValue("id", "account-1")
	w := httptest.NewRecorder()

	mockService := &MockAccountService{
		accounts: []domain.Account{{ID: "account-1", UserID: "user-1", Name: "Main", Type: domain.AccountTypeChecking}},
	}
	handler := NewAccountHandler(mockService, respondJSON, respondError)
	handler.DeleteAccount(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, 1, len(mockService.accounts))
}
