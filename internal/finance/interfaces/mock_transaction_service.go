package interfaces

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	createErr    error
	shouldFail   bool
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	transaction.ID = "transaction-1"
	if transaction.Status == "" {
		transaction.Status = domain.TransactionStatusCompleted
	}
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, financeErrors.NewExternalServiceError("transactions", nil)
	}
	result := make([]domain.Transaction, 0)
	for _, transaction := range m.transactions {
		if transaction.UserID == userID {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (m *MockTransactionService) GetAccountTransactions(accountID, userID string) ([]domain.Transaction, error) {
	result := make([]domain.Transaction, 0)
	for _, transaction := range m.transactions {
		if transaction.AccountID == accountID && transaction.UserID == userID {
			result = append(result, transaction)
		}
	}
	return result, nil
}

func (m *MockTransactionService) GetTransactionByID(transactionID, userID string) (*domain.Transaction, error) {
	for _, transaction := range m.transactions {
		if transaction.ID == transactionID {
			if transaction.UserID != userID {
				return nil, financeErrors.ErrTransactionAccessDenied
			}
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) UpdateTransaction(transactionID, userID string, updated domain.Transaction) (*domain.Transaction, error) {
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			if m.transactions[i].UserID != userID {
				return nil, financeErrors.ErrTransactionAccessDenied
			}
			updated.ID = transactionID
			updated.UserID = userID
			m.transactions[i] = updated
			found := m.transactions[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(transactionID, userID string) error {
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			if m.transactions[i].UserID != userID {
				return financeErrors.ErrTransactionAccessDenied
			}
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
