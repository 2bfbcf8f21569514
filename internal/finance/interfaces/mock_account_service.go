package interfaces

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

type MockAccountService struct {
	accounts   []domain.Account
	createErr  error
	shouldFail bool
}

func (m *MockAccountService) CreateAccount(account *domain.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	account.ID = "account-1"
	m.accounts = append(m.accounts, *account)
	return nil
}

func (m *MockAccountService) GetUserAccounts(userID string) ([]domain.Account, error) {
	if m.shouldFail {
		return nil, financeErrors.NewExternalServiceError("accounts", nil)
	}
	return m.accounts, nil
}

func (m *MockAccountService) GetAccountByID(accountID, userID string) (*domain.Account, error) {
	for _, account := range m.accounts {
		if account.ID == accountID && account.UserID == userID {
			found := account
			return &found, nil
		}
	}
	return nil, financeErrors.ErrAccountNotFound
}

func (m *MockAccountService) UpdateAccount(accountID, userID, name, accountType string, isDefault *bool) (*domain.Account, error) {
	for i := range m.accounts {
		if m.accounts[i].ID == accountID && m.accounts[i].UserID == userID {
			m.accounts[i].Name = name
			m.accounts[i].Type = accountType
			if isDefault != nil {
				m.accounts[i].IsDefault = *isDefault
			}
			found := m.accounts[i]
			return &found, nil
		}
	}
	return nil, financeErrors.ErrAccountNotFound
}

func (m *MockAccountService) DeleteAccount(accountID, userID string) error {
	for i := range m.accounts {
		if m.accounts[i].ID == accountID && m.accounts[i].UserID == userID {
			m.accounts = append(m.accounts[:i], m.accounts[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrAccountNotFound
}
