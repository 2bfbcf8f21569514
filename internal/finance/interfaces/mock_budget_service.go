package interfaces

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type MockBudgetService struct {
	budget    *domain.Budget
	createErr error
}

func (m *MockBudgetService) CreateOrUpdateBudget(userID string, amount decimal.Decimal) (*domain.Budget, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.budget == nil {
		m.budget = &domain.Budget{ID: "budget-1", UserID: userID, Amount: amount}
	} else {
		m.budget.Amount = amount
	}
	found := *m.budget
	return &found, nil
}

func (m *MockBudgetService) GetBudget(userID string) (*domain.Budget, error) {
	if m.budget == nil || m.budget.UserID != userID {
		return nil, financeErrors.ErrBudgetNotFound
	}
	found := *m.budget
	return &found, nil
}

func (m *MockBudgetService) DeleteBudget(userID string) error {
	if m.budget == nil || m.budget.UserID != userID {
		return financeErrors.ErrBudgetNotFound
	}
	m.budget = nil
	return nil
}
