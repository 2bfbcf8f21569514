package application

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService struct {
	repo domain.BudgetRepository
}

func NewBudgetService(repo domain.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// CreateOrUpdateBudget upserts the single budget of a user: a new amount on
// an existing budget replaces the old threshold.
func (s *BudgetService) CreateOrUpdateBudget(userID string, amount decimal.Decimal) (*domain.Budget, error) {
	budget := domain.Budget{UserID: userID, Amount: amount}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUser(userID)
	if err != nil {
		if !financeErrors.IsNotFoundError(err) {
			return nil, err
		}
		budget.ID = uuid.NewString()
		if err := s.repo.Save(budget); err != nil {
			return nil, err
		}
		return &budget, nil
	}

	existing.Amount = amount
	if err := s.repo.Update(*existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *BudgetService) GetBudget(userID string) (*domain.Budget, error) {
	return s.repo.FindByUser(userID)
}

func (s *BudgetService) DeleteBudget(userID string) error {
	if _, err := s.repo.FindByUser(userID); err != nil {
		return err
	}
	return s.repo.DeleteByUser(userID)
}
