package domain

import (
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type BudgetRepository interface {
	Save(budget Budget) error
	Update(budget Budget) error
	FindByUser(userID string) (*Budget, error)
	FindAll() ([]Budget, error)
	DeleteByUser(userID string) error
	UpdateLastAlertSent(budgetID string, sentAt time.Time) error
}

// Budget is the single monthly spending threshold of a user.
type Budget struct {
	ID            string
	UserID        string
	Amount        decimal.Decimal
	LastAlertSent *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b *Budget) Validate() error {
	if b.Amount.IsNegative() {
		return errors.NewValidationError("Budget amount must not be negative")
	}
	return nil
}
