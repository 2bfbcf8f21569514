package domain

import (
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	AccountTypeChecking = "CHECKING"
	AccountTypeSavings  = "SAVINGS"
	AccountTypeCredit   = "CREDIT"
	AccountTypeCash     = "CASH"
)

type AccountRepository interface {
	BeginTransaction() (Tx, error)
	Save(account Account, tx Tx) error
	Update(account Account, tx Tx) error
	UpdateBalance(accountID string, balance decimal.Decimal, tx Tx) error
	ClearDefault(userID string, tx Tx) error
	FindByUser(userID string) ([]Account, error)
	FindByIDAndUser(accountID, userID string) (*Account, error)
	FindByIDAndUserForUpdate(accountID, userID string, tx Tx) (*Account, error)
	Delete(accountID string, tx Tx) error
}

type Account struct {
	ID        string
	UserID    string
	Name      string
	Type      string // CHECKING, SAVINGS, CREDIT or CASH
	Balance   decimal.Decimal
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeCash:
		return true
	}
	return false
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.NewValidationError("Account name must not be empty")
	}
	if len(a.Name) > 100 {
		return errors.NewValidationError("Account name must be of length less than 100")
	}
	if !IsValidAccountType(a.Type) {
		return errors.NewValidationError("Type must be 'CHECKING', 'SAVINGS', 'CREDIT' or 'CASH'")
	}
	return nil
}
