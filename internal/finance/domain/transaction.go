package domain

import (
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

const (
	RecurringIntervalDaily   = "DAILY"
	RecurringIntervalWeekly  = "WEEKLY"
	RecurringIntervalMonthly = "MONTHLY"
	RecurringIntervalYearly  = "YEARLY"
)

type TransactionRepository interface {
	BeginTransaction() (Tx, error)
	Save(transaction Transaction, tx Tx) error
	Update(transaction Transaction, tx Tx) error
	Delete(transactionID string, tx Tx) error
	FindByID(transactionID string) (*Transaction, error)
	FindByUser(userID string) ([]Transaction, error)
	FindByAccount(accountID string) ([]Transaction, error)
	FindByUserInDateRange(userID string, startDate, endDate time.Time) ([]Transaction, error)
	FindExpensesByUserInDateRange(userID string, startDate, endDate time.Time) ([]Transaction, error)
}

type Transaction struct {
	ID                string
	UserID            string // owner resolved from the authenticated identity
	AccountID         string
	Type              string // "INCOME" or "EXPENSE"
	Amount            decimal.Decimal
	Description       string
	Date              time.Time
	Category          string
	ReceiptURL        string
	IsRecurring       bool
	RecurringInterval string // DAILY, WEEKLY, MONTHLY or YEARLY
	NextRecurringDate *time.Time
	Status            string // PENDING, COMPLETED or FAILED
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}

func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	}
	return false
}

func IsValidRecurringInterval(interval string) bool {
	switch interval {
	case RecurringIntervalDaily, RecurringIntervalWeekly, RecurringIntervalMonthly, RecurringIntervalYearly:
		return true
	}
	return false
}

func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return errors.NewValidationError("Type must be 'INCOME' or 'EXPENSE'")
	}
	// The sign is carried by the type, amounts are stored unsigned.
	if t.Amount.IsNegative() {
		return errors.NewValidationError("Amount must not be negative")
	}
	if !IsValidTransactionStatus(t.Status) {
		return errors.NewValidationError("Status must be 'PENDING', 'COMPLETED' or 'FAILED'")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	if t.Category == "" {
		return errors.NewValidationError("Category must not be empty")
	}
	if t.IsRecurring && !IsValidRecurringInterval(t.RecurringInterval) {
		return errors.NewValidationError("Recurring interval must be 'DAILY', 'WEEKLY', 'MONTHLY' or 'YEARLY'")
	}
	return nil
}
