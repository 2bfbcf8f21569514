package infrastructure

import (
	"sort"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

// In-memory repositories backing the service tests.

type MockTx struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTx) Commit() error {
	t.Committed = true
	return nil
}

func (t *MockTx) Rollback() error {
	t.RolledBack = true
	return nil
}

type MockAccountRepository struct {
	Accounts []domain.Account
}

func (m *MockAccountRepository) BeginTransaction() (domain.Tx, error) {
	return &MockTx{}, nil
}

func (m *MockAccountRepository) Save(account domain.Account, _ domain.Tx) error {
	m.Accounts = append(m.Accounts, account)
	return nil
}

func (m *MockAccountRepository) Update(account domain.Account, _ domain.Tx) error {
	for i := range m.Accounts {
		if m.Accounts[i].ID == account.ID {
			m.Accounts[i].Name = account.Name
			m.Accounts[i].Type = account.Type
			m.Accounts[i].IsDefault = account.IsDefault
			return nil
		}
	}
	return financeErrors.ErrAccountNotFound
}

func (m *MockAccountRepository) UpdateBalance(accountID string, balance decimal.Decimal, _ domain.Tx) error {
	for i := range m.Accounts {
		if m.Accounts[i].ID == accountID {
			m.Accounts[i].Balance = balance
			return nil
		}
	}
	return financeErrors.ErrAccountNotFound
}

func (m *MockAccountRepository) ClearDefault(userID string, _ domain.Tx) error {
	for i := range m.Accounts {
		if m.Accounts[i].UserID == userID {
			m.Accounts[i].IsDefault = false
		}
	}
	return nil
}

func (m *MockAccountRepository) FindByUser(userID string) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, account := range m.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) FindByIDAndUser(accountID, userID string) (*domain.Account, error) {
	for _, account := range m.Accounts {
		if account.ID == accountID && account.UserID == userID {
			found := account
			return &found, nil
		}
	}
	return nil, financeErrors.ErrAccountNotFound
}

func (m *MockAccountRepository) FindByIDAndUserForUpdate(accountID, userID string, _ domain.Tx) (*domain.Account, error) {
	return m.FindByIDAndUser(accountID, userID)
}

func (m *MockAccountRepository) Delete(accountID string, _ domain.Tx) error {
	for i := range m.Accounts {
		if m.Accounts[i].ID == accountID {
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrAccountNotFound
}

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	FindErr      error
}

func (m *MockTransactionRepository) BeginTransaction() (domain.Tx, error) {
	return &MockTx{}, nil
}

func (m *MockTransactionRepository) Save(transaction domain.Transaction, _ domain.Tx) error {
	m.Transactions = append(m.Transactions, transaction)
	return nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction, _ domain.Tx) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID string, _ domain.Tx) error {
	for i := range m.Transactions {
		if m.Transactions[i].ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	sortByDateDesc(transactions)
	return transactions, nil
}

func (m *MockTransactionRepository) FindByAccount(accountID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.AccountID == accountID {
			transactions = append(transactions, transaction)
		}
	}
	sortByDateDesc(transactions)
	return transactions, nil
}

func (m *MockTransactionRepository) FindByUserInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID && inRange(transaction.Date, startDate, endDate) {
			transactions = append(transactions, transaction)
		}
	}
	sortByDateDesc(transactions)
	return transactions, nil
}

func (m *MockTransactionRepository) FindExpensesByUserInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	transactions, err := m.FindByUserInDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	var expenses []domain.Transaction
	for _, transaction := range transactions {
		if transaction.Type == domain.TransactionTypeExpense {
			expenses = append(expenses, transaction)
		}
	}
	return expenses, nil
}

type MockBudgetRepository struct {
	Budgets []domain.Budget
}

func (m *MockBudgetRepository) Save(budget domain.Budget) error {
	m.Budgets = append(m.Budgets, budget)
	return nil
}

func (m *MockBudgetRepository) Update(budget domain.Budget) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budget.ID {
			m.Budgets[i].Amount = budget.Amount
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

func (m *MockBudgetRepository) FindByUser(userID string) (*domain.Budget, error) {
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			found := budget
			return &found, nil
		}
	}
	return nil, financeErrors.ErrBudgetNotFound
}

func (m *MockBudgetRepository) FindAll() ([]domain.Budget, error) {
	return append([]domain.Budget{}, m.Budgets...), nil
}

func (m *MockBudgetRepository) DeleteByUser(userID string) error {
	for i := range m.Budgets {
		if m.Budgets[i].UserID == userID {
			m.Budgets = append(m.Budgets[:i], m.Budgets[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

func (m *MockBudgetRepository) UpdateLastAlertSent(budgetID string, sentAt time.Time) error {
	for i := range m.Budgets {
		if m.Budgets[i].ID == budgetID {
			at := sentAt
			m.Budgets[i].LastAlertSent = &at
			return nil
		}
	}
	return financeErrors.ErrBudgetNotFound
}

func sortByDateDesc(transactions []domain.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}

func inRange(date, startDate, endDate time.Time) bool {
	return !date.Before(startDate) && !date.After(endDate)
}
