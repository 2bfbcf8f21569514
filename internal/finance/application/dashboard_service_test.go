package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/infrastructure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboardSummary_MonthlySumsAndCategories(t *testing.T) {
	now := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

	accountRepo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{
			{ID: "acc-1", UserID: "user-1", Name: "Checking", Type: domain.AccountTypeChecking, Balance: decimal.NewFromInt(1200)},
			{ID: "acc-2", UserID: "user-1", Name: "Savings", Type: domain.AccountTypeSavings, Balance: decimal.NewFromInt(800)},
			{ID: "acc-3", UserID: "user-2", Name: "Other", Type: domain.AccountTypeChecking, Balance: decimal.NewFromInt(9999)},
		},
	}
	transactionRepo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", UserID: "user-1", AccountID: "acc-1", Type: domain.TransactionTypeIncome, Amount: decimal.NewFromInt(500), Category: "Salary", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "t2", UserID: "user-1", AccountID: "acc-1", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(120), Category: "Groceries", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)},
			{ID: "t3", UserID: "user-1", AccountID: "acc-1", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(80), Category: "Groceries", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "t4", UserID: "user-1", AccountID: "acc-1", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(60), Category: "Transport", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)},
			// previous month, must not count towards the monthly sums
			{ID: "t5", UserID: "user-1", AccountID: "acc-1", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(300), Category: "Rent", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.April, 28, 0, 0, 0, 0, time.UTC)},
			// other user's transaction
			{ID: "t6", UserID: "user-2", AccountID: "acc-3", Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(700), Category: "Travel", Status: domain.TransactionStatusCompleted, Date: time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)},
		},
	}
	budgetRepo := &infrastructure.MockBudgetRepository{
		Budgets: []domain.Budget{
			{ID: "b1", UserID: "user-1", Amount: decimal.NewFromInt(1000)},
		},
	}

	service := NewDashboardService(accountRepo, transactionRepo, budgetRepo)
	service.now = func() time.Time { return now }

	summary, err := service.GetDashboardSummary("user-1")

	assert.NoError(t, err)
	assert.Equal(t, "2000", summary.TotalBalance.String())
	assert.Equal(t, "500", summary.MonthlyIncome.String())
	assert.Equal(t, "260", summary.MonthlyExpense.String())

	assert.Len(t, summary.ExpensesByCategory, 2)
	assert.Equal(t, "200", summary.ExpensesByCategory["Groceries"].String())
	assert.Equal(t, "60", summary.ExpensesByCategory["Transport"].String())
	_, hasRent := summary.ExpensesByCategory["Rent"]
	assert.False(t, hasRent, "previous month's category must be absent")

	assert.NotNil(t, summary.BudgetAmount)
	assert.Equal(t, "1000", summary.BudgetAmount.String())
	assert.Equal(t, "260", summary.BudgetSpent.String())
	assert.Len(t, summary.Accounts, 2)
}

func TestGetDashboardSummary_RecentTransactionsLimitedToTen(t *testing.T) {
	accountRepo := &infrastructure.MockAccountRepository{}
	transactionRepo := &infrastructure.MockTransactionRepository{}
	base := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		transactionRepo.Transactions = append(transactionRepo.Transactions, domain.Transaction{
			ID:        fmt.Sprintf("t%d", i),
			UserID:    "user-1",
			AccountID: "acc-1",
			Type:      domain.TransactionTypeExpense,
			Amount:    decimal.NewFromInt(int64(i + 1)),
			Category:  "Misc",
			Status:    domain.TransactionStatusCompleted,
			Date:      base.AddDate(0, 0, i),
		})
	}
	budgetRepo := &infrastructure.MockBudgetRepository{}

	service := NewDashboardService(accountRepo, transactionRepo, budgetRepo)
	service.now = func() time.Time { return base.AddDate(0, 0, 20) }

	summary, err := service.GetDashboardSummary("user-1")

	assert.NoError(t, err)
	assert.Len(t, summary.RecentTransactions, 10)
	// most recent first
	assert.Equal(t, "t14", summary.RecentTransactions[0].ID)
	assert.Equal(t, "t5", summary.RecentTransactions[9].ID)
}

func TestGetDashboardSummary_NoBudgetNoAccounts(t *testing.T) {
	service := NewDashboardService(
		&infrastructure.MockAccountRepository{},
		&infrastructure.MockTransactionRepository{},
		&infrastructure.MockBudgetRepository{},
	)

	summary, err := service.GetDashboardSummary("user-1")

	assert.NoError(t, err)
	assert.Equal(t, "0", summary.TotalBalance.String())
	assert.Nil(t, summary.BudgetAmount)
	assert.Nil(t, summary.BudgetSpent)
	assert.Empty(t, summary.Accounts)
	assert.Empty(t, summary.RecentTransactions)
	assert.Empty(t, summary.ExpensesByCategory)
}
