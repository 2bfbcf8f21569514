package application

import (
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

const recentTransactionLimit = 10

type DashboardSummary struct {
	TotalBalance       decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpense     decimal.Decimal
	BudgetAmount       *decimal.Decimal
	BudgetSpent        *decimal.Decimal
	Accounts           []domain.Account
	RecentTransactions []domain.Transaction
	ExpensesByCategory map[string]decimal.Decimal
}

// DashboardService derives the summary view from the current state of the
// store. Nothing is persisted; every call recomputes from scratch.
type DashboardService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	budgetRepo      domain.BudgetRepository
	now             func() time.Time
}

func NewDashboardService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository, budgetRepo domain.BudgetRepository) *DashboardService {
	return &DashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		now:             time.Now,
	}
}

func (s *DashboardService) GetDashboardSummary(userID string) (*DashboardSummary, error) {
	accounts, err := s.accountRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	totalBalance := decimal.Zero
	for _, account := range accounts {
		totalBalance = totalBalance.Add(account.Balance)
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	monthlyTransactions, err := s.transactionRepo.FindByUserInDateRange(userID, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	monthlyIncome := decimal.Zero
	monthlyExpense := decimal.Zero
	expensesByCategory := make(map[string]decimal.Decimal)
	for _, transaction := range monthlyTransactions {
		switch transaction.Type {
		case domain.TransactionTypeIncome:
			monthlyIncome = monthlyIncome.Add(transaction.Amount)
		case domain.TransactionTypeExpense:
			monthlyExpense = monthlyExpense.Add(transaction.Amount)
			expensesByCategory[transaction.Category] = expensesByCategory[transaction.Category].Add(transaction.Amount)
		}
	}

	summary := &DashboardSummary{
		TotalBalance:       totalBalance,
		MonthlyIncome:      monthlyIncome,
		MonthlyExpense:     monthlyExpense,
		Accounts:           accounts,
		ExpensesByCategory: expensesByCategory,
	}

	budget, err := s.budgetRepo.FindByUser(userID)
	if err != nil {
		if !financeErrors.IsNotFoundError(err) {
			return nil, err
		}
	} else {
		summary.BudgetAmount = &budget.Amount
		spent := monthlyExpense
		summary.BudgetSpent = &spent
	}

	recent, err := s.transactionRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}
	if recent == nil {
		recent = []domain.Transaction{}
	}
	summary.RecentTransactions = recent

	return summary, nil
}
