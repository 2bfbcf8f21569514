package interfaces

import (
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/application"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// Transport shapes are kept apart from the domain entities; the conversion
// happens only through the mapping functions below.

type accountRequest struct {
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Balance   *decimal.Decimal `json:"balance"`
	IsDefault *bool            `json:"isDefault"`
}

type accountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	IsDefault bool            `json:"isDefault"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func (req accountRequest) toDomain(userID string) domain.Account {
	account := domain.Account{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: decimal.Zero,
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.IsDefault != nil {
		account.IsDefault = *req.IsDefault
	}
	return account
}

func toAccountResponse(account domain.Account) accountResponse {
	return accountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Type:      account.Type,
		Balance:   account.Balance,
		IsDefault: account.IsDefault,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func toAccountResponses(accounts []domain.Account) []accountResponse {
	responses := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}
	return responses
}

type transactionRequest struct {
	AccountID         string          `json:"accountId"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Date              time.Time       `json:"date"`
	Category          string          `json:"category"`
	ReceiptURL        string          `json:"receiptUrl"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurringInterval string          `json:"recurringInterval"`
	Status            string          `json:"status"`
}

type transactionResponse struct {
	ID                string          `json:"id"`
	AccountID         string          `json:"accountId"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Date              time.Time       `json:"date"`
	Category          string          `json:"category"`
	ReceiptURL        string          `json:"receiptUrl,omitempty"`
	IsRecurring       bool            `json:"isRecurring"`
	RecurringInterval string          `json:"recurringInterval,omitempty"`
	NextRecurringDate *time.Time      `json:"nextRecurringDate,omitempty"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (req transactionRequest) toDomain(userID string) domain.Transaction {
	return domain.Transaction{
		UserID:            userID,
		AccountID:         req.AccountID,
		Type:              req.Type,
		Amount:            req.Amount,
		Description:       req.Description,
		Date:              req.Date,
		Category:          req.Category,
		ReceiptURL:        req.ReceiptURL,
		IsRecurring:       req.IsRecurring,
		RecurringInterval: req.RecurringInterval,
		Status:            req.Status,
	}
}

func toTransactionResponse(transaction domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:                transaction.ID,
		AccountID:         transaction.AccountID,
		Type:              transaction.Type,
		Amount:            transaction.Amount,
		Description:       transaction.Description,
		Date:              transaction.Date,
		Category:          transaction.Category,
		ReceiptURL:        transaction.ReceiptURL,
		IsRecurring:       transaction.IsRecurring,
		RecurringInterval: transaction.RecurringInterval,
		NextRecurringDate: transaction.NextRecurringDate,
		Status:            transaction.Status,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}
}

func toTransactionResponses(transactions []domain.Transaction) []transactionResponse {
	responses := make([]transactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, toTransactionResponse(transaction))
	}
	return responses
}

type budgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type budgetResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	LastAlertSent *time.Time      `json:"lastAlertSent,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func toBudgetResponse(budget domain.Budget) budgetResponse {
	return budgetResponse{
		ID:            budget.ID,
		Amount:        budget.Amount,
		LastAlertSent: budget.LastAlertSent,
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
	}
}

type dashboardResponse struct {
	TotalBalance       decimal.Decimal            `json:"totalBalance"`
	MonthlyIncome      decimal.Decimal            `json:"monthlyIncome"`
	MonthlyExpense     decimal.Decimal            `json:"monthlyExpense"`
	BudgetAmount       *decimal.Decimal           `json:"budgetAmount,omitempty"`
	BudgetSpent        *decimal.Decimal           `json:"budgetSpent,omitempty"`
	Accounts           []accountResponse          `json:"accounts"`
	RecentTransactions []transactionResponse      `json:"recentTransactions"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
}

func toDashboardResponse(summary application.DashboardSummary) dashboardResponse {
	return dashboardResponse{
		TotalBalance:       summary.TotalBalance,
		MonthlyIncome:      summary.MonthlyIncome,
		MonthlyExpense:     summary.MonthlyExpense,
		BudgetAmount:       summary.BudgetAmount,
		BudgetSpent:        summary.BudgetSpent,
		Accounts:           toAccountResponses(summary.Accounts),
		RecentTransactions: toTransactionResponses(summary.RecentTransactions),
		ExpensesByCategory: summary.ExpensesByCategory,
	}
}
