package application

import (
	"log"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// BudgetAlertService runs the monthly batch pass over all budgets: it sums
// the previous calendar month's expenses of each owner and, when the sum
// exceeds the threshold, records the alert timestamp. No notification is
// delivered; a failed budget is logged and skipped.
type BudgetAlertService struct {
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository
	now             func() time.Time
}

func NewBudgetAlertService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionRepository) *BudgetAlertService {
	return &BudgetAlertService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

func (s *BudgetAlertService) SendMonthlyBudgetAlerts() {
	log.Println("Starting monthly budget alert job")

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousMonthStart := startOfMonth.AddDate(0, -1, 0)

	budgets, err := s.budgetRepo.FindAll()
	if err != nil {
		log.Printf("Error loading budgets for alert job: %v", err)
		return
	}

	for _, budget := range budgets {
		expenses, err := s.transactionRepo.FindExpensesByUserInDateRange(budget.UserID, previousMonthStart, startOfMonth)
		if err != nil {
			log.Printf("Error processing budget alert for user %s: %v", budget.UserID, err)
			continue
		}

		totalSpent := decimal.Zero
		for _, expense := range expenses {
			totalSpent = totalSpent.Add(expense.Amount)
		}

		if totalSpent.GreaterThan(budget.Amount) {
			log.Printf("Budget exceeded for user %s: spent %s vs budget %s", budget.UserID, totalSpent, budget.Amount)
			if err := s.budgetRepo.UpdateLastAlertSent(budget.ID, now); err != nil {
				log.Printf("Error processing budget alert for user %s: %v", budget.UserID, err)
			}
		}
	}

	log.Println("Completed monthly budget alert job")
}
