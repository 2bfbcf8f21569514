package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

type BudgetRepository struct {
	db *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Save(budget domain.Budget) error {
	_, err := r.db.Exec(
		`INSERT INTO budgets (id, user_id, amount, last_alert_sent, created_at, updated_at)
         VALUES ($1, $2, $3, $4, NOW(), NOW())`,
		budget.ID, budget.UserID, budget.Amount, budget.LastAlertSent,
	)
	return err
}

func (r *BudgetRepository) Update(budget domain.Budget) error {
	_, err := r.db.Exec(
		`UPDATE budgets SET amount = $1, updated_at = NOW() WHERE id = $2`,
		budget.Amount, budget.ID,
	)
	return err
}

func (r *BudgetRepository) FindByUser(userID string) (*domain.Budget, error) {
	var budget domain.Budget
	err := r.db.QueryRow(
		`SELECT id, user_id, amount, last_alert_sent, created_at, updated_at
         FROM budgets WHERE user_id = $1`,
		userID,
	).Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.LastAlertSent,
		&budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrBudgetNotFound
		}
		return nil, fmt.Errorf("could not find budget: %v", err)
	}
	return &budget, nil
}

func (r *BudgetRepository) FindAll() ([]domain.Budget, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, amount, last_alert_sent, created_at, updated_at FROM budgets`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.LastAlertSent,
			&budget.CreatedAt, &budget.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *BudgetRepository) DeleteByUser(userID string) error {
	_, err := r.db.Exec(`DELETE FROM budgets WHERE user_id = $1`, userID)
	return err
}

func (r *BudgetRepository) UpdateLastAlertSent(budgetID string, sentAt time.Time) error {
	_, err := r.db.Exec(
		`UPDATE budgets SET last_alert_sent = $1, updated_at = NOW() WHERE id = $2`,
		sentAt, budgetID,
	)
	return err
}
