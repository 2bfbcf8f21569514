package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

const transactionColumns = `id, user_id, account_id, type, amount, description, date, category,
       receipt_url, is_recurring, recurring_interval, next_recurring_date, status, created_at, updated_at`

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) conn(tx domain.Tx) dbtx {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return sqlTx
	}
	return r.db
}

func (r *TransactionRepository) BeginTransaction() (domain.Tx, error) {
	return r.db.Begin()
}

func (r *TransactionRepository) Save(transaction domain.Transaction, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`INSERT INTO transactions
         (id, user_id, account_id, type, amount, description, date, category, receipt_url,
          is_recurring, recurring_interval, next_recurring_date, status, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`,
		transaction.ID, transaction.UserID, transaction.AccountID, transaction.Type, transaction.Amount,
		transaction.Description, transaction.Date, transaction.Category, transaction.ReceiptURL,
		transaction.IsRecurring, nullString(transaction.RecurringInterval), transaction.NextRecurringDate,
		transaction.Status,
	)
	return err
}

func (r *TransactionRepository) Update(transaction domain.Transaction, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`UPDATE transactions
         SET type = $1, amount = $2, description = $3, date = $4, category = $5, receipt_url = $6,
             is_recurring = $7, recurring_interval = $8, next_recurring_date = $9, status = $10,
             updated_at = NOW()
         WHERE id = $11`,
		transaction.Type, transaction.Amount, transaction.Description, transaction.Date,
		transaction.Category, transaction.ReceiptURL, transaction.IsRecurring,
		nullString(transaction.RecurringInterval), transaction.NextRecurringDate, transaction.Status,
		transaction.ID,
	)
	return err
}

func (r *TransactionRepository) Delete(transactionID string, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}

func (r *TransactionRepository) FindByID(transactionID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`,
		transactionID,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %v", err)
	}
	return transaction, nil
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
}

func (r *TransactionRepository) FindByAccount(accountID string) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions WHERE account_id = $1 ORDER BY date DESC`,
		accountID,
	)
}

func (r *TransactionRepository) FindByUserInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date DESC`,
		userID, startDate, endDate,
	)
}

func (r *TransactionRepository) FindExpensesByUserInDateRange(userID string, startDate, endDate time.Time) ([]domain.Transaction, error) {
	return r.queryTransactions(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 AND type = 'EXPENSE' AND date BETWEEN $2 AND $3 ORDER BY date DESC`,
		userID, startDate, endDate,
	)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var recurringInterval sql.NullString
	err := row.Scan(&transaction.ID, &transaction.UserID, &transaction.AccountID, &transaction.Type,
		&transaction.Amount, &transaction.Description, &transaction.Date, &transaction.Category,
		&transaction.ReceiptURL, &transaction.IsRecurring, &recurringInterval,
		&transaction.NextRecurringDate, &transaction.Status, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	transaction.RecurringInterval = recurringInterval.String
	return &transaction, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
