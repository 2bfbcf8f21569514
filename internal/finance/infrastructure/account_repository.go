package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/shopspring/decimal"
)

type dbtx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) conn(tx domain.Tx) dbtx {
	if sqlTx, ok := tx.(*sql.Tx); ok {
		return sqlTx
	}
	return r.db
}

func (r *AccountRepository) BeginTransaction() (domain.Tx, error) {
	return r.db.Begin()
}

func (r *AccountRepository) Save(account domain.Account, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`INSERT INTO accounts (id, user_id, name, type, balance, is_default, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`,
		account.ID, account.UserID, account.Name, account.Type, account.Balance, account.IsDefault,
	)
	return err
}

func (r *AccountRepository) Update(account domain.Account, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`UPDATE accounts SET name = $1, type = $2, is_default = $3, updated_at = NOW() WHERE id = $4`,
		account.Name, account.Type, account.IsDefault, account.ID,
	)
	return err
}

func (r *AccountRepository) UpdateBalance(accountID string, balance decimal.Decimal, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`UPDATE accounts SET balance = $1, updated_at = NOW() WHERE id = $2`,
		balance, accountID,
	)
	return err
}

// ClearDefault unsets the default flag on whichever sibling account holds it.
func (r *AccountRepository) ClearDefault(userID string, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(
		`UPDATE accounts SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default = TRUE`,
		userID,
	)
	return err
}

func (r *AccountRepository) FindByUser(userID string) ([]domain.Account, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name, type, balance, is_default, created_at, updated_at
         FROM accounts WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.UserID, &account.Name, &account.Type,
			&account.Balance, &account.IsDefault, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) FindByIDAndUser(accountID, userID string) (*domain.Account, error) {
	return r.findByIDAndUser(r.db, accountID, userID, "")
}

// FindByIDAndUserForUpdate locks the account row for the lifetime of tx so
// that concurrent balance adjustments against the same account serialize.
func (r *AccountRepository) FindByIDAndUserForUpdate(accountID, userID string, tx domain.Tx) (*domain.Account, error) {
	return r.findByIDAndUser(r.conn(tx), accountID, userID, " FOR UPDATE")
}

func (r *AccountRepository) findByIDAndUser(q dbtx, accountID, userID, suffix string) (*domain.Account, error) {
	query := `SELECT id, user_id, name, type, balance, is_default, created_at, updated_at
              FROM accounts WHERE id = $1 AND user_id = $2` + suffix

	var account domain.Account
	err := q.QueryRow(query, accountID, userID).Scan(&account.ID, &account.UserID, &account.Name,
		&account.Type, &account.Balance, &account.IsDefault, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not find account: %v", err)
	}
	return &account, nil
}

func (r *AccountRepository) Delete(accountID string, tx domain.Tx) error {
	_, err := r.conn(tx).Exec(`DELETE FROM accounts WHERE id = $1`, accountID)
	return err
}
