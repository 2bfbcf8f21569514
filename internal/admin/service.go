package admin

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Read-through listings over the whole dataset. These bypass the per-user
// repositories on purpose: an admin sees every row.

type UserListing struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AccountListing struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Balance    decimal.Decimal `json:"balance"`
	IsDefault  bool            `json:"isDefault"`
	OwnerID    string          `json:"ownerId"`
	OwnerEmail string          `json:"ownerEmail"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type TransactionListing struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	OwnerID     string          `json:"ownerId"`
	OwnerEmail  string          `json:"ownerEmail"`
	AccountID   string          `json:"accountId"`
	AccountName string          `json:"accountName"`
}

type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListUsers() ([]UserListing, error) {
	query := `
		SELECT id, name, email, role, created_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %v", err)
	}
	defer rows.Close()

	users := make([]UserListing, 0)
	for rows.Next() {
		var listing UserListing
		if err := rows.Scan(&listing.ID, &listing.Name, &listing.Email, &listing.Role, &listing.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan user: %v", err)
		}
		users = append(users, listing)
	}
	return users, rows.Err()
}

func (s *Service) ListAccounts() ([]AccountListing, error) {
	query := `
		SELECT a.id, a.name, a.type, a.balance, a.is_default, a.user_id, u.email, a.created_at
		FROM accounts a
		JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %v", err)
	}
	defer rows.Close()

	accounts := make([]AccountListing, 0)
	for rows.Next() {
		var listing AccountListing
		if err := rows.Scan(&listing.ID, &listing.Name, &listing.Type, &listing.Balance, &listing.IsDefault, &listing.OwnerID, &listing.OwnerEmail, &listing.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan account: %v", err)
		}
		accounts = append(accounts, listing)
	}
	return accounts, rows.Err()
}

func (s *Service) ListTransactions() ([]TransactionListing, error) {
	query := `
		SELECT t.id, t.type, t.amount, t.category, t.description, t.date, t.status,
		       t.user_id, u.email, t.account_id, a.name
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		JOIN accounts a ON a.id = t.account_id
		ORDER BY t.date DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %v", err)
	}
	defer rows.Close()

	transactions := make([]TransactionListing, 0)
	for rows.Next() {
		var listing TransactionListing
		if err := rows.Scan(&listing.ID, &listing.Type, &listing.Amount, &listing.Category, &listing.Description, &listing.Date, &listing.Status,
			&listing.OwnerID, &listing.OwnerEmail, &listing.AccountID, &listing.AccountName); err != nil {
			return nil, fmt.Errorf("could not scan transaction: %v", err)
		}
		transactions = append(transactions, listing)
	}
	return transactions, rows.Err()
}
