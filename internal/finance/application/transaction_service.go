package application

import (
	"log"
	"time"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/google/uuid"
)

// TransactionService orchestrates transaction mutations together with the
// balance adjustment on the owning account. Every mutating operation runs
// as one store transaction: the transaction row and the account balance
// commit together or not at all.
type TransactionService struct {
	repo        domain.TransactionRepository
	accountRepo domain.AccountRepository
}

func NewTransactionService(repo domain.TransactionRepository, accountRepo domain.AccountRepository) *TransactionService {
	return &TransactionService{repo: repo, accountRepo: accountRepo}
}

func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) (err error) {
	transaction.ID = uuid.NewString()
	if transaction.Status == "" {
		transaction.Status = domain.TransactionStatusCompleted
	}
	if transaction.Date.IsZero() {
		transaction.Date = time.Now()
	}
	if err := transaction.Validate(); err != nil {
		return err
	}

	tx, err := s.repo.BeginTransaction()
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			safeRollback(tx)
			panic(p)
		} else if err != nil {
			safeRollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	account, err := s.accountRepo.FindByIDAndUserForUpdate(transaction.AccountID, transaction.UserID, tx)
	if err != nil {
		return err
	}

	if err = s.repo.Save(*transaction, tx); err != nil {
		return err
	}

	newBalance := applyTransactionEffect(account.Balance, *transaction)
	if !newBalance.Equal(account.Balance) {
		err = s.accountRepo.UpdateBalance(account.ID, newBalance, tx)
	}
	return err
}

func (s *TransactionService) GetUserTransactions(userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetAccountTransactions(accountID, userID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindByIDAndUser(accountID, userID); err != nil {
		return nil, err
	}
	transactions, err := s.repo.FindByAccount(accountID)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionByID(transactionID, userID string) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, financeErrors.ErrTransactionAccessDenied
	}
	return transaction, nil
}

// UpdateTransaction replaces the mutable fields of an owned transaction and
// reconciles the account balance by reverting the old effect before applying
// the new one. The order matters: doing it the other way round (or skipping
// the revert) double-counts the transaction.
func (s *TransactionService) UpdateTransaction(transactionID, userID string, updated domain.Transaction) (transaction *domain.Transaction, err error) {
	transaction, err = s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, financeErrors.ErrTransactionAccessDenied
	}

	oldType := transaction.Type
	oldAmount := transaction.Amount

	transaction.Type = updated.Type
	transaction.Amount = updated.Amount
	transaction.Description = updated.Description
	transaction.Date = updated.Date
	transaction.Category = updated.Category
	transaction.ReceiptURL = updated.ReceiptURL
	transaction.IsRecurring = updated.IsRecurring
	transaction.RecurringInterval = updated.RecurringInterval
	transaction.Status = updated.Status
	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTransaction()
	if err != nil {
		return nil, err
	}
	defer func() {
		if p := recover(); p != nil {
			safeRollback(tx)
			panic(p)
		} else if err != nil {
			safeRollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	account, err := s.accountRepo.FindByIDAndUserForUpdate(transaction.AccountID, userID, tx)
	if err != nil {
		return nil, err
	}

	if err = s.repo.Update(*transaction, tx); err != nil {
		return nil, err
	}

	balance := revertTransactionEffect(account.Balance, oldType, oldAmount)
	balance = applyTransactionEffect(balance, *transaction)
	if err = s.accountRepo.UpdateBalance(account.ID, balance, tx); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(transactionID, userID string) (err error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return err
	}
	if transaction.UserID != userID {
		return financeErrors.ErrTransactionAccessDenied
	}

	tx, err := s.repo.BeginTransaction()
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			safeRollback(tx)
			panic(p)
		} else if err != nil {
			safeRollback(tx)
		} else {
			err = tx.Commit()
		}
	}()

	account, err := s.accountRepo.FindByIDAndUserForUpdate(transaction.AccountID, userID, tx)
	if err != nil {
		return err
	}

	balance := revertTransactionEffect(account.Balance, transaction.Type, transaction.Amount)
	if err = s.accountRepo.UpdateBalance(account.ID, balance, tx); err != nil {
		return err
	}
	return s.repo.Delete(transactionID, tx)
}

func safeRollback(tx domain.Tx) {
	if err := tx.Rollback(); err != nil {
		log.Printf("Error during transaction rollback: %v", err)
	}
}
