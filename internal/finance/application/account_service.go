package application

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/google/uuid"
)

type AccountService struct {
	repo domain.AccountRepository
}

func NewAccountService(repo domain.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount persists a new account. When the account is flagged as the
// default one, the previous default of the same user loses the flag in the
// same store transaction, so a user never holds two defaults.
func (s *AccountService) CreateAccount(account *domain.Account) (err error) {
	account.ID = uuid.NewString()
	if err := account.Validate(); err != nil {
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

	if account.IsDefault {
		if err = s.repo.ClearDefault(account.UserID, tx); err != nil {
			return err
		}
	}
	return s.repo.Save(*account, tx)
}

func (s *AccountService) GetUserAccounts(userID string) ([]domain.Account, error) {
	accounts, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *AccountService) GetAccountByID(accountID, userID string) (*domain.Account, error) {
	return s.repo.FindByIDAndUser(accountID, userID)
}

func (s *AccountService) UpdateAccount(accountID, userID string, name, accountType string, isDefault *bool) (account *domain.Account, err error) {
	account, err = s.repo.FindByIDAndUser(accountID, userID)
	if err != nil {
		return nil, err
	}

	account.Name = name
	account.Type = accountType
	makeDefault := isDefault != nil && *isDefault && !account.IsDefault
	if err := account.Validate(); err != nil {
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

	if makeDefault {
		if err = s.repo.ClearDefault(userID, tx); err != nil {
			return nil, err
		}
		account.IsDefault = true
	}
	if err = s.repo.Update(*account, tx); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) DeleteAccount(accountID, userID string) error {
	if _, err := s.repo.FindByIDAndUser(accountID, userID); err != nil {
		return err
	}
	return s.repo.Delete(accountID, nil)
}
