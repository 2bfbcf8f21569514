package application

import (
	"testing"

	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
	"github.com/Pateriya27/Paisa-Ai/internal/finance/infrastructure"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func countDefaults(accounts []domain.Account, userID string) int {
	count := 0
	for _, account := range accounts {
		if account.UserID == userID && account.IsDefault {
			count++
		}
	}
	return count
}

func TestCreateAccount_SingleDefaultPerUser(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	first := domain.Account{UserID: "user-1", Name: "Checking", Type: domain.AccountTypeChecking, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&first))

	second := domain.Account{UserID: "user-1", Name: "Savings", Type: domain.AccountTypeSavings, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&second))

	assert.Equal(t, 1, countDefaults(repo.Accounts, "user-1"))
	assert.False(t, repo.Accounts[0].IsDefault)
	assert.True(t, repo.Accounts[1].IsDefault)
}

func TestCreateAccount_DefaultsOfOtherUsersUntouched(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	other := domain.Account{UserID: "user-2", Name: "Checking", Type: domain.AccountTypeChecking, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&other))

	mine := domain.Account{UserID: "user-1", Name: "Checking", Type: domain.AccountTypeChecking, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&mine))

	assert.Equal(t, 1, countDefaults(repo.Accounts, "user-1"))
	assert.Equal(t, 1, countDefaults(repo.Accounts, "user-2"))
}

func TestUpdateAccount_PromotingToDefaultDemotesSibling(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	first := domain.Account{UserID: "user-1", Name: "Checking", Type: domain.AccountTypeChecking, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&first))
	second := domain.Account{UserID: "user-1", Name: "Savings", Type: domain.AccountTypeSavings}
	assert.NoError(t, service.CreateAccount(&second))

	makeDefault := true
	updated, err := service.UpdateAccount(second.ID, "user-1", "Savings", domain.AccountTypeSavings, &makeDefault)

	assert.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, 1, countDefaults(repo.Accounts, "user-1"))
}

func TestUpdateAccount_DefaultFlagOmittedKeepsCurrentDefault(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	account := domain.Account{UserID: "user-1", Name: "Checking", Type: domain.AccountTypeChecking, IsDefault: true}
	assert.NoError(t, service.CreateAccount(&account))

	_, err := service.UpdateAccount(account.ID, "user-1", "Renamed", domain.AccountTypeChecking, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, countDefaults(repo.Accounts, "user-1"))
	assert.Equal(t, "Renamed", repo.Accounts[0].Name)
}

func TestCreateAccount_InvalidTypeRejected(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{}
	service := NewAccountService(repo)

	account := domain.Account{UserID: "user-1", Name: "Wallet", Type: "WALLET"}
	err := service.CreateAccount(&account)

	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, repo.Accounts)
}

func TestAccountOwnershipChecks(t *testing.T) {
	repo := &infrastructure.MockAccountRepository{
		Accounts: []domain.Account{
			{ID: "acc-1", UserID: "user-1", Name: "Main", Type: domain.AccountTypeChecking, Balance: decimal.Zero},
		},
	}
	service := NewAccountService(repo)

	_, err := service.GetAccountByID("acc-1", "user-2")
	assert.True(t, financeErrors.IsNotFoundError(err))

	_, err = service.UpdateAccount("acc-1", "user-2", "Main", domain.AccountTypeChecking, nil)
	assert.True(t, financeErrors.IsNotFoundError(err))

	err = service.DeleteAccount("acc-1", "user-2")
	assert.True(t, financeErrors.IsNotFoundError(err))
	assert.Len(t, repo.Accounts, 1)
}
