package application

import (
	"github.com/Pateriya27/Paisa-Ai/internal/finance/domain"
	"github.com/shopspring/decimal"
)

// applyTransactionEffect returns the account balance after a transaction
// settles against it. Only COMPLETED transactions move money; PENDING and
// FAILED ones leave the balance untouched.
func applyTransactionEffect(balance decimal.Decimal, transaction domain.Transaction) decimal.Decimal {
	if transaction.Status != domain.TransactionStatusCompleted {
		return balance
	}
	if transaction.Type == domain.TransactionTypeIncome {
		return balance.Add(transaction.Amount)
	}
	return balance.Sub(transaction.Amount)
}

// revertTransactionEffect undoes the prior effect of a transaction with the
// given type and amount: subtract what an INCOME added, add back what an
// EXPENSE removed. Callers revert before applying a replacement effect.
func revertTransactionEffect(balance decimal.Decimal, transactionType string, amount decimal.Decimal) decimal.Decimal {
	if transactionType == domain.TransactionTypeIncome {
		return balance.Sub(amount)
	}
	return balance.Add(amount)
}
