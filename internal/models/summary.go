package models

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetSummary is the income/expense/balance roll-up over the full ledger.
// It is derived data: recomputed from the transaction table on every read,
// never stored.
type BudgetSummary struct {
	Income   decimal.Decimal `json:"income" example:"2750"`   // Sum of all income transactions
	Expenses decimal.Decimal `json:"expenses" example:"1250"` // Sum of all expense transactions
	Balance  decimal.Decimal `json:"balance" example:"1500"`  // Income minus expenses
}

// Summary computes the budget summary over all transactions.
func Summary() (BudgetSummary, error) {
	income, err := transactionsSum(TransactionTypeIncome)
	if err != nil {
		return BudgetSummary{}, err
	}

	expenses, err := transactionsSum(TransactionTypeExpense)
	if err != nil {
		return BudgetSummary{}, err
	}

	return BudgetSummary{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}, nil
}

// transactionsSum returns the sum of the amounts of all transactions with
// the given type. Soft deleted transactions are not counted.
func transactionsSum(t TransactionType) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Model(&Transaction{}).
		Where(&Transaction{Type: t}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		// Row scans bypass the error callbacks, any failure here is a
		// server side problem
		log.Error().Msgf("summing transactions with type %v failed: %v", t, err)
		return decimal.Zero, ErrGeneral
	}

	return sum.Decimal, nil
}
