package models_test

import (
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSummaryEmptyLedger() {
	summary, err := models.Summary()
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), summary.Income.IsZero(), "Income is %s, should be 0", summary.Income)
	assert.True(suite.T(), summary.Expenses.IsZero(), "Expenses are %s, should be 0", summary.Expenses)
	assert.True(suite.T(), summary.Balance.IsZero(), "Balance is %s, should be 0", summary.Balance)
}

func (suite *TestSuiteStandard) TestSummary() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: "CSN", Amount: decimal.NewFromFloat(12500)})
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: "Part-time job", Amount: decimal.NewFromFloat(4200)})
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Category: "Rent", Amount: decimal.NewFromFloat(6300)})
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Category: "Groceries", Amount: decimal.NewFromFloat(1700.50)})

	summary, err := models.Summary()
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), summary.Income.Equal(decimal.NewFromFloat(16700)), "Income is %s, should be 16700", summary.Income)
	assert.True(suite.T(), summary.Expenses.Equal(decimal.NewFromFloat(8000.50)), "Expenses are %s, should be 8000.50", summary.Expenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromFloat(8699.50)), "Balance is %s, should be 8699.50", summary.Balance)
}

// TestSummaryIdempotent verifies that computing the summary does not change
// any data.
func (suite *TestSuiteStandard) TestSummaryIdempotent() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: "CSN", Amount: decimal.NewFromFloat(1000)})

	first, err := models.Summary()
	assert.Nil(suite.T(), err)

	second, err := models.Summary()
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), first, second)
}

// TestSummaryIgnoresDeleted verifies that soft deleted transactions do not
// contribute.
func (suite *TestSuiteStandard) TestSummaryIgnoresDeleted() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Category: "Rent", Amount: decimal.NewFromFloat(6300)})
	deleted := suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Category: "Impulse buy", Amount: decimal.NewFromFloat(999)})

	err := models.DB.Delete(&deleted).Error
	assert.Nil(suite.T(), err)

	summary, err := models.Summary()
	assert.Nil(suite.T(), err)

	assert.True(suite.T(), summary.Expenses.Equal(decimal.NewFromFloat(6300)), "Expenses are %s, should be 6300", summary.Expenses)
}

// TestSummaryFundingRoundTrip walks through the full life of a funding
// event: funding a goal creates an expense, deleting the funding
// transaction takes the expense out of the summary again.
func (suite *TestSuiteStandard) TestSummaryFundingRoundTrip() {
	_ = suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Category: "CSN", Amount: decimal.NewFromFloat(10000)})

	goal := suite.createTestGoal(models.Goal{
		Name:         "New Laptop",
		TargetAmount: decimal.NewFromFloat(15000),
		SavedAmount:  decimal.NewFromFloat(8000),
	})

	transaction, err := models.AddToGoal(goal.ID, decimal.NewFromFloat(500))
	assert.Nil(suite.T(), err)

	summary, err := models.Summary()
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Expenses.Equal(decimal.NewFromFloat(500)), "Expenses are %s, should be 500", summary.Expenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromFloat(9500)), "Balance is %s, should be 9500", summary.Balance)

	err = models.DB.Delete(&transaction).Error
	assert.Nil(suite.T(), err)

	summary, err = models.Summary()
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), summary.Expenses.IsZero(), "Expenses are %s, should be 0 after the deletion", summary.Expenses)
	assert.True(suite.T(), summary.Balance.Equal(decimal.NewFromFloat(10000)), "Balance is %s, should be 10000 after the deletion", summary.Balance)

	err = models.DB.First(&goal, goal.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), goal.SavedAmount.Equal(decimal.NewFromFloat(8000)), "Saved amount is %s, should be back at 8000", goal.SavedAmount)
}
