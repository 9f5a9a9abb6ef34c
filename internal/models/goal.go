package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a saving goal: a named target amount with progress tracked in
// SavedAmount. SavedAmount may exceed TargetAmount, which signals a
// completed goal.
type Goal struct {
	DefaultModel
	Name         string
	Note         string
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavedAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived     bool
}

func (g Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrGoalTargetAmountNotPositive
	}

	if g.SavedAmount.IsNegative() {
		return ErrGoalSavedAmountNegative
	}

	return nil
}

// FundingNote returns the display note for a transaction that adds funds to
// the goal. The note is display only, reconciliation uses the GoalID
// reference on the transaction.
func (g Goal) FundingNote() string {
	return fmt.Sprintf("Added to %q goal", g.Name)
}

// AddToGoal records a funding event: an expense transaction for the amount
// plus the increase of the goal's saved amount. Both effects are committed
// together or not at all.
func AddToGoal(id uuid.UUID, amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrGoalFundingAmountNotPositive
	}

	var transaction Transaction
	err := DB.Transaction(func(tx *gorm.DB) error {
		var goal Goal
		err := tx.First(&goal, id).Error
		if err != nil {
			return err
		}

		transaction = Transaction{
			Type:     TransactionTypeExpense,
			Category: CategorySaving,
			Amount:   amount,
			Note:     goal.FundingNote(),
			GoalID:   &goal.ID,
		}

		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		return tx.Model(&goal).Update("saved_amount", goal.SavedAmount.Add(amount)).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return transaction, nil
}
