package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds money to the
// balance or removes money from it.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// CategorySaving is the category for transactions that are created as the
// side effect of funding a goal.
const CategorySaving = "Saving"

// Transaction represents a single entry in the ledger.
type Transaction struct {
	DefaultModel
	Date     time.Time       // Time of day is currently only used for sorting
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type     TransactionType `gorm:"default:expense"`
	Category string
	Note     string

	// GoalID references the goal a funding transaction was created for.
	// It is a relation, not ownership: deleting the goal leaves the
	// transaction in the ledger as a plain expense.
	GoalID *uuid.UUID
	Goal   Goal `gorm:"constraint:OnDelete:SET NULL"`
}

func (t Transaction) Self() string {
	return "Transaction"
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)

	// Ensure that the Goal ID is nil and not a pointer to a nil UUID
	// when it is set
	if t.GoalID != nil && *t.GoalID == uuid.Nil {
		t.GoalID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) (err error) {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("GoalID") && toSave.GoalID != nil {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies that the goal referenced by the transaction exists.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	if toSave.GoalID == nil || *toSave.GoalID == uuid.Nil {
		return nil
	}

	return tx.First(&Goal{}, *toSave.GoalID).Error
}

// BeforeDelete reverses the effect of a funding transaction on the goal it
// funded: the goal's saved amount is reduced by the transaction amount,
// clamped at zero. If the goal no longer exists, only the transaction is
// removed.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	if t.GoalID == nil {
		return nil
	}

	var goal Goal
	err := tx.Session(&gorm.Session{NewDB: true}).First(&goal, *t.GoalID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	}

	saved := goal.SavedAmount.Sub(t.Amount)
	if saved.IsNegative() {
		saved = decimal.Zero
	}

	return tx.Session(&gorm.Session{NewDB: true}).Model(&goal).Update("saved_amount", saved).Error
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrTransactionAmountNotPositive
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Category == "" {
		return ErrTransactionCategoryEmpty
	}

	return nil
}
