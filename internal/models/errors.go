package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Transaction errors
var (
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be \"income\" or \"expense\"")
	ErrTransactionCategoryEmpty     = errors.New("the transaction category must be set")
)

// Goal errors
var (
	ErrGoalTargetAmountNotPositive  = errors.New("goal target amounts must be larger than zero")
	ErrGoalSavedAmountNegative      = errors.New("goal saved amounts must not be negative")
	ErrGoalFundingAmountNotPositive = errors.New("amounts added to a goal must be larger than zero")
)

// Badge errors
var ErrBadgeCodeNotUnique = errors.New("the badge code is already in use")
