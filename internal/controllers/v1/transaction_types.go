package v1

import (
	"fmt"
	"time"

	"github.com/Farhad030619/UniWallet/internal/models"
	uw_uuid "github.com/Farhad030619/UniWallet/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"1815-12-10T18:43:00.271152Z"` // Date of the transaction. Time is currently only used for sorting

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Type     models.TransactionType `json:"type" example:"expense" default:"expense"`              // Whether the transaction is income or an expense
	Category string                 `json:"category" example:"Food"`                               // Category label for the transaction
	Note     string                 `json:"note" example:"Lunch" default:""`                       // A note
	GoalID   *uuid.UUID             `json:"goalId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the goal this transaction funded, if any
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:     editable.Date,
		Amount:   editable.Amount,
		Type:     editable.Type,
		Category: editable.Category,
		Note:     editable.Note,
		GoalID:   editable.GoalID,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:     model.Date,
			Amount:   model.Amount,
			Type:     model.Type,
			Category: model.Category,
			Note:     model.Note,
			GoalID:   model.GoalID,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Type              string          `form:"type"`                                                                // Filter by type
	Category          string          `form:"category"`                                                            // Filter by category
	Note              string          `form:"note" filterField:"false"`                                            // Filter by the note
	Search            string          `form:"search" filterField:"false"`                                          // Search for this text in note and category
	GoalID            uw_uuid.UUID    `form:"goal"`                                                                // ID of the goal the transactions fund
	Amount            decimal.Decimal `form:"amount"`                                                              // Exact amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual" filterField:"false"`                               // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual" filterField:"false"`                               // Amount more than or equal to this
	FromDate          time.Time       `form:"fromDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"`  // Transactions at or after this date
	UntilDate         time.Time       `form:"untilDate" filterField:"false" time_format:"2006-01-02" time_utc:"1"` // Transactions before or at this date
	Offset            uint            `form:"offset" filterField:"false"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit" filterField:"false"`                                           // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// Does not set the string fields since they are
	// handled in the controller function
	var goalID *uuid.UUID
	if f.GoalID != uw_uuid.Nil {
		goalID = &f.GoalID.UUID
	}

	return models.Transaction{
		Type:     models.TransactionType(f.Type),
		Category: f.Category,
		Amount:   f.Amount,
		GoalID:   goalID,
	}
}
