package v1

import (
	"fmt"

	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"New Laptop" default:""`                                                                                  // Name of the goal
	Note         string          `json:"note" example:"Going for the M1 Air, mine is falling apart" default:""`                                                 // Note about the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"10000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // How much money should be saved for this goal?
	SavedAmount  decimal.Decimal `json:"savedAmount" example:"2500" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"`            // How much money is already saved, may exceed the target
	Archived     bool            `json:"archived" example:"true" default:"false"`                                                                               // If this goal is still in use or not
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		SavedAmount:  editable.SavedAmount,
		Archived:     editable.Archived,
	}
}

type GoalLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`                     // The Goal itself
	AddFunds     string `json:"addFunds" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c/add"`             // Endpoint recording a funding event for this goal
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?goal=438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The funding transactions referencing this goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			SavedAmount:  model.SavedAmount,
			Archived:     model.Archived,
		},
		Links: GoalLinks{
			Self:         fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
			AddFunds:     fmt.Sprintf("%s/v1/goals/%s/add", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?goal=%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

// GoalAddEditable is the request body for a funding event.
type GoalAddEditable struct {
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount to add to the goal
}

// GoalAddObject is the result of a funding event: the updated goal and the
// expense transaction that was created for it.
type GoalAddObject struct {
	Goal        Goal        `json:"goal"`        // The goal with the updated saved amount
	Transaction Transaction `json:"transaction"` // The expense transaction recording the funding event
}

type GoalAddResponse struct {
	Error *string        `json:"error" example:"amounts added to a goal must be larger than zero"` // The error, if any occurred
	Data  *GoalAddObject `json:"data"`                                                             // The funding event result
}

type GoalQueryFilter struct {
	Name                    string          `form:"name" filterField:"false"`                    // By name
	Note                    string          `form:"note" filterField:"false"`                    // By the note
	Search                  string          `form:"search" filterField:"false"`                  // By string in name or note
	Archived                bool            `form:"archived"`                                    // Is the goal archived?
	TargetAmount            decimal.Decimal `form:"targetAmount"`                                // Exact target amount
	TargetAmountLessOrEqual decimal.Decimal `form:"targetAmountLessOrEqual" filterField:"false"` // Target amount less than or equal to this
	TargetAmountMoreOrEqual decimal.Decimal `form:"targetAmountMoreOrEqual" filterField:"false"` // Target amount more than or equal to this
	Offset                  uint            `form:"offset" filterField:"false"`                  // The offset of the first goal returned. Defaults to 0.
	Limit                   int             `form:"limit" filterField:"false"`                   // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	// This does not set the string fields since they are
	// handled in the controller function
	return GoalEditable{
		TargetAmount: f.TargetAmount,
		Archived:     f.Archived,
	}.model()
}
