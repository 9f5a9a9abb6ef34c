package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/Farhad030619/UniWallet/internal/controllers/v1"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/Farhad030619/UniWallet/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestGoalsOptions verifies that the HTTP OPTIONS response for /goals/{id}
// is correct.
func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: decimal.NewFromFloat(200)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/goals", tt.id)
			}

			r := test.Request(t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestGoalsCreate verifies goal creation including validation.
func (suite *TestSuiteStandard) TestGoalsCreate() {
	tests := []struct {
		name   string
		status int
		goal   v1.GoalEditable
	}{
		{
			"Valid",
			http.StatusCreated,
			v1.GoalEditable{Name: "New Laptop", TargetAmount: decimal.NewFromFloat(15000)},
		},
		{
			"Zero target amount",
			http.StatusBadRequest,
			v1.GoalEditable{Name: "No target"},
		},
		{
			"Negative saved amount",
			http.StatusBadRequest,
			v1.GoalEditable{Name: "Negative", TargetAmount: decimal.NewFromFloat(100), SavedAmount: decimal.NewFromFloat(-1)},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{tt.goal})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestGoalsGetFilter verifies the query string filters.
func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "New Laptop", Note: "M1 Air", TargetAmount: decimal.NewFromFloat(15000)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Interrail", TargetAmount: decimal.NewFromFloat(6000), Archived: true})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Emergency fund", TargetAmount: decimal.NewFromFloat(10000)})

	tests := []struct {
		name  string // Name for the test
		query string // Query string to use
		len   int    // Expected number of goals
	}{
		{"By name", "name=Laptop", 1},
		{"By note", "note=M1", 1},
		{"Search", "search=fund", 1},
		{"Archived", "archived=true", 1},
		{"Target at least", "targetAmountMoreOrEqual=10000", 2},
		{"Target at most", "targetAmountLessOrEqual=6000", 1},
		{"No match", "name=Boat", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestGoalsAddFunds verifies the happy path of a funding event.
func (suite *TestSuiteStandard) TestGoalsAddFunds() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "New Laptop",
		TargetAmount: decimal.NewFromFloat(15000),
		SavedAmount:  decimal.NewFromFloat(8000),
	})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.AddFunds, v1.GoalAddEditable{Amount: decimal.NewFromFloat(500)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.GoalAddResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.True(suite.T(), response.Data.Goal.SavedAmount.Equal(decimal.NewFromFloat(8500)), "Saved amount is %s, should be 8500", response.Data.Goal.SavedAmount)
	assert.Equal(suite.T(), models.TransactionTypeExpense, response.Data.Transaction.Type)
	assert.Equal(suite.T(), models.CategorySaving, response.Data.Transaction.Category)
	assert.Equal(suite.T(), `Added to "New Laptop" goal`, response.Data.Transaction.Note)
	if assert.NotNil(suite.T(), response.Data.Transaction.GoalID) {
		assert.Equal(suite.T(), goal.Data.ID, *response.Data.Transaction.GoalID)
	}
}

// TestGoalsAddFundsInvalid verifies that invalid funding events change
// nothing.
func (suite *TestSuiteStandard) TestGoalsAddFundsInvalid() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Concert", TargetAmount: decimal.NewFromFloat(1200)})

	tests := []struct {
		name   string
		status int
		path   string
		body   any
	}{
		{"Zero amount", http.StatusBadRequest, goal.Data.Links.AddFunds, v1.GoalAddEditable{Amount: decimal.Zero}},
		{"Negative amount", http.StatusBadRequest, goal.Data.Links.AddFunds, v1.GoalAddEditable{Amount: decimal.NewFromFloat(-100)}},
		{"Unknown goal", http.StatusNotFound, fmt.Sprintf("http://example.com/v1/goals/%s/add", uuid.New()), v1.GoalAddEditable{Amount: decimal.NewFromFloat(100)}},
		{"Invalid body", http.StatusBadRequest, goal.Data.Links.AddFunds, `{ "amount": "NaN }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			// The ledger must be untouched
			recorder = test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var transactions v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &transactions)
			assert.Len(t, transactions.Data, 0)
		})
	}
}

// TestGoalsUpdate verifies that a PATCH only changes the fields in the
// request body and never creates transactions.
func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "Old name",
		TargetAmount: decimal.NewFromFloat(4000),
		SavedAmount:  decimal.NewFromFloat(1000),
	})

	recorder := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, map[string]any{
		"savedAmount": 2000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.True(suite.T(), updated.Data.SavedAmount.Equal(decimal.NewFromFloat(2000)))
	assert.Equal(suite.T(), "Old name", updated.Data.Name, "Fields not in the body must be unchanged")

	// Editing the saved amount directly must not create a transaction
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	assert.Len(suite.T(), transactions.Data, 0)
}

// TestGoalsDeleteKeepsTransactions verifies that deleting a goal leaves the
// ledger untouched.
func (suite *TestSuiteStandard) TestGoalsDeleteKeepsTransactions() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Festival", TargetAmount: decimal.NewFromFloat(2500)})

	recorder := test.Request(suite.T(), http.MethodPost, goal.Data.Links.AddFunds, v1.GoalAddEditable{Amount: decimal.NewFromFloat(300)})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodDelete, goal.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &transactions)
	if assert.Len(suite.T(), transactions.Data, 1) {
		assert.True(suite.T(), transactions.Data[0].Amount.Equal(decimal.NewFromFloat(300)))
	}
}
