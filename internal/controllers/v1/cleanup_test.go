package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Farhad030619/UniWallet/internal/controllers/v1"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/Farhad030619/UniWallet/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Wipe me", TargetAmount: decimal.NewFromFloat(100)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromFloat(17)})
	_ = createTestBadge(suite.T(), v1.BadgeEditable{Code: "SAVER_1", Title: "Budget Beginner", Icon: "💰"})
	_ = createTestPost(suite.T(), v1.PostEditable{Text: "Goodbye"})
	_ = createTestDeal(suite.T(), v1.DealEditable{Title: "Expired deal"})

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify that all tables are empty, also below the soft delete
	for _, model := range []any{
		models.Transaction{},
		models.Goal{},
		models.Post{},
		models.Deal{},
		models.Badge{},
		models.Profile{},
	} {
		var count int64
		err := models.DB.Unscoped().Model(&model).Count(&count).Error
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), int64(0), count, "The database must be empty, but found %d %T", count, model)
	}
}

func (suite *TestSuiteStandard) TestCleanupConfirmation() {
	tests := []struct {
		name  string
		query string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "confirm=yes-please-delete-my-data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestPost(t, v1.PostEditable{Text: "Survivor"})

			recorder := test.Request(t, http.MethodDelete, "http://example.com/v1?"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var count int64
			err := models.DB.Model(&models.Post{}).Count(&count).Error
			assert.Nil(t, err)
			assert.NotZero(t, count, "Without the confirmation, nothing may be deleted")
		})
	}
}
