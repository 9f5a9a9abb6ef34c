package models_test

import (
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBadgeCodeUnique() {
	_ = suite.createTestBadge(models.Badge{Code: "SAVER_1", Title: "First krona saved", Icon: "💰"})

	duplicate := models.Badge{Code: "SAVER_1", Title: "Duplicate", Icon: "✨"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBadgeCodeNotUnique)
}

func (suite *TestSuiteStandard) TestBadgeTrimWhitespace() {
	badge := suite.createTestBadge(models.Badge{Code: "  STREAK_7 ", Title: " Week-long streak \t", Icon: "🔥"})

	assert.Equal(suite.T(), "STREAK_7", badge.Code)
	assert.Equal(suite.T(), "Week-long streak", badge.Title)
}
