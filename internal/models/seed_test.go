package models_test

import (
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSeed() {
	err := models.Seed()
	assert.Nil(suite.T(), err)

	var badges, deals, posts, profiles int64
	assert.Nil(suite.T(), models.DB.Model(&models.Badge{}).Count(&badges).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Deal{}).Count(&deals).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Post{}).Count(&posts).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Profile{}).Count(&profiles).Error)

	assert.Equal(suite.T(), int64(3), badges)
	assert.Equal(suite.T(), int64(4), deals)
	assert.Equal(suite.T(), int64(3), posts)
	assert.Equal(suite.T(), int64(1), profiles)
}

// TestSeedIdempotent verifies that seeding a second time does not duplicate
// content.
func (suite *TestSuiteStandard) TestSeedIdempotent() {
	assert.Nil(suite.T(), models.Seed())
	assert.Nil(suite.T(), models.Seed())

	var badges int64
	assert.Nil(suite.T(), models.DB.Model(&models.Badge{}).Count(&badges).Error)
	assert.Equal(suite.T(), int64(3), badges)
}

// TestSeedKeepsUserContent verifies that seeding does not touch content the
// user created themselves.
func (suite *TestSuiteStandard) TestSeedKeepsUserContent() {
	post := suite.createTestPost(models.Post{Author: "Dana", Text: "My own post"})
	deal := suite.createTestDeal(models.Deal{Title: "Custom deal"})

	assert.Nil(suite.T(), models.Seed())

	var posts, deals int64
	assert.Nil(suite.T(), models.DB.Model(&models.Post{}).Count(&posts).Error)
	assert.Nil(suite.T(), models.DB.Model(&models.Deal{}).Count(&deals).Error)

	assert.Equal(suite.T(), int64(1), posts, "Seeding must skip posts when any exist")
	assert.Equal(suite.T(), int64(1), deals, "Seeding must skip deals when any exist")

	assert.Nil(suite.T(), models.DB.First(&post, post.ID).Error)
	assert.Nil(suite.T(), models.DB.First(&deal, deal.ID).Error)
}
