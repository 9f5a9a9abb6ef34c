package models_test

import (
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetProfileCreatesDefault() {
	profile, err := models.GetProfile()
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Fredrik Åkare", profile.DisplayName)
	assert.NotEmpty(suite.T(), profile.School)
	assert.NotEmpty(suite.T(), profile.PhotoURL)
}

// TestGetProfileSingleton verifies that there is only ever one profile row,
// also after it has been edited.
func (suite *TestSuiteStandard) TestGetProfileSingleton() {
	profile, err := models.GetProfile()
	assert.Nil(suite.T(), err)

	err = models.DB.Model(&profile).Update("display_name", "Kim").Error
	assert.Nil(suite.T(), err)

	again, err := models.GetProfile()
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), profile.ID, again.ID)
	assert.Equal(suite.T(), "Kim", again.DisplayName)

	var count int64
	err = models.DB.Model(&models.Profile{}).Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	profile, err := models.GetProfile()
	assert.Nil(suite.T(), err)

	profile.DisplayName = "  Alex \t"
	profile.School = " Lund University  "
	err = models.DB.Save(&profile).Error
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Alex", profile.DisplayName)
	assert.Equal(suite.T(), "Lund University", profile.School)
}
