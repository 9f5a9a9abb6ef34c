package v1_test

import (
	"net/http"

	v1 "github.com/Farhad030619/UniWallet/internal/controllers/v1"
	"github.com/Farhad030619/UniWallet/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestV1Get() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "http://example.com/v1/transactions", response.Links.Transactions)
	assert.Equal(suite.T(), "http://example.com/v1/goals", response.Links.Goals)
	assert.Equal(suite.T(), "http://example.com/v1/summary", response.Links.Summary)
	assert.Equal(suite.T(), "http://example.com/v1/chat", response.Links.Chat)
}

func (suite *TestSuiteStandard) TestV1Options() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", recorder.Header().Get("allow"))
}
