package v1_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/Farhad030619/UniWallet/internal/controllers/v1"
	"github.com/Farhad030619/UniWallet/internal/gemini"
	"github.com/Farhad030619/UniWallet/test"
	"github.com/stretchr/testify/assert"
)

const chatFallback = "Sorry, something went wrong while getting your tip. Please try again."

func (suite *TestSuiteStandard) TestChatOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/chat", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestChat() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Try meal prepping on Sundays!"}]}}]}`))
	}))
	defer server.Close()

	suite.T().Setenv("GEMINI_API_KEY", "test-key")
	suite.T().Setenv("GEMINI_API_URL", server.URL)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", v1.ChatEditable{
		Messages: []v1.ChatMessage{
			{Role: gemini.RoleUser, Text: "How can I save on groceries?"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), gemini.RoleModel, response.Data.Role)
	assert.Equal(suite.T(), "Try meal prepping on Sundays!", response.Data.Text)
}

// TestChatFallback verifies that completion failures are replaced by the
// fixed fallback text with HTTP 200.
func (suite *TestSuiteStandard) TestChatFallback() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	suite.T().Setenv("GEMINI_API_KEY", "test-key")
	suite.T().Setenv("GEMINI_API_URL", server.URL)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", v1.ChatEditable{
		Messages: []v1.ChatMessage{
			{Role: gemini.RoleUser, Text: "Hello"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), chatFallback, response.Data.Text)
}

// TestChatMissingKey verifies the fallback when no API key is configured.
func (suite *TestSuiteStandard) TestChatMissingKey() {
	suite.T().Setenv("GEMINI_API_KEY", "")

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/chat", v1.ChatEditable{
		Messages: []v1.ChatMessage{
			{Role: gemini.RoleUser, Text: "Hello"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ChatResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), chatFallback, response.Data.Text)
}

func (suite *TestSuiteStandard) TestChatInvalidRequests() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty history", v1.ChatEditable{}},
		{"Invalid role", v1.ChatEditable{Messages: []v1.ChatMessage{{Role: "assistant", Text: "Hi"}}}},
		{"Invalid body", `{ "messages": }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/chat", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
