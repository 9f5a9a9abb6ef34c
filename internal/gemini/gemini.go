// Package gemini implements the chat completion client for the Gemini
// generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sethvargo/go-retry"
)

// Role of a chat message. The API only knows the user and the model.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Valid returns whether the role is one the API accepts.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

// Message is a single turn of the chat history.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

var (
	ErrNoAPIKey   = errors.New("the GEMINI_API_KEY environment variable is not set")
	ErrNoReply    = errors.New("the model did not return a reply")
	ErrNoMessages = errors.New("at least one message is required")
)

const defaultModel = "gemini-2.5-flash"
const defaultAPIURL = "https://generativelanguage.googleapis.com"

// systemInstruction is the persona the model answers as.
const systemInstruction = `You are CashBuddy, a friendly and encouraging financial assistant for university students. Keep answers short, practical and positive. Give concrete money-saving tips that fit a student budget. Never give investment advice.`

// Wire types for the generateContent endpoint.
type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

type generateRequest struct {
	Contents          []content        `json:"contents"`
	SystemInstruction content          `json:"systemInstruction"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

var client = &http.Client{
	Timeout: 30 * time.Second,
}

// Completion sends the chat history to the model and returns its reply text.
//
// Timeouts, connection errors, 429 and 5xx responses are retried with
// fibonacci backoff, capped at 3 attempts. All other failures return
// immediately.
func Completion(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}

	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return "", ErrNoAPIKey
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	contents := make([]content, 0, len(messages))
	for _, message := range messages {
		contents = append(contents, content{
			Role:  string(message.Role),
			Parts: []part{{Text: message.Text}},
		})
	}

	body, err := json.Marshal(generateRequest{
		Contents:          contents,
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig: generationConfig{
			Temperature: 0.7,
			TopP:        0.9,
			TopK:        40,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", apiURL, model)

	var reply string
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", key)

		res, err := client.Do(req)
		if err != nil {
			// Timeouts and connection errors are worth another attempt
			return retry.RetryableError(err)
		}
		defer res.Body.Close()

		resBody, err := io.ReadAll(res.Body)
		if err != nil {
			return retry.RetryableError(err)
		}

		if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("api responded with status %d", res.StatusCode))
		}

		if res.StatusCode != http.StatusOK {
			return fmt.Errorf("api responded with status %d", res.StatusCode)
		}

		var parsed generateResponse
		if err := json.Unmarshal(resBody, &parsed); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}

		if parsed.Error != nil {
			return fmt.Errorf("api error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}

		if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
			return ErrNoReply
		}

		reply = parsed.Candidates[0].Content.Parts[0].Text
		return nil
	})
	if err != nil {
		return "", err
	}

	return reply, nil
}
