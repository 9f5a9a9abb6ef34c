package v1

import (
	"errors"
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Chat errors
var (
	errChatHistoryEmpty = errors.New("the chat history must contain at least one message")
	errChatRoleInvalid  = errors.New("the specified chat message role is invalid")
)
