package v1

import (
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/gemini"
	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsChat)
	r.POST("", CreateChatCompletion)
}

// chatFallback is returned with HTTP 200 whenever the completion fails.
// The client renders it as a regular assistant message.
const chatFallback = "Sorry, something went wrong while getting your tip. Please try again."

type ChatMessage struct {
	Role gemini.Role `json:"role" example:"user"`                         // Who sent the message, "user" or "model"
	Text string      `json:"text" example:"How can I save on groceries?"` // Text of the message
}

type ChatEditable struct {
	Messages []ChatMessage `json:"messages"` // The ordered chat history, oldest message first
}

type ChatResponse struct {
	Error *string      `json:"error" example:"the chat history must contain at least one message"` // The error, if any occurred
	Data  *ChatMessage `json:"data"`                                                               // The model's reply
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Chat
// @Success		204
// @Router			/v1/chat [options]
func OptionsChat(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Chat with the assistant
// @Description	Sends the chat history to the assistant and returns its reply. When the completion fails, a fixed fallback reply is returned instead of an error.
// @Tags			Chat
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChatResponse
// @Failure		400		{object}	ChatResponse
// @Param			chat	body		ChatEditable	true	"Chat history"
// @Router			/v1/chat [post]
func CreateChatCompletion(c *gin.Context) {
	var data ChatEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChatResponse{
			Error: &e,
		})
		return
	}

	if len(data.Messages) == 0 {
		e := errChatHistoryEmpty.Error()
		c.JSON(http.StatusBadRequest, ChatResponse{
			Error: &e,
		})
		return
	}

	messages := make([]gemini.Message, 0, len(data.Messages))
	for _, message := range data.Messages {
		if !message.Role.Valid() {
			e := errChatRoleInvalid.Error()
			c.JSON(http.StatusBadRequest, ChatResponse{
				Error: &e,
			})
			return
		}

		messages = append(messages, gemini.Message{
			Role: message.Role,
			Text: message.Text,
		})
	}

	text, err := gemini.Completion(c.Request.Context(), messages)
	if err != nil {
		// Completion failures never propagate to the client
		text = chatFallback
	}

	c.JSON(http.StatusOK, ChatResponse{
		Data: &ChatMessage{
			Role: gemini.RoleModel,
			Text: text,
		},
	})
}
