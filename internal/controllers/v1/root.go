package v1

import (
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Badges       string `json:"badges" example:"https://example.com/api/v1/badges"`             // URL of the badge collection endpoint
	Chat         string `json:"chat" example:"https://example.com/api/v1/chat"`                 // URL of the chat assistant endpoint
	Deals        string `json:"deals" example:"https://example.com/api/v1/deals"`               // URL of the deal collection endpoint
	Goals        string `json:"goals" example:"https://example.com/api/v1/goals"`               // URL of the goal collection endpoint
	Posts        string `json:"posts" example:"https://example.com/api/v1/posts"`               // URL of the community post collection endpoint
	Profile      string `json:"profile" example:"https://example.com/api/v1/profile"`           // URL of the profile endpoint
	Summary      string `json:"summary" example:"https://example.com/api/v1/summary"`           // URL of the budget summary endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Badges:       url + "/v1/badges",
			Chat:         url + "/v1/chat",
			Deals:        url + "/v1/deals",
			Goals:        url + "/v1/goals",
			Posts:        url + "/v1/posts",
			Profile:      url + "/v1/profile",
			Summary:      url + "/v1/summary",
			Transactions: url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
