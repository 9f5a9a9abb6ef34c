package root

import (
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"` // Healthz endpoint
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"` // Endpoint returning Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`           // List endpoint for all v1 endpoints
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
