package v1

import (
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

type SummaryResponse struct {
	Error *string               `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  *models.BudgetSummary `json:"data"`                                                                // The budget summary
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get budget summary
// @Description	Returns the income, expenses and balance over all transactions. Recomputed on every call.
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	summary, err := models.Summary()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
