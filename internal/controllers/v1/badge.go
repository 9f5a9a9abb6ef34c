package v1

import (
	"fmt"
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterBadgeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBadges)
		r.GET("", GetBadges)
		r.POST("", CreateBadges)
	}
	{
		r.OPTIONS("/:id", OptionsBadgeDetail)
		r.GET("/:id", GetBadge)
		r.DELETE("/:id", DeleteBadge)
	}
}

type BadgeEditable struct {
	Code  string `json:"code" example:"SAVER_1" default:""`          // Unique code of the badge
	Title string `json:"title" example:"Budget Beginner" default:""` // Display title
	Icon  string `json:"icon" example:"💰" default:""`                // Emoji shown for the badge
}

// model returns the database resource for the API representation of the editable fields
func (editable BadgeEditable) model() models.Badge {
	return models.Badge{
		Code:  editable.Code,
		Title: editable.Title,
		Icon:  editable.Icon,
	}
}

type BadgeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/badges/d430d7c3-d14c-4712-9336-ee56965a6673"` // The badge itself
}

type Badge struct {
	models.DefaultModel
	BadgeEditable
	Links BadgeLinks `json:"links"`
}

// newBadge returns the API v1 representation of the resource
func newBadge(c *gin.Context, model models.Badge) Badge {
	url := c.GetString(string(models.DBContextURL))

	return Badge{
		DefaultModel: model.DefaultModel,
		BadgeEditable: BadgeEditable{
			Code:  model.Code,
			Title: model.Title,
			Icon:  model.Icon,
		},
		Links: BadgeLinks{
			Self: fmt.Sprintf("%s/v1/badges/%s", url, model.ID),
		},
	}
}

type BadgeListResponse struct {
	Data  []Badge `json:"data"`                                                          // List of badges
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BadgeCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BadgeResponse `json:"data"`                                                          // List of created badges
}

func (t *BadgeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, BadgeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BadgeResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Badge  `json:"data"`                                                          // The badge
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Badges
// @Success		204
// @Router			/v1/badges [options]
func OptionsBadges(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Badges
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/badges/{id} [options]
func OptionsBadgeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Badge{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create badges
// @Description	Creates new badges
// @Tags			Badges
// @Produce		json
// @Success		201		{object}	BadgeCreateResponse
// @Failure		400		{object}	BadgeCreateResponse
// @Failure		500		{object}	BadgeCreateResponse
// @Param			badges	body		[]BadgeEditable	true	"Badges"
// @Router			/v1/badges [post]
func CreateBadges(c *gin.Context) {
	var badges []BadgeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &badges)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BadgeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BadgeCreateResponse{}

	for _, create := range badges {
		badge := create.model()
		err = models.DB.Create(&badge).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newBadge(c, badge)
		r.Data = append(r.Data, BadgeResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get badges
// @Description	Returns the list of badges
// @Tags			Badges
// @Produce		json
// @Success		200	{object}	BadgeListResponse
// @Failure		500	{object}	BadgeListResponse
// @Router			/v1/badges [get]
func GetBadges(c *gin.Context) {
	var badges []models.Badge
	err := models.DB.Order("badges.created_at ASC").Find(&badges).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BadgeListResponse{
			Error: &s,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Badge, 0, len(badges))
	for _, badge := range badges {
		data = append(data, newBadge(c, badge))
	}

	c.JSON(http.StatusOK, BadgeListResponse{
		Data: data,
	})
}

// @Summary		Get badge
// @Description	Returns a specific badge
// @Tags			Badges
// @Produce		json
// @Success		200	{object}	BadgeResponse
// @Failure		400	{object}	BadgeResponse
// @Failure		404	{object}	BadgeResponse
// @Failure		500	{object}	BadgeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/badges/{id} [get]
func GetBadge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BadgeResponse{
			Error: &e,
		})
		return
	}

	var badge models.Badge
	err = models.DB.First(&badge, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BadgeResponse{
			Error: &e,
		})
		return
	}

	apiResource := newBadge(c, badge)
	c.JSON(http.StatusOK, BadgeResponse{Data: &apiResource})
}

// @Summary		Delete badge
// @Description	Deletes a badge
// @Tags			Badges
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/badges/{id} [delete]
func DeleteBadge(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var badge models.Badge
	err = models.DB.First(&badge, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&badge).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
