package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterDealRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsDeals)
		r.GET("", GetDeals)
		r.POST("", CreateDeals)
	}
	{
		r.OPTIONS("/:id", OptionsDealDetail)
		r.GET("/:id", GetDeal)
		r.PATCH("/:id", UpdateDeal)
		r.DELETE("/:id", DeleteDeal)
	}
}

type DealEditable struct {
	Title       string    `json:"title" example:"20% off at Campus Café" default:""`                 // Title of the deal
	Description string    `json:"description" example:"Show your student ID at the till" default:""` // What the deal is about
	Link        string    `json:"link" example:"https://example.com/campus-cafe" default:""`         // Where to redeem the deal
	ExpiresAt   time.Time `json:"expiresAt" example:"2027-10-31T23:59:59Z"`                          // When the deal expires
	Tags        []string  `json:"tags" example:"food,oncampus"`                                      // Tags for filtering
}

// model returns the database resource for the API representation of the editable fields
func (editable DealEditable) model() models.Deal {
	return models.Deal{
		Title:       editable.Title,
		Description: editable.Description,
		Link:        editable.Link,
		ExpiresAt:   editable.ExpiresAt,
		Tags:        editable.Tags,
	}
}

type DealLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/deals/eb4e17cf-4e89-4b03-98d5-bd0a99e0ad17"` // The deal itself
}

type Deal struct {
	models.DefaultModel
	DealEditable
	Links DealLinks `json:"links"`
}

// newDeal returns the API v1 representation of the resource
func newDeal(c *gin.Context, model models.Deal) Deal {
	url := c.GetString(string(models.DBContextURL))

	return Deal{
		DefaultModel: model.DefaultModel,
		DealEditable: DealEditable{
			Title:       model.Title,
			Description: model.Description,
			Link:        model.Link,
			ExpiresAt:   model.ExpiresAt,
			Tags:        model.Tags,
		},
		Links: DealLinks{
			Self: fmt.Sprintf("%s/v1/deals/%s", url, model.ID),
		},
	}
}

type DealListResponse struct {
	Data       []Deal      `json:"data"`                                                          // List of deals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DealCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DealResponse `json:"data"`                                                          // List of created deals
}

func (t *DealCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, DealResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DealResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Deal   `json:"data"`                                                          // The deal
}

type DealQueryFilter struct {
	Search string `form:"search" filterField:"false"` // By string in title or description
	Tag    string `form:"tag" filterField:"false"`    // Filter by tag
	Active bool   `form:"active" filterField:"false"` // Only deals that have not expired yet
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first deal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of deals to return. Defaults to 50.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deals
// @Success		204
// @Router			/v1/deals [options]
func OptionsDeals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deals/{id} [options]
func OptionsDealDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Deal{})
}

// @Summary		Create deals
// @Description	Creates new deals
// @Tags			Deals
// @Produce		json
// @Success		201		{object}	DealCreateResponse
// @Failure		400		{object}	DealCreateResponse
// @Failure		500		{object}	DealCreateResponse
// @Param			deals	body		[]DealEditable	true	"Deals"
// @Router			/v1/deals [post]
func CreateDeals(c *gin.Context) {
	var deals []DealEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &deals)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DealCreateResponse{}

	for _, create := range deals {
		deal := create.model()
		err = models.DB.Create(&deal).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newDeal(c, deal)
		r.Data = append(r.Data, DealResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get deals
// @Description	Returns the list of deals, soonest-expiring first
// @Tags			Deals
// @Produce		json
// @Success		200		{object}	DealListResponse
// @Failure		400		{object}	DealListResponse
// @Failure		500		{object}	DealListResponse
// @Param			search	query		string	false	"Search for this string in title and description"
// @Param			tag		query		string	false	"Filter by tag"
// @Param			active	query		bool	false	"Only return deals that have not expired yet"
// @Param			offset	query		uint	false	"The offset of the first Deal returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Deals to return. Defaults to 50."
// @Router			/v1/deals [get]
func GetDeals(c *gin.Context) {
	var filter DealQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DealListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("deals.expires_at ASC")

	if filter.Search != "" {
		q = q.Where(
			models.DB.Where("title LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)).Or(
				models.DB.Where("description LIKE ?", fmt.Sprintf("%%%s%%", filter.Search)),
			),
		)
	}

	// Tags are stored JSON-encoded, a quoted substring match finds exact tags
	if filter.Tag != "" {
		q = q.Where("tags LIKE ?", fmt.Sprintf("%%%q%%", filter.Tag))
	}

	if filter.Active {
		q = q.Where("expires_at > ?", time.Now())
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 deals and set the limit
	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var deals []models.Deal
	err := q.Find(&deals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DealListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Deal, 0, len(deals))
	for _, deal := range deals {
		data = append(data, newDeal(c, deal))
	}

	c.JSON(http.StatusOK, DealListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get deal
// @Description	Returns a specific deal
// @Tags			Deals
// @Produce		json
// @Success		200	{object}	DealResponse
// @Failure		400	{object}	DealResponse
// @Failure		404	{object}	DealResponse
// @Failure		500	{object}	DealResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deals/{id} [get]
func GetDeal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	var deal models.Deal
	err = models.DB.First(&deal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDeal(c, deal)
	c.JSON(http.StatusOK, DealResponse{Data: &apiResource})
}

// @Summary		Update deal
// @Description	Updates an existing deal. Only values to be updated need to be specified.
// @Tags			Deals
// @Accept			json
// @Produce		json
// @Success		200		{object}	DealResponse
// @Failure		400		{object}	DealResponse
// @Failure		404		{object}	DealResponse
// @Failure		500		{object}	DealResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			deal	body		DealEditable	true	"Deal"
// @Router			/v1/deals/{id} [patch]
func UpdateDeal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	var deal models.Deal
	err = models.DB.First(&deal, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DealEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	var data DealEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&deal).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DealResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDeal(c, deal)
	c.JSON(http.StatusOK, DealResponse{Data: &apiResource})
}

// @Summary		Delete deal
// @Description	Deletes a deal
// @Tags			Deals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/deals/{id} [delete]
func DeleteDeal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var deal models.Deal
	err = models.DB.First(&deal, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&deal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
