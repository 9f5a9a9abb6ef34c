package v1

import (
	"fmt"
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterPostRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsPosts)
		r.GET("", GetPosts)
		r.POST("", CreatePosts)
	}
	{
		r.OPTIONS("/:id", OptionsPostDetail)
		r.GET("/:id", GetPost)
		r.PATCH("/:id", UpdatePost)
		r.DELETE("/:id", DeletePost)
	}
	{
		r.OPTIONS("/:id/like", OptionsPostLike)
		r.POST("/:id/like", LikePost)
	}
}

type PostEditable struct {
	Text     string `json:"text" example:"Just hit 50% of my laptop goal!" default:""`         // Text of the post
	ImageURL string `json:"imageUrl" example:"https://example.com/celebration.jpg" default:""` // Optional image for the post
}

// model returns the database resource for the API representation of the editable fields
func (editable PostEditable) model() models.Post {
	return models.Post{
		Text:     editable.Text,
		ImageURL: editable.ImageURL,
	}
}

type PostLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/posts/d1b7fa8b-c916-4d30-ae07-b673c0b87f5f"`      // The post itself
	Like string `json:"like" example:"https://example.com/api/v1/posts/d1b7fa8b-c916-4d30-ae07-b673c0b87f5f/like"` // Increments the like counter
}

type Post struct {
	models.DefaultModel
	PostEditable
	Author       string    `json:"author" example:"Fredrik Åkare"`                // Display name of the author
	AuthorAvatar string    `json:"authorAvatar" example:"data:image/svg+xml,..."` // Avatar of the author
	Likes        int       `json:"likes" example:"12"`                            // Number of likes
	Comments     int       `json:"comments" example:"3"`                          // Number of comments
	Links        PostLinks `json:"links"`
}

// newPost returns the API v1 representation of the resource
func newPost(c *gin.Context, model models.Post) Post {
	url := c.GetString(string(models.DBContextURL))

	return Post{
		DefaultModel: model.DefaultModel,
		PostEditable: PostEditable{
			Text:     model.Text,
			ImageURL: model.ImageURL,
		},
		Author:       model.Author,
		AuthorAvatar: model.AuthorAvatar,
		Likes:        model.Likes,
		Comments:     model.Comments,
		Links: PostLinks{
			Self: fmt.Sprintf("%s/v1/posts/%s", url, model.ID),
			Like: fmt.Sprintf("%s/v1/posts/%s/like", url, model.ID),
		},
	}
}

type PostListResponse struct {
	Data       []Post      `json:"data"`                                                          // List of posts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PostCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PostResponse `json:"data"`                                                          // List of created posts
}

func (t *PostCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, PostResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PostResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Post   `json:"data"`                                                          // The post
}

type PostQueryFilter struct {
	Author string `form:"author" filterField:"false"` // Filter by author
	Search string `form:"search" filterField:"false"` // By string in the text
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first post returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of posts to return. Defaults to 50.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Router			/v1/posts [options]
func OptionsPosts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [options]
func OptionsPostDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Post{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id}/like [options]
func OptionsPostLike(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Post{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create posts
// @Description	Creates new posts. The author is set from the current profile.
// @Tags			Posts
// @Produce		json
// @Success		201		{object}	PostCreateResponse
// @Failure		400		{object}	PostCreateResponse
// @Failure		500		{object}	PostCreateResponse
// @Param			posts	body		[]PostEditable	true	"Posts"
// @Router			/v1/posts [post]
func CreatePosts(c *gin.Context) {
	var posts []PostEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &posts)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostCreateResponse{
			Error: &e,
		})
		return
	}

	// The author fields are snapshots of the profile at creation time
	profile, err := models.GetProfile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PostCreateResponse{}

	for _, create := range posts {
		post := create.model()
		post.Author = profile.DisplayName
		post.AuthorAvatar = profile.PhotoURL

		err = models.DB.Create(&post).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newPost(c, post)
		r.Data = append(r.Data, PostResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get posts
// @Description	Returns the feed, most recent post first
// @Tags			Posts
// @Produce		json
// @Success		200		{object}	PostListResponse
// @Failure		400		{object}	PostListResponse
// @Failure		500		{object}	PostListResponse
// @Param			author	query		string	false	"Filter by author"
// @Param			search	query		string	false	"Search for this string in the post text"
// @Param			offset	query		uint	false	"The offset of the first Post returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of Posts to return. Defaults to 50."
// @Router			/v1/posts [get]
func GetPosts(c *gin.Context) {
	var filter PostQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PostListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("posts.created_at DESC")

	if filter.Author != "" {
		q = q.Where("author LIKE ?", fmt.Sprintf("%%%s%%", filter.Author))
	}

	if filter.Search != "" {
		q = q.Where("text LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 posts and set the limit
	limit := 50
	if filter.Limit != 0 {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var posts []models.Post
	err := q.Find(&posts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Post, 0, len(posts))
	for _, post := range posts {
		data = append(data, newPost(c, post))
	}

	c.JSON(http.StatusOK, PostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get post
// @Description	Returns a specific post
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostResponse
// @Failure		400	{object}	PostResponse
// @Failure		404	{object}	PostResponse
// @Failure		500	{object}	PostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [get]
func GetPost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPost(c, post)
	c.JSON(http.StatusOK, PostResponse{Data: &apiResource})
}

// @Summary		Update post
// @Description	Updates an existing post. Only values to be updated need to be specified.
// @Tags			Posts
// @Accept			json
// @Produce		json
// @Success		200		{object}	PostResponse
// @Failure		400		{object}	PostResponse
// @Failure		404		{object}	PostResponse
// @Failure		500		{object}	PostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			post	body		PostEditable	true	"Post"
// @Router			/v1/posts/{id} [patch]
func UpdatePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PostEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var data PostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&post).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPost(c, post)
	c.JSON(http.StatusOK, PostResponse{Data: &apiResource})
}

// @Summary		Like post
// @Description	Increments the like counter of a post
// @Tags			Posts
// @Produce		json
// @Success		200	{object}	PostResponse
// @Failure		400	{object}	PostResponse
// @Failure		404	{object}	PostResponse
// @Failure		500	{object}	PostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id}/like [post]
func LikePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&post).Update("likes", gorm.Expr("likes + 1")).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	// Re-read so the response reflects the incremented counter
	err = models.DB.First(&post, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPost(c, post)
	c.JSON(http.StatusOK, PostResponse{Data: &apiResource})
}

// @Summary		Delete post
// @Description	Deletes a post
// @Tags			Posts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var post models.Post
	err = models.DB.First(&post, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&post).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
