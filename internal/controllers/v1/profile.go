package v1

import (
	"net/http"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

type ProfileEditable struct {
	DisplayName string `json:"displayName" example:"Fredrik Åkare" default:""`                // Name shown on the profile screen
	School      string `json:"school" example:"KTH Royal Institute of Technology" default:""` // The school or university
	Bio         string `json:"bio" example:"CS student and avid budgeter" default:""`         // Free text about the user
	PhotoURL    string `json:"photoUrl" example:"https://example.com/photo.jpg" default:""`   // Data URI or remote URL of the profile photo
}

// model returns the database resource for the API representation of the editable fields
func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		DisplayName: editable.DisplayName,
		School:      editable.School,
		Bio:         editable.Bio,
		PhotoURL:    editable.PhotoURL,
	}
}

type ProfileLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/profile"`  // The profile itself
	Badges string `json:"badges" example:"https://example.com/api/v1/badges"` // The badges shown on the profile screen
	Goals  string `json:"goals" example:"https://example.com/api/v1/goals"`   // The saving goals shown on the profile screen
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

// newProfile returns the API v1 representation of the resource
func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			DisplayName: model.DisplayName,
			School:      model.School,
			Bio:         model.Bio,
			PhotoURL:    model.PhotoURL,
		},
		Links: ProfileLinks{
			Self:   url + "/v1/profile",
			Badges: url + "/v1/badges",
			Goals:  url + "/v1/goals",
		},
	}
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"the body of your request contains invalid or un-parseable data"` // The error, if any occurred
	Data  *Profile `json:"data"`                                                                           // The profile
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile. On first access, the profile is created with default content.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	profile, err := models.GetProfile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}

// @Summary		Update profile
// @Description	Updates the profile. Only values to be updated need to be specified, all other fields are left as they are.
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	profile, err := models.GetProfile()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	// Bind the data for the patch
	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &apiResource})
}
