package v1

import (
	"fmt"

	"github.com/Farhad030619/UniWallet/internal/httputil"
	"github.com/Farhad030619/UniWallet/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Transaction | models.Goal | models.Badge | models.Post | models.Deal](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// stringFilters applies the name, note and search filters to a list query.
// For resources without a name field, pass an empty string for name.
func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
