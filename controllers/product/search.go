package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/search"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// GET /user/search?q=iphone&filter=category_id=...&sort=price:asc
func SearchProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := search.Query{
			Query:  c.Query("q"),
			Filter: c.Query("filter"),
			Limit:  20,
		}
		if v := c.Query("sort"); v != "" {
			query.Sort = strings.Split(v, ",")
		}
		if v := c.Query("limit"); v != "" {
			if limit, err := strconv.ParseInt(v, 10, 64); err == nil && limit > 0 {
				query.Limit = limit
			}
		}
		if v := c.Query("offset"); v != "" {
			if offset, err := strconv.ParseInt(v, 10, 64); err == nil && offset >= 0 {
				query.Offset = offset
			}
		}

		result, err := svc.Search(c.Request.Context(), query)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(result, "1000", "Search successfully."))
	}
}
