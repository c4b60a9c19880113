package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// GET /user/products and GET /admin/products
func GetProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.ProductFilter{
			Search:  c.Query("search"),
			SortBy:  c.DefaultQuery("sort_by", "created_at"),
			SortDir: c.DefaultQuery("order", "desc"),
		}

		if v := c.Query("category_id"); v != "" {
			categoryID, err := uuid.Parse(v)
			if err != nil {
				apperrors.Respond(c, apperrors.Validation("Invalid category_id"))
				return
			}
			filter.CategoryID = &categoryID
		}
		if v := c.Query("is_active"); v != "" {
			isActive, err := strconv.ParseBool(v)
			if err != nil {
				apperrors.Respond(c, apperrors.Validation("Invalid is_active"))
				return
			}
			filter.IsActive = &isActive
		}
		if v := c.Query("page"); v != "" {
			if page, err := strconv.Atoi(v); err == nil {
				filter.Page = page
			}
		}
		if v := c.Query("limit"); v != "" {
			if limit, err := strconv.Atoi(v); err == nil {
				filter.Limit = limit
			}
		}

		response, err := svc.List(c.Request.Context(), filter)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(response, "1000", "List products successfully."))
	}
}
