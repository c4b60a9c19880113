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

// POST /admin/categories
func CreateCategory(svc services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		category, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.Success(category, "1000", "Create category successfully."))
	}
}

// GET /user/categories/:id
func GetCategoryByID(svc services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid category ID"))
			return
		}

		category, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(category, "1000", "Get category successfully."))
	}
}

// GET /user/categories and GET /admin/categories
func GetAllCategories(svc services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := store.CategoryFilter{Search: c.Query("search")}
		if v := c.Query("is_active"); v != "" {
			if isActive, err := strconv.ParseBool(v); err == nil {
				filter.IsActive = &isActive
			}
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
		c.JSON(http.StatusOK, models.Success(response, "1000", "List categories successfully."))
	}
}

// PUT /admin/categories/:id
func UpdateCategory(svc services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid category ID"))
			return
		}

		var req models.UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		category, err := svc.Update(c.Request.Context(), id, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(category, "1000", "Update category successfully."))
	}
}

// DELETE /admin/categories/:id (soft delete)
func DeleteCategory(svc services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid category ID"))
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessNoData("1000", "Delete category successfully."))
	}
}
