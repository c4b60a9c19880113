package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/middleware"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// GET /user/
func GetUser(svc services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		user, err := svc.GetMe(c.Request.Context(), userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(user, "1000", "Get user successfully."))
	}
}

// PUT /user/
func UpdateUser(svc services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		var req models.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		user, err := svc.UpdateMe(c.Request.Context(), userID, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(user, "1000", "Update user successfully."))
	}
}

// GET /admin/users
func GetAllUsers(svc services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(users, "1000", "List users successfully."))
	}
}
