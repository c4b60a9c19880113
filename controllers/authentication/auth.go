package authControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// POST /auth/register
func Register(svc services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		if err := svc.Register(c.Request.Context(), req); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessNoData("1000", "Register successfully."))
	}
}

// POST /auth/login
func Login(svc services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		response, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(response, "1000", "Login successfully."))
	}
}
