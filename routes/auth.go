package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/Jonathan-dev2002/minishop-api/controllers/authentication"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, svcs Services) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(svcs.Auth))
		authGroup.POST("/login", authControllers.Login(svcs.Auth))
	}
}
