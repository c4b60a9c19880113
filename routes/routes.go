package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/services"
)

// Services bundles everything the route groups need.
type Services struct {
	Auth       services.AuthService
	Users      services.UserService
	Products   services.ProductService
	Categories services.CategoryService
	Cart       services.CartService
}

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, svcs Services) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, svcs)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, svcs)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, svcs)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "Service is running healthy!")
	})
}
