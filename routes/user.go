package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Jonathan-dev2002/minishop-api/controllers/cart"
	productControllers "github.com/Jonathan-dev2002/minishop-api/controllers/product"
	userControllers "github.com/Jonathan-dev2002/minishop-api/controllers/user"
	"github.com/Jonathan-dev2002/minishop-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, svcs Services) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(svcs.Users))
		userGroup.PUT("/", userControllers.UpdateUser(svcs.Users))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(svcs.Cart))
			cartGroup.POST("/", cartControllers.AddCartItem(svcs.Cart))
			cartGroup.PUT("/items/:item_id", cartControllers.UpdateCartItem(svcs.Cart))
			cartGroup.DELETE("/items/:item_id", cartControllers.RemoveCartItem(svcs.Cart))
		}

		// ──────────────── Browse & Search Products ────────────────
		// /search lives beside /products/:id because gin's router cannot
		// mix a static segment with a wildcard at the same position.
		userGroup.GET("/products", productControllers.GetProducts(svcs.Products))
		userGroup.GET("/products/:id", productControllers.GetProductByID(svcs.Products))
		userGroup.GET("/search", productControllers.SearchProducts(svcs.Products))

		// ──────────────── Browse Categories ────────────────
		userGroup.GET("/categories", productControllers.GetAllCategories(svcs.Categories))
		userGroup.GET("/categories/:id", productControllers.GetCategoryByID(svcs.Categories))
	}
}
