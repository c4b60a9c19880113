package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/Jonathan-dev2002/minishop-api/controllers/cart"
	productControllers "github.com/Jonathan-dev2002/minishop-api/controllers/product"
	userControllers "github.com/Jonathan-dev2002/minishop-api/controllers/user"
	"github.com/Jonathan-dev2002/minishop-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, svcs Services) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(svcs.Users))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(svcs.Products))
			productAdmin.POST("/bulk", productControllers.BulkCreateProducts(svcs.Products))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(svcs.Products))
			productAdmin.GET("", productControllers.GetProducts(svcs.Products))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(svcs.Products))
			productAdmin.POST("/import-excel", productControllers.ImportProductsFromExcel(svcs.Products))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(svcs.Products))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(svcs.Categories))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(svcs.Categories))
			categoryAdmin.GET("", productControllers.GetAllCategories(svcs.Categories))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(svcs.Categories))
		}

		// ─────────── Search Index Maintenance ───────────
		searchAdmin := adminGroup.Group("/search")
		{
			searchAdmin.POST("/sync", productControllers.SyncProducts(svcs.Products))
			searchAdmin.POST("/reindex", productControllers.ReindexProducts(svcs.Products))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(svcs.Cart))
		}
	}
}
