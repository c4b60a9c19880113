package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// POST /admin/products
func CreateProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		product, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.Success(product, "1000", "Create product successfully."))
	}
}

// POST /admin/products/bulk
func BulkCreateProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqs []models.CreateProductRequest
		if err := c.ShouldBindJSON(&reqs); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		products, err := svc.BulkCreate(c.Request.Context(), reqs)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.Success(products, "1000", "Bulk create products successfully."))
	}
}
