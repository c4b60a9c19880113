package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// DELETE /admin/products/:id (soft delete)
func DeleteProduct(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid product ID"))
			return
		}

		if err := svc.Delete(c.Request.Context(), id); err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessNoData("1000", "Delete product successfully."))
	}
}
