package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// POST /admin/search/sync — push all active products without wiping the index.
func SyncProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.SyncAll(c.Request.Context())
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(gin.H{"synced_count": count}, "1000", "Sync products to search index successfully."))
	}
}

// POST /admin/search/reindex — full rebuild: wipe the index, then repopulate.
func ReindexProducts(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.Reindex(c.Request.Context())
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(gin.H{"indexed_count": count}, "1000", "Reindex completed. Index is now up-to-date."))
	}
}
