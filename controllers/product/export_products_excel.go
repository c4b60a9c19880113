package productcontroller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/services"
	"github.com/Jonathan-dev2002/minishop-api/store"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Active products by default; pass is_active=false to export the
		// soft-deleted ones instead.
		filter := store.ProductFilter{Limit: 1000}
		if v := c.Query("is_active"); v != "" {
			if isActive, err := strconv.ParseBool(v); err == nil {
				filter.IsActive = &isActive
			}
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apperrors.Respond(c, apperrors.Internal("Failed to create Excel sheet", err))
			return
		}

		headers := []string{
			"ID", "CategoryID", "CategoryName", "Name", "Description",
			"Price", "Stock", "IsActive", "AverageRating", "ReviewCount",
			"CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for page := 1; ; page++ {
			filter.Page = page
			response, err := svc.List(c.Request.Context(), filter)
			if err != nil {
				apperrors.Respond(c, err)
				return
			}
			if len(response.Data) == 0 {
				break
			}

			for _, p := range response.Data {
				row := sheet.AddRow()
				row.AddCell().SetValue(p.ID.String())
				row.AddCell().SetValue(p.CategoryID.String())
				row.AddCell().SetValue(p.CategoryName)
				row.AddCell().SetValue(p.Name)
				if p.Description != nil {
					row.AddCell().SetValue(*p.Description)
				} else {
					row.AddCell().SetValue("")
				}
				row.AddCell().SetValue(p.Price.String())
				row.AddCell().SetValue(p.Stock)
				row.AddCell().SetValue(p.IsActive)
				row.AddCell().SetValue(p.AverageRating)
				row.AddCell().SetValue(p.ReviewCount)
				row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			apperrors.Respond(c, apperrors.Internal("Failed to write Excel file", err))
			return
		}
	}
}
