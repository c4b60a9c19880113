package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// POST /admin/products/import-excel
// Expected columns: CategoryID, Name, Description, Price, Stock, IsActive.
// Valid rows go through the bulk-create path, which also pushes the batch to
// the search index.
func ImportProductsFromExcel(svc services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Excel file is required"))
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			apperrors.Respond(c, apperrors.Internal("Failed to open Excel file", err))
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Failed to parse Excel file"))
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			apperrors.Respond(c, apperrors.Validation("Excel file is empty or missing header row"))
			return
		}

		sheet := xlFile.Sheets[0]
		var requests []models.CreateProductRequest
		skippedCount := 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			categoryID, errCategory := uuid.Parse(get(0))
			name := get(1)
			description := get(2)
			price, errPrice := decimal.NewFromString(get(3))
			stock, _ := strconv.Atoi(get(4))

			if name == "" || errCategory != nil || errPrice != nil {
				skippedCount++
				continue
			}

			req := models.CreateProductRequest{
				CategoryID: categoryID,
				Name:       name,
				Price:      price,
				Stock:      stock,
			}
			if description != "" {
				req.Description = &description
			}
			if v := get(5); v != "" {
				if isActive, err := strconv.ParseBool(v); err == nil {
					req.IsActive = &isActive
				}
			}
			requests = append(requests, req)
		}

		if len(requests) == 0 {
			apperrors.Respond(c, apperrors.Validation("No valid rows in Excel file"))
			return
		}

		products, err := svc.BulkCreate(c.Request.Context(), requests)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, models.Success(gin.H{
			"created_count": len(products),
			"skipped_count": skippedCount,
		}, "1000", "Import completed."))
	}
}
