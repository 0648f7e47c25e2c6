package productcontroller

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/repository"
	"github.com/Adibayuluthfiansyah/fullstack-test/response"
)

// ExportProductsToExcel streams the full product list as an .xlsx download,
// one row per product with its category name resolved.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		products, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data product.", err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			response.FailInternal(c, "Gagal membuat file Excel.", err)
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Stock",
			"CategoryID", "CategoryName", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.CategoryID)
			if p.Category != nil {
				row.AddCell().SetValue(p.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			response.FailInternal(c, "Gagal menulis file Excel.", err)
			return
		}
	}
}
