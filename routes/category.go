package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categorycontroller "github.com/Adibayuluthfiansyah/fullstack-test/controllers/category"
)

func SetupCategoryRoutes(r *gin.Engine, db *gorm.DB) {
	categories := r.Group("/categories")
	{
		categories.GET("", categorycontroller.GetCategories(db))
		categories.GET("/:id", categorycontroller.GetCategoryByID(db))
		categories.POST("", categorycontroller.CreateCategory(db))
		categories.PUT("/:id", categorycontroller.UpdateCategory(db))
		categories.PATCH("/:id", categorycontroller.UpdateCategory(db))
		categories.DELETE("/:id", categorycontroller.DeleteCategory(db))
	}
}
