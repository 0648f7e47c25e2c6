package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	customercontroller "github.com/Adibayuluthfiansyah/fullstack-test/controllers/customer"
)

func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB) {
	customers := r.Group("/customers")
	{
		customers.GET("", customercontroller.GetCustomers(db))
		customers.GET("/:id", customercontroller.GetCustomerByID(db))
		customers.POST("", customercontroller.CreateCustomer(db))
		customers.PUT("/:id", customercontroller.UpdateCustomer(db))
		customers.PATCH("/:id", customercontroller.UpdateCustomer(db))
		customers.DELETE("/:id", customercontroller.DeleteCustomer(db))
	}
}
