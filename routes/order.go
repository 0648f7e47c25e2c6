package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/Adibayuluthfiansyah/fullstack-test/controllers/order"
	orderitemcontroller "github.com/Adibayuluthfiansyah/fullstack-test/controllers/orderitem"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("", ordercontroller.GetOrders(db))
		orders.GET("/:id", ordercontroller.GetOrderByID(db))
		orders.POST("", ordercontroller.CreateOrder(db))
		orders.PUT("/:id", ordercontroller.UpdateOrder(db))
		orders.PATCH("/:id", ordercontroller.UpdateOrder(db))
		orders.DELETE("/:id", ordercontroller.DeleteOrder(db))
	}
}

func SetupOrderItemRoutes(r *gin.Engine, db *gorm.DB) {
	items := r.Group("/order-items")
	{
		items.GET("", orderitemcontroller.GetOrderItems(db))
		items.GET("/:id", orderitemcontroller.GetOrderItemByID(db))
		items.POST("", orderitemcontroller.CreateOrderItem(db))
		items.PUT("/:id", orderitemcontroller.UpdateOrderItem(db))
		items.PATCH("/:id", orderitemcontroller.UpdateOrderItem(db))
		items.DELETE("/:id", orderitemcontroller.DeleteOrderItem(db))
	}
}
