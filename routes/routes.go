package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every resource group
// plus the health and metrics endpoints.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupCategoryRoutes(r, db)
	SetupCustomerRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupOrderItemRoutes(r, db)

	r.GET("/health", healthHandler(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	}
}
