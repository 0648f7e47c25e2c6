package ordercontroller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
	"github.com/Adibayuluthfiansyah/fullstack-test/repository"
	"github.com/Adibayuluthfiansyah/fullstack-test/response"
	"github.com/Adibayuluthfiansyah/fullstack-test/validation"
)

// status is optional even on create; the model defaults it to pending.
var createRules = []validation.Field{
	{Name: "customer_id", Required: true, Kind: validation.String,
		Exists: &validation.Ref{Table: "customers"}},
	{Name: "order_date", Required: true, Kind: validation.Date},
	{Name: "total_amount", Required: true, Kind: validation.Integer, Min: validation.Int(0)},
	{Name: "status", Kind: validation.String, Enum: models.OrderStatuses()},
}

var updateRules = validation.Sometimes(createRules)

// GetOrders returns all orders with customer and items (each item carrying
// its product) embedded.
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderRepository(db)
	return func(c *gin.Context) {
		orders, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data order.", err)
			return
		}
		response.OK(c, "Data order berhasil diambil.", orders)
	}
}

func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderRepository(db)
	return func(c *gin.Context) {
		order, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengambil data order.", err)
			return
		}
		response.OK(c, "Data order berhasil ditemukan.", order)
	}
}

func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderRepository(db)
	return func(c *gin.Context) {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, createRules, input, "")
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan order.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		order, err := repo.Create(fields)
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan order.", err)
			return
		}
		response.Created(c, "Order berhasil ditambahkan.", order)
	}
}

func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderRepository(db)
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengupdate order.", err)
			return
		}

		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, updateRules, input, id)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate order.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		order, changed, err := repo.Update(id, fields)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate order.", err)
			return
		}
		message := "Tidak ada perubahan pada data order."
		if changed {
			message = "Order berhasil diupdate."
		}
		response.OK(c, message, order)
	}
}

func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderRepository(db)
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal menghapus order.", err)
			return
		}
		response.OK(c, "Order berhasil dihapus.", nil)
	}
}
