package orderitemcontroller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/repository"
	"github.com/Adibayuluthfiansyah/fullstack-test/response"
	"github.com/Adibayuluthfiansyah/fullstack-test/validation"
)

var createRules = []validation.Field{
	{Name: "order_id", Required: true, Kind: validation.String,
		Exists: &validation.Ref{Table: "orders"}},
	{Name: "product_id", Required: true, Kind: validation.String,
		Exists: &validation.Ref{Table: "products"}},
	{Name: "quantity", Required: true, Kind: validation.Integer, Min: validation.Int(1)},
	{Name: "price", Required: true, Kind: validation.Integer, Min: validation.Int(0)},
}

var updateRules = validation.Sometimes(createRules)

// GetOrderItems returns all order items, each with its product and its
// parent order (carrying the customer) embedded.
func GetOrderItems(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderItemRepository(db)
	return func(c *gin.Context) {
		items, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data order item.", err)
			return
		}
		response.OK(c, "Data order item berhasil diambil.", items)
	}
}

func GetOrderItemByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderItemRepository(db)
	return func(c *gin.Context) {
		item, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order Item tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengambil data order item.", err)
			return
		}
		response.OK(c, "Data order item berhasil ditemukan.", item)
	}
}

func CreateOrderItem(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderItemRepository(db)
	return func(c *gin.Context) {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, createRules, input, "")
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan order item.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		item, err := repo.Create(fields)
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan order item.", err)
			return
		}
		response.Created(c, "Order Item berhasil ditambahkan.", item)
	}
}

func UpdateOrderItem(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderItemRepository(db)
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order Item tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengupdate order item.", err)
			return
		}

		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, updateRules, input, id)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate order item.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		item, changed, err := repo.Update(id, fields)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate order item.", err)
			return
		}
		message := "Tidak ada perubahan pada data order item."
		if changed {
			message = "Order Item berhasil diupdate."
		}
		response.OK(c, message, item)
	}
}

func DeleteOrderItem(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewOrderItemRepository(db)
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Order Item tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal menghapus order item.", err)
			return
		}
		response.OK(c, "Order Item berhasil dihapus.", nil)
	}
}
