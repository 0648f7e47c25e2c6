package productcontroller

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
	{Name: "name", Required: true, Kind: validation.String, MaxLen: 255},
	{Name: "description", Required: true, Kind: validation.String},
	{Name: "price", Required: true, Kind: validation.Integer, Min: validation.Int(0)},
	{Name: "stock", Required: true, Kind: validation.Integer, Min: validation.Int(0)},
	{Name: "category_id", Required: true, Kind: validation.String,
		Exists: &validation.Ref{Table: "categories"}},
}

var updateRules = validation.Sometimes(createRules)

// GetProducts returns all products with their category embedded.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		products, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data product.", err)
			return
		}
		response.OK(c, "Data product berhasil diambil.", products)
	}
}

func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		product, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Product tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengambil data product.", err)
			return
		}
		response.OK(c, "Data product berhasil ditemukan.", product)
	}
}

func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, createRules, input, "")
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan product.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		product, err := repo.Create(fields)
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan product.", err)
			return
		}
		response.Created(c, "Product berhasil ditambahkan.", product)
	}
}

func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Product tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengupdate product.", err)
			return
		}

		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, updateRules, input, id)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate product.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		product, changed, err := repo.Update(id, fields)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate product.", err)
			return
		}
		message := "Tidak ada perubahan pada data product."
		if changed {
			message = "Product berhasil diupdate."
		}
		response.OK(c, message, product)
	}
}

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewProductRepository(db)
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Product tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal menghapus product.", err)
			return
		}
		response.OK(c, "Product berhasil dihapus.", nil)
	}
}
