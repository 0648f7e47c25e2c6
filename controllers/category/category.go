package categorycontroller

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
}

var updateRules = validation.Sometimes(createRules)

// GetCategories returns all categories.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCategoryRepository(db)
	return func(c *gin.Context) {
		categories, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data category.", err)
			return
		}
		response.OK(c, "Data category berhasil diambil.", categories)
	}
}

// GetCategoryByID returns a single category.
// URL param: /categories/:id
func GetCategoryByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCategoryRepository(db)
	return func(c *gin.Context) {
		category, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Category tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengambil data category.", err)
			return
		}
		response.OK(c, "Data category berhasil ditemukan.", category)
	}
}

// CreateCategory validates the payload against the strict rule set and
// inserts a new category.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCategoryRepository(db)
	return func(c *gin.Context) {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, createRules, input, "")
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan category.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		category, err := repo.Create(fields)
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan category.", err)
			return
		}
		response.Created(c, "Category berhasil ditambahkan.", category)
	}
}

// UpdateCategory applies a partial update. Only supplied fields are
// validated and written; the response message differs depending on whether
// anything actually changed.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCategoryRepository(db)
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Category tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengupdate category.", err)
			return
		}

		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, updateRules, input, id)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate category.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		category, changed, err := repo.Update(id, fields)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate category.", err)
			return
		}
		message := "Tidak ada perubahan pada data category."
		if changed {
			message = "Category berhasil diupdate."
		}
		response.OK(c, message, category)
	}
}

// DeleteCategory removes a category by id.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCategoryRepository(db)
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Category tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal menghapus category.", err)
			return
		}
		response.OK(c, "Category berhasil dihapus.", nil)
	}
}
