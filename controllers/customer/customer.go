package customercontroller

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
	{Name: "name", Required: true, Kind: validation.String, MaxLen: 50},
	{Name: "email", Required: true, Kind: validation.Email, MaxLen: 50,
		Unique: &validation.Ref{Table: "customers", Column: "email"}},
	{Name: "password", Required: true, Kind: validation.String, MinLen: 6, MaxLen: 50},
	{Name: "phone", Required: true, Kind: validation.String, MaxLen: 15},
	{Name: "address", Required: true, Kind: validation.String, MaxLen: 255},
}

// On update the uniqueness check excludes the customer's own row, so
// resubmitting an unchanged email passes.
var updateRules = validation.Sometimes(createRules)

func GetCustomers(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCustomerRepository(db)
	return func(c *gin.Context) {
		customers, err := repo.List()
		if err != nil {
			response.FailInternal(c, "Gagal mengambil data customer.", err)
			return
		}
		response.OK(c, "Data customer berhasil diambil.", customers)
	}
}

func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCustomerRepository(db)
	return func(c *gin.Context) {
		customer, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Customer tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengambil data customer.", err)
			return
		}
		response.OK(c, "Data customer berhasil ditemukan.", customer)
	}
}

// CreateCustomer registers a customer. The password is bcrypt-hashed by the
// repository and never appears in any response.
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCustomerRepository(db)
	return func(c *gin.Context) {
		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, createRules, input, "")
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan customer.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		customer, err := repo.Create(fields)
		if err != nil {
			response.FailInternal(c, "Gagal menambahkan customer.", err)
			return
		}
		response.Created(c, "Customer berhasil ditambahkan.", customer)
	}
}

func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCustomerRepository(db)
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := repo.Get(id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, response.KindNotFound, "Customer tidak ditemukan.")
				return
			}
			response.FailInternal(c, "Gagal mengupdate customer.", err)
			return
		}

		var input map[string]any
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body harus berupa JSON yang valid.")
			return
		}

		fields, verrs, err := validation.Run(db, updateRules, input, id)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate customer.", err)
			return
		}
		if verrs != nil {
			response.FailValidation(c, verrs)
			return
		}

		customer, changed, err := repo.Update(id, fields)
		if err != nil {
			response.FailInternal(c, "Gagal mengupdate customer.", err)
			return
		}
		message := "Tidak ada perubahan pada data customer."
		if changed {
			message = "Customer berhasil diupdate."
		}
		response.OK(c, message, customer)
	}
}

// DeleteCustomer removes a customer unless any order still references it.
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
	repo := repository.NewCustomerRepository(db)
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				response.Fail(c, response.KindNotFound, "Customer tidak ditemukan.")
			case errors.Is(err, repository.ErrHasOrders):
				response.Fail(c, response.KindConflict, "Customer tidak dapat dihapus karena memiliki data order.")
			default:
				response.FailInternal(c, "Gagal menghapus customer.", err)
			}
			return
		}
		response.OK(c, "Customer berhasil dihapus.", nil)
	}
}
