package repository

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) Get(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) Create(fields map[string]any) (*models.Customer, error) {
	var customer models.Customer
	if _, err := applyCustomerFields(&customer, fields); err != nil {
		return nil, err
	}
	if err := r.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return r.Get(customer.ID)
}

func (r *CustomerRepository) Update(id string, fields map[string]any) (*models.Customer, bool, error) {
	customer, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	changed, err := applyCustomerFields(customer, fields)
	if err != nil {
		return nil, false, err
	}
	if changed {
		if err := r.db.Save(customer).Error; err != nil {
			return nil, false, err
		}
	}
	fresh, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	return fresh, changed, nil
}

// Delete removes a customer, refusing while any order still references it.
// The existence check and the delete are two statements, so an order created
// in between can slip past the guard; the API accepts that window.
func (r *CustomerRepository) Delete(id string) error {
	customer, err := r.Get(id)
	if err != nil {
		return err
	}
	var orders int64
	if err := r.db.Model(&models.Order{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
		return err
	}
	if orders > 0 {
		return ErrHasOrders
	}
	return r.db.Delete(customer).Error
}

func applyCustomerFields(c *models.Customer, fields map[string]any) (bool, error) {
	changed := false
	if v, ok := fields["name"].(string); ok && c.Name != v {
		c.Name = v
		changed = true
	}
	if v, ok := fields["email"].(string); ok && c.Email != v {
		c.Email = v
		changed = true
	}
	if v, ok := fields["phone"].(string); ok && c.Phone != v {
		c.Phone = v
		changed = true
	}
	if v, ok := fields["address"].(string); ok && c.Address != v {
		c.Address = v
		changed = true
	}
	// A supplied password always rewrites the hash, so it always counts
	// as a change.
	if v, ok := fields["password"].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			return changed, err
		}
		c.Password = string(hash)
		changed = true
	}
	return changed, nil
}
