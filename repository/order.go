package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns every order with its customer and its items, each item
// carrying its product.
func (r *OrderRepository) List() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Customer").Preload("Items.Product").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) Get(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Customer").Preload("Items.Product").First(&order, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *OrderRepository) Create(fields map[string]any) (*models.Order, error) {
	var order models.Order
	applyOrderFields(&order, fields)
	if err := r.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return r.Get(order.ID)
}

func (r *OrderRepository) Update(id string, fields map[string]any) (*models.Order, bool, error) {
	order, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	changed := applyOrderFields(order, fields)
	if changed {
		if err := r.db.Omit(clause.Associations).Save(order).Error; err != nil {
			return nil, false, err
		}
	}
	fresh, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	return fresh, changed, nil
}

func (r *OrderRepository) Delete(id string) error {
	order, err := r.Get(id)
	if err != nil {
		return err
	}
	return r.db.Omit(clause.Associations).Delete(order).Error
}

func applyOrderFields(o *models.Order, fields map[string]any) bool {
	changed := false
	if v, ok := fields["customer_id"].(string); ok && o.CustomerID != v {
		o.CustomerID = v
		o.Customer = nil
		changed = true
	}
	if v, ok := fields["order_date"].(time.Time); ok && !o.OrderDate.Equal(v) {
		o.OrderDate = v
		changed = true
	}
	if v, ok := fields["total_amount"].(int); ok && o.TotalAmount != v {
		o.TotalAmount = v
		changed = true
	}
	if v, ok := fields["status"].(string); ok && o.Status != models.OrderStatus(v) {
		o.Status = models.OrderStatus(v)
		changed = true
	}
	return changed
}
