package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
)

type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

// List returns every order item with its product and its parent order,
// the order carrying its customer.
func (r *OrderItemRepository) List() ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.db.Preload("Order.Customer").Preload("Product").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *OrderItemRepository) Get(id string) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := r.db.Preload("Order.Customer").Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *OrderItemRepository) Create(fields map[string]any) (*models.OrderItem, error) {
	var item models.OrderItem
	applyOrderItemFields(&item, fields)
	if err := r.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return r.Get(item.ID)
}

func (r *OrderItemRepository) Update(id string, fields map[string]any) (*models.OrderItem, bool, error) {
	item, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	changed := applyOrderItemFields(item, fields)
	if changed {
		if err := r.db.Omit(clause.Associations).Save(item).Error; err != nil {
			return nil, false, err
		}
	}
	fresh, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	return fresh, changed, nil
}

func (r *OrderItemRepository) Delete(id string) error {
	item, err := r.Get(id)
	if err != nil {
		return err
	}
	return r.db.Omit(clause.Associations).Delete(item).Error
}

func applyOrderItemFields(i *models.OrderItem, fields map[string]any) bool {
	changed := false
	if v, ok := fields["order_id"].(string); ok && i.OrderID != v {
		i.OrderID = v
		i.Order = nil
		changed = true
	}
	if v, ok := fields["product_id"].(string); ok && i.ProductID != v {
		i.ProductID = v
		i.Product = nil
		changed = true
	}
	if v, ok := fields["quantity"].(int); ok && i.Quantity != v {
		i.Quantity = v
		changed = true
	}
	if v, ok := fields["price"].(int); ok && i.Price != v {
		i.Price = v
		changed = true
	}
	return changed
}
