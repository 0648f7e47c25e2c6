package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Get(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(fields map[string]any) (*models.Product, error) {
	var product models.Product
	applyProductFields(&product, fields)
	if err := r.db.Create(&product).Error; err != nil {
		return nil, err
	}
	return r.Get(product.ID)
}

func (r *ProductRepository) Update(id string, fields map[string]any) (*models.Product, bool, error) {
	product, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	changed := applyProductFields(product, fields)
	if changed {
		// The entity carries its preloaded Category; keep the save to
		// the products row only.
		if err := r.db.Omit(clause.Associations).Save(product).Error; err != nil {
			return nil, false, err
		}
	}
	fresh, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	return fresh, changed, nil
}

func (r *ProductRepository) Delete(id string) error {
	product, err := r.Get(id)
	if err != nil {
		return err
	}
	return r.db.Delete(product).Error
}

func applyProductFields(p *models.Product, fields map[string]any) bool {
	changed := false
	if v, ok := fields["name"].(string); ok && p.Name != v {
		p.Name = v
		changed = true
	}
	if v, ok := fields["description"].(string); ok && p.Description != v {
		p.Description = v
		changed = true
	}
	if v, ok := fields["price"].(int); ok && p.Price != v {
		p.Price = v
		changed = true
	}
	if v, ok := fields["stock"].(int); ok && p.Stock != v {
		p.Stock = v
		changed = true
	}
	if v, ok := fields["category_id"].(string); ok && p.CategoryID != v {
		p.CategoryID = v
		p.Category = nil // stale preload, re-fetched after save
		changed = true
	}
	return changed
}
