package repository

import (
	"gorm.io/gorm"

	"github.com/Adibayuluthfiansyah/fullstack-test/models"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Get(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *CategoryRepository) Create(fields map[string]any) (*models.Category, error) {
	var category models.Category
	applyCategoryFields(&category, fields)
	if err := r.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return r.Get(category.ID)
}

func (r *CategoryRepository) Update(id string, fields map[string]any) (*models.Category, bool, error) {
	category, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	changed := applyCategoryFields(category, fields)
	if changed {
		if err := r.db.Save(category).Error; err != nil {
			return nil, false, err
		}
	}
	fresh, err := r.Get(id)
	if err != nil {
		return nil, false, err
	}
	return fresh, changed, nil
}

func (r *CategoryRepository) Delete(id string) error {
	category, err := r.Get(id)
	if err != nil {
		return err
	}
	return r.db.Delete(category).Error
}

func applyCategoryFields(c *models.Category, fields map[string]any) bool {
	changed := false
	if v, ok := fields["name"].(string); ok && c.Name != v {
		c.Name = v
		changed = true
	}
	if v, ok := fields["description"].(string); ok && c.Description != v {
		c.Description = v
		changed = true
	}
	return changed
}
