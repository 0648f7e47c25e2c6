package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"size:50;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt hash, never serialized
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	Address   string    `gorm:"size:255;not null" json:"address"`
	Orders    []Order   `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := NewID()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
