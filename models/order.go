package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusCompleted  OrderStatus = "completed"  // Fulfilled
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by customer or admin
)

// OrderStatuses lists every valid order status, in lifecycle order.
func OrderStatuses() []string {
	return []string{
		string(OrderStatusPending),
		string(OrderStatusProcessing),
		string(OrderStatusCompleted),
		string(OrderStatusCancelled),
	}
}

type Order struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerID  string      `gorm:"type:varchar(36);not null;index" json:"customer_id"`
	Customer    *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	OrderDate   time.Time   `gorm:"type:date;not null" json:"order_date"`
	TotalAmount int         `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		id, err := NewID()
		if err != nil {
			return err
		}
		o.ID = id
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	return nil
}
