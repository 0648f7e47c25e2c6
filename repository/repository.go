// Package repository wraps all table access behind one type per entity.
// Every repository exposes List, Get, Create, Update and Delete; Update
// reports whether any supplied field actually changed the stored row, which
// the controllers use to pick their response message.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports that no row matched the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrHasOrders blocks deleting a customer that is still referenced
	// by at least one order.
	ErrHasOrders = errors.New("customer has orders")
)

// notFound maps gorm's sentinel onto ours so callers never import gorm.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
