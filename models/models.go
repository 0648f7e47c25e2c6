package models

import "github.com/google/uuid"

// NewID returns a UUIDv7 string. V7 ids are time-ordered, so primary keys
// sort lexicographically in creation order.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
