// SPDX-License-Identifier: Apache-2.0

// Package validators contains input validation helpers used by the service
// layer before data reaches the store.
package validators

import (
	"errors"

	"github.com/akhmadiev/storefront/models"
)

var (
	ErrEmptyProductName = errors.New("product name must not be empty")
	ErrNegativePrice    = errors.New("product price must not be negative")
	ErrNegativeQuantity = errors.New("product quantity must not be negative")
)

// ValidateProduct checks a full product payload as supplied on creation.
func ValidateProduct(product models.Product) error {
	if product.Name == "" {
		return ErrEmptyProductName
	}
	if product.Price < 0 {
		return ErrNegativePrice
	}
	if product.Quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}

// ValidateProductUpdate checks only the fields present in a partial update.
// Absent fields are not the validator's business.
func ValidateProductUpdate(update models.ProductUpdate) error {
	if update.Name != nil && *update.Name == "" {
		return ErrEmptyProductName
	}
	if update.Price != nil && *update.Price < 0 {
		return ErrNegativePrice
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return ErrNegativeQuantity
	}

	return nil
}
