package models

// Product is a catalog entry. It has no relation to users; any
// authenticated caller may read or modify any product.
type Product struct {
	// ID is the server-assigned unique identifier of the product.
	ID int64 `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Price is the unit price. Non-negative.
	Price float64 `json:"price"`

	// Quantity is the number of units in stock. Non-negative.
	Quantity int64 `json:"quantity"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductUpdate describes a partial update of a product. Nil fields are
// left unchanged; only non-nil fields overwrite stored values.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Quantity *int64
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Quantity == nil
}
