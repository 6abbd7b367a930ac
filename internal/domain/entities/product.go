package entities

import "time"

type Product struct {
	ID            string    `json:"_id,omitempty"`
	Title         string    `json:"title"`
	Category      string    `json:"category,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image,omitempty"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	SupplierEmail string    `json:"supplierEmail"`
	CreatedAt     time.Time `json:"createdAt"`
}
