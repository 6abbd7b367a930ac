package entities

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusRejected  = "rejected"
	OrderStatusCancelled = "cancel"
)

type Order struct {
	ID            string    `json:"_id,omitempty"`
	TrackingID    string    `json:"trackingId"`
	ProductID     string    `json:"productId,omitempty"`
	ProductTitle  string    `json:"productTitle,omitempty"`
	Quantity      int       `json:"quantity,omitempty"`
	Price         float64   `json:"price,omitempty"`
	BuyerEmail    string    `json:"buyerEmail"`
	BuyerName     string    `json:"buyerName,omitempty"`
	Address       string    `json:"address,omitempty"`
	SupplierEmail string    `json:"supplierEmail"`
	Status        string    `json:"orderStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ValidOrderStatus(status string) bool {
	validStatuses := map[string]bool{
		OrderStatusPending:   true,
		OrderStatusApproved:  true,
		OrderStatusRejected:  true,
		OrderStatusCancelled: true,
	}
	return validStatuses[status]
}
