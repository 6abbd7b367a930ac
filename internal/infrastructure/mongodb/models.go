package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gflow-server/internal/domain/entities"
	"gflow-server/internal/domain/repositories"
)

type ProductDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Category      string             `bson:"category,omitempty"`
	Description   string             `bson:"description,omitempty"`
	ImageURL      string             `bson:"image,omitempty"`
	Price         float64            `bson:"price"`
	Quantity      int                `bson:"quantity"`
	SupplierEmail string             `bson:"supplierEmail"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

type UserDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type OrderDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TrackingID    string             `bson:"trackingId"`
	ProductID     string             `bson:"productId,omitempty"`
	ProductTitle  string             `bson:"productTitle,omitempty"`
	Quantity      int                `bson:"quantity,omitempty"`
	Price         float64            `bson:"price,omitempty"`
	BuyerEmail    string             `bson:"buyerEmail"`
	BuyerName     string             `bson:"buyerName,omitempty"`
	Address       string             `bson:"address,omitempty"`
	SupplierEmail string             `bson:"supplierEmail"`
	Status        string             `bson:"orderStatus"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// objectID maps the 24-character hex ids carried in request paths onto
// store ids, rejecting malformed values before they reach the driver.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repositories.ErrInvalidID
	}
	return oid, nil
}

func toProductDocument(p *entities.Product) *ProductDocument {
	return &ProductDocument{
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		Quantity:      p.Quantity,
		SupplierEmail: p.SupplierEmail,
		CreatedAt:     p.CreatedAt,
	}
}

func toProductEntity(doc *ProductDocument) *entities.Product {
	return &entities.Product{
		ID:            doc.ID.Hex(),
		Title:         doc.Title,
		Category:      doc.Category,
		Description:   doc.Description,
		ImageURL:      doc.ImageURL,
		Price:         doc.Price,
		Quantity:      doc.Quantity,
		SupplierEmail: doc.SupplierEmail,
		CreatedAt:     doc.CreatedAt,
	}
}

func toUserDocument(u *entities.User) *UserDocument {
	return &UserDocument{
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

func toUserEntity(doc *UserDocument) *entities.User {
	return &entities.User{
		ID:        doc.ID.Hex(),
		Email:     doc.Email,
		Name:      doc.Name,
		Role:      doc.Role,
		Status:    doc.Status,
		CreatedAt: doc.CreatedAt,
	}
}

func toOrderDocument(o *entities.Order) *OrderDocument {
	return &OrderDocument{
		TrackingID:    o.TrackingID,
		ProductID:     o.ProductID,
		ProductTitle:  o.ProductTitle,
		Quantity:      o.Quantity,
		Price:         o.Price,
		BuyerEmail:    o.BuyerEmail,
		BuyerName:     o.BuyerName,
		Address:       o.Address,
		SupplierEmail: o.SupplierEmail,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

func toOrderEntity(doc *OrderDocument) *entities.Order {
	return &entities.Order{
		ID:            doc.ID.Hex(),
		TrackingID:    doc.TrackingID,
		ProductID:     doc.ProductID,
		ProductTitle:  doc.ProductTitle,
		Quantity:      doc.Quantity,
		Price:         doc.Price,
		BuyerEmail:    doc.BuyerEmail,
		BuyerName:     doc.BuyerName,
		Address:       doc.Address,
		SupplierEmail: doc.SupplierEmail,
		Status:        doc.Status,
		CreatedAt:     doc.CreatedAt,
	}
}
