package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart is the per-user cart document. At most one exists per user,
// enforced by a unique index on userid.
type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"userid" json:"userid"`
	Items  []CartItem         `bson:"cartItems" json:"cartItems"`
}

// CartItem holds one product line. A cart carries at most one line
// per distinct product.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
