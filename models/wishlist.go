package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Wishlist is the per-user wishlist document, one per user like Cart.
type Wishlist struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"userid" json:"userid"`
	Items  []WishlistItem     `bson:"wishlistItems" json:"wishlistItems"`
}

type WishlistItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
}
