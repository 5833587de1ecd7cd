// Package repository defines the persistence boundary for the per-user
// cart and wishlist documents. Handlers depend on these interfaces, not
// on the MongoDB implementation.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/models"
)

// CartRepository loads and writes the single cart document of a user.
// LoadByUser returns (nil, nil) when the user has no cart yet.
// UpsertByUser replaces the whole line set, creating the document on
// first write.
type CartRepository interface {
	LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error
}

// WishlistRepository is the wishlist counterpart of CartRepository.
type WishlistRepository interface {
	LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)
	UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.WishlistItem) error
}
