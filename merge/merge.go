// Package merge reconciles a guest's client-held cart and wishlist with
// the account-persisted ones at login time. Both functions are pure; the
// caller persists the result.
package merge

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/models"
)

// Carts combines the account cart with a guest cart. Account lines keep
// their position and quantities; a guest line for a product already in
// the account cart adds its quantity to that line, otherwise it is
// appended in guest order. Lines with a zero product id or a quantity
// below 1 are skipped.
func Carts(account, guest []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, 0, len(account)+len(guest))
	index := make(map[primitive.ObjectID]int, len(account)+len(guest))

	for _, lines := range [][]models.CartItem{account, guest} {
		for _, line := range lines {
			if line.ProductID.IsZero() || line.Quantity < 1 {
				continue
			}
			if i, ok := index[line.ProductID]; ok {
				merged[i].Quantity += line.Quantity
				continue
			}
			index[line.ProductID] = len(merged)
			merged = append(merged, line)
		}
	}

	return merged
}

// Wishlists combines the account wishlist with a guest wishlist as an
// ordered set union: account entries first, then guest entries not
// already present, in guest order. Entries with a zero product id are
// skipped.
func Wishlists(account, guest []models.WishlistItem) []models.WishlistItem {
	merged := make([]models.WishlistItem, 0, len(account)+len(guest))
	seen := make(map[primitive.ObjectID]struct{}, len(account)+len(guest))

	for _, items := range [][]models.WishlistItem{account, guest} {
		for _, item := range items {
			if item.ProductID.IsZero() {
				continue
			}
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			merged = append(merged, item)
		}
	}

	return merged
}
