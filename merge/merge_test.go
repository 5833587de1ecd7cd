package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/models"
)

func cartLine(id primitive.ObjectID, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Quantity: qty}
}

func wishLine(id primitive.ObjectID) models.WishlistItem {
	return models.WishlistItem{ProductID: id}
}

func TestCartsDisjointInputsKeepEveryLine(t *testing.T) {
	p1, p2, p3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	account := []models.CartItem{cartLine(p1, 2), cartLine(p2, 5)}
	guest := []models.CartItem{cartLine(p3, 1)}

	merged := Carts(account, guest)

	assert.Equal(t, []models.CartItem{cartLine(p1, 2), cartLine(p2, 5), cartLine(p3, 1)}, merged)
}

func TestCartsSharedProductAddsQuantities(t *testing.T) {
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()

	account := []models.CartItem{cartLine(p1, 1)}
	guest := []models.CartItem{cartLine(p1, 3), cartLine(p2, 1)}

	merged := Carts(account, guest)

	assert.Equal(t, []models.CartItem{cartLine(p1, 4), cartLine(p2, 1)}, merged)
}

func TestCartsEmptyGuestIsIdentity(t *testing.T) {
	p1 := primitive.NewObjectID()
	account := []models.CartItem{cartLine(p1, 2)}

	assert.Equal(t, account, Carts(account, nil))
}

func TestCartsEmptyAccountTakesGuest(t *testing.T) {
	p1 := primitive.NewObjectID()
	guest := []models.CartItem{cartLine(p1, 2)}

	assert.Equal(t, guest, Carts(nil, guest))
}

func TestCartsBothEmpty(t *testing.T) {
	assert.Empty(t, Carts(nil, nil))
}

func TestCartsSkipsMalformedGuestLines(t *testing.T) {
	p1 := primitive.NewObjectID()

	account := []models.CartItem{cartLine(p1, 1)}
	guest := []models.CartItem{
		{ProductID: primitive.NilObjectID, Quantity: 2},
		cartLine(primitive.NewObjectID(), 0),
		cartLine(primitive.NewObjectID(), -3),
		cartLine(p1, 2),
	}

	merged := Carts(account, guest)

	assert.Equal(t, []models.CartItem{cartLine(p1, 3)}, merged)
}

func TestCartsReapplyingGuestAddsAgain(t *testing.T) {
	// Quantities are cumulative, so merging the same guest snapshot twice
	// doubles its contribution. The client guards against double-merging.
	p1 := primitive.NewObjectID()
	guest := []models.CartItem{cartLine(p1, 2)}

	once := Carts(nil, guest)
	twice := Carts(once, guest)

	assert.Equal(t, 4, twice[0].Quantity)
}

func TestWishlistsUnionWithoutDuplicates(t *testing.T) {
	p1, p2 := primitive.NewObjectID(), primitive.NewObjectID()

	account := []models.WishlistItem{wishLine(p1)}
	guest := []models.WishlistItem{wishLine(p1), wishLine(p2)}

	merged := Wishlists(account, guest)

	assert.Equal(t, []models.WishlistItem{wishLine(p1), wishLine(p2)}, merged)
}

func TestWishlistsIdempotent(t *testing.T) {
	p1, p2, p3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	account := []models.WishlistItem{wishLine(p1), wishLine(p2)}
	guest := []models.WishlistItem{wishLine(p2), wishLine(p3)}

	once := Wishlists(account, guest)
	again := Wishlists(once, guest)

	assert.Equal(t, once, again)
}

func TestWishlistsUnionIsOrderIndependentAsSet(t *testing.T) {
	p1, p2, p3 := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	a := []models.WishlistItem{wishLine(p1), wishLine(p2)}
	g := []models.WishlistItem{wishLine(p2), wishLine(p3)}

	ab := Wishlists(a, g)
	ba := Wishlists(g, a)

	assert.ElementsMatch(t, ab, ba)
	assert.Len(t, ab, 3)
}

func TestWishlistsSkipsZeroProductIDs(t *testing.T) {
	p1 := primitive.NewObjectID()

	merged := Wishlists(nil, []models.WishlistItem{
		{ProductID: primitive.NilObjectID},
		wishLine(p1),
	})

	assert.Equal(t, []models.WishlistItem{wishLine(p1)}, merged)
}

func TestWishlistsEmptyInputs(t *testing.T) {
	p1 := primitive.NewObjectID()
	account := []models.WishlistItem{wishLine(p1)}

	assert.Equal(t, account, Wishlists(account, nil))
	assert.Equal(t, account, Wishlists(nil, account))
	assert.Empty(t, Wishlists(nil, nil))
}
