package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/merge"
	"shopnest/models"
	"shopnest/repository"
)

// MergeController folds a guest's client-held cart and wishlist into
// the account documents when the guest logs in. The repositories are
// injected so the handlers can run against any document store.
type MergeController struct {
	Carts     repository.CartRepository
	Wishlists repository.WishlistRepository
}

func NewMergeController(carts repository.CartRepository, wishlists repository.WishlistRepository) *MergeController {
	return &MergeController{Carts: carts, Wishlists: wishlists}
}

func (mc *MergeController) MergeGuestCart(c *gin.Context) {
	var body struct {
		UserID    string `json:"userid" binding:"required"`
		GuestCart []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"guestCart"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(body.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	// Guest entries that fail to parse are dropped; one bad line must
	// not lose the rest of the snapshot.
	guest := make([]models.CartItem, 0, len(body.GuestCart))
	for _, line := range body.GuestCart {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			continue
		}
		guest = append(guest, models.CartItem{ProductID: productID, Quantity: line.Quantity})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cart, err := mc.Carts.LoadByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	var account []models.CartItem
	if cart != nil {
		account = cart.Items
	}

	if err := mc.Carts.UpsertByUser(ctx, userID, merge.Carts(account, guest)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (mc *MergeController) MergeGuestWishlist(c *gin.Context) {
	var body struct {
		UserID        string   `json:"userid" binding:"required"`
		GuestWishlist []string `json:"guestWishlist"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	userID, err := primitive.ObjectIDFromHex(body.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	guest := make([]models.WishlistItem, 0, len(body.GuestWishlist))
	for _, id := range body.GuestWishlist {
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		guest = append(guest, models.WishlistItem{ProductID: productID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wishlist, err := mc.Wishlists.LoadByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	var account []models.WishlistItem
	if wishlist != nil {
		account = wishlist.Items
	}

	if err := mc.Wishlists.UpsertByUser(ctx, userID, merge.Wishlists(account, guest)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
