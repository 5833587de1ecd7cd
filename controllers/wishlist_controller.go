package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopnest/database"
	"shopnest/models"
)

// SaveWishlistItem adds one product to the user's wishlist, creating
// the wishlist on first use. Adding an already-present product is a
// no-op.
func SaveWishlistItem(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.WishlistCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$addToSet": bson.M{"wishlistItems": models.WishlistItem{ProductID: productID}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	products, err := populatedWishlist(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlistItems": products})
}

// FetchWishlist returns the user's wishlisted products.
func FetchWishlist(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	products, err := populatedWishlist(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlistItems": products})
}

// DeleteWishlistItem removes one product from the user's wishlist.
func DeleteWishlistItem(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.WishlistCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"wishlistItems": bson.M{"productId": productID}}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	products, err := populatedWishlist(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlistItems": products})
}

// populatedWishlist resolves the wishlist's product references,
// dropping any that no longer exist in the catalog.
func populatedWishlist(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	var wishlist models.Wishlist
	err := database.WishlistCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(wishlist.Items) == 0 {
		return []models.Product{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		ids = append(ids, item.ProductID)
	}

	cursor, err := database.ProductCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]models.Product, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		if p, ok := byID[item.ProductID]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
