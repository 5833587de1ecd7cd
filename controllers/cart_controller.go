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

// cartLineView is a cart line joined with its product for display.
type cartLineView struct {
	models.Product
	Quantity int `json:"quantity"`
}

// SaveCart replaces the caller's whole cart document.
func SaveCart(c *gin.Context) {
	var body struct {
		UserID    string `json:"userid" binding:"required"`
		CartItems []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"cartItems"`
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

	items := make([]models.CartItem, 0, len(body.CartItems))
	for _, line := range body.CartItems {
		productID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil || line.Quantity < 1 {
			continue
		}
		items = append(items, models.CartItem{ProductID: productID, Quantity: line.Quantity})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.CartCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cartItems": items}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// FetchCart returns the user's cart lines joined with product details.
func FetchCart(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines, err := populatedCartLines(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartItems": lines})
}

// DeleteCartItem removes one product line from the user's cart.
func DeleteCartItem(c *gin.Context) {
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

	result, err := database.CartCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$pull": bson.M{"cartItems": bson.M{"productId": productID}}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Cart Not Found"})
		return
	}

	lines, err := populatedCartLines(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cartItems": lines})
}

// populatedCartLines joins the cart document with its products. Lines
// whose product no longer exists are dropped from the view.
func populatedCartLines(ctx context.Context, userID primitive.ObjectID) ([]cartLineView, error) {
	var cart models.Cart
	err := database.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return []cartLineView{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return []cartLineView{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
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

	lines := make([]cartLineView, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, cartLineView{Product: product, Quantity: item.Quantity})
	}
	return lines, nil
}
