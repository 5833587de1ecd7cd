package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/database"
	"shopnest/models"
	"shopnest/services"
)

// CreateOrder registers a payment order with the gateway and returns
// the gateway's order payload for the client-side checkout widget.
func CreateOrder(c *gin.Context) {
	var body struct {
		Amount   float64 `json:"amount" binding:"required"`
		Currency string  `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	receipt := fmt.Sprintf("rcpt_%s", uuid.NewString())

	order, err := services.Payment.CreateOrder(body.Amount, body.Currency, receipt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// VerifyOrder checks the gateway callback signature and records the
// paid order. A bad signature is a failed payment, not a server error.
func VerifyOrder(c *gin.Context) {
	var body struct {
		OrderID   string  `json:"razorpay_order_id" binding:"required"`
		PaymentID string  `json:"razorpay_payment_id" binding:"required"`
		Signature string  `json:"razorpay_signature" binding:"required"`
		Amount    float64 `json:"amount"`
		UserID    string  `json:"userid" binding:"required"`
		Receipt   string  `json:"receipt"`
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

	if !services.Payment.VerifySignature(body.OrderID, body.PaymentID, body.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment Failed"})
		return
	}

	record := models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		OrderID:   body.OrderID,
		PaymentID: body.PaymentID,
		Signature: body.Signature,
		Receipt:   body.Receipt,
		Amount:    body.Amount,
		Status:    "Paid",
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.OrderCollection.InsertOne(ctx, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment Successful"})
}
