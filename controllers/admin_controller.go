package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/database"
	"shopnest/models"
	"shopnest/services"
)

// GetQueries lists all customer queries for the admin panel.
func GetQueries(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.QueryCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	queries := []models.Query{}
	if err := cursor.All(ctx, &queries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, queries)
}

func GetQuery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var query models.Query
	if err := database.QueryCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&query); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Query not found"})
		return
	}

	c.JSON(http.StatusOK, query)
}

func DeleteQuery(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := database.QueryCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted Successfully"})
}

// ReplyQuery mails a support reply to the customer and marks the query
// as read.
func ReplyQuery(c *gin.Context) {
	var body struct {
		To      string `json:"to" binding:"required"`
		Subject string `json:"sub" binding:"required"`
		Reply   string `json:"reply" binding:"required"`
		Query   string `json:"query"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	if services.Mailer == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Mailer is not configured"})
		return
	}

	if err := services.Mailer.SendQueryReply(body.To, body.Subject, body.Reply, body.Query); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.QueryCollection.UpdateMany(ctx,
		bson.M{"email": body.To, "status": "Unread"},
		bson.M{"$set": bson.M{"status": "Replied"}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Replied Successfully"})
}
