package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopnest/database"
	"shopnest/models"
)

// SubmitQuery records a contact-form message. Public endpoint.
func SubmitQuery(c *gin.Context) {
	var body struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required"`
		Phone string `json:"phone"`
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the required fields."})
		return
	}

	record := models.Query{
		ID:     primitive.NewObjectID(),
		Name:   body.Name,
		Email:  body.Email,
		Phone:  body.Phone,
		Query:  body.Query,
		Status: "Unread",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := database.QueryCollection.InsertOne(ctx, record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Query Submitted Successfully"})
}
