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
)

type addressInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Label       string `json:"label"`
	AddressLine string `json:"addressline"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Default     *bool  `json:"default"`
}

// AddAddress creates a new address for the user. The first address, or
// one flagged default, becomes the default and demotes the others.
func AddAddress(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	var body addressInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := database.UserCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	count, err := database.AddressCollection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	isDefault := count == 0 || (body.Default != nil && *body.Default)

	name := body.Name
	if name == "" {
		name = user.Name
	}
	phone := body.Phone
	if phone == "" {
		phone = user.Phone
	}

	address := models.Address{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Name:        name,
		Phone:       phone,
		Label:       body.Label,
		AddressLine: body.AddressLine,
		City:        body.City,
		State:       body.State,
		Pincode:     body.Pincode,
		Default:     isDefault,
	}

	if _, err := database.AddressCollection.InsertOne(ctx, address); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	if isDefault {
		if err := demoteOtherDefaults(ctx, userID, address.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}
	}

	respondWithProfile(c, ctx, userID)
}

// UpdateAddress edits the provided fields of one address; setting
// default demotes the user's other addresses.
func UpdateAddress(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	addressID, err := primitive.ObjectIDFromHex(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id"})
		return
	}

	var body addressInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Phone != "" {
		set["phone"] = body.Phone
	}
	if body.Label != "" {
		set["label"] = body.Label
	}
	if body.AddressLine != "" {
		set["addressline"] = body.AddressLine
	}
	if body.City != "" {
		set["city"] = body.City
	}
	if body.State != "" {
		set["state"] = body.State
	}
	if body.Pincode != "" {
		set["pincode"] = body.Pincode
	}
	if body.Default != nil && *body.Default {
		set["default"] = true
	}

	result, err := database.AddressCollection.UpdateOne(ctx,
		bson.M{"_id": addressID, "userId": userID},
		bson.M{"$set": set},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}

	if body.Default != nil && *body.Default {
		if err := demoteOtherDefaults(ctx, userID, addressID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}
	}

	respondWithProfile(c, ctx, userID)
}

func SetDefaultAddress(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	addressID, err := primitive.ObjectIDFromHex(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.AddressCollection.UpdateMany(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"default": false}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	result, err := database.AddressCollection.UpdateOne(ctx,
		bson.M{"_id": addressID, "userId": userID},
		bson.M{"$set": bson.M{"default": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
		return
	}

	respondWithProfile(c, ctx, userID)
}

// DeleteAddress removes one address; if the default was removed the
// first remaining address is promoted.
func DeleteAddress(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}
	addressID, err := primitive.ObjectIDFromHex(c.Param("addressid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.AddressCollection.DeleteOne(ctx, bson.M{"_id": addressID, "userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	cursor, err := database.AddressCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	var remaining []models.Address
	if err := cursor.All(ctx, &remaining); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}

	hasDefault := false
	for _, a := range remaining {
		if a.Default {
			hasDefault = true
			break
		}
	}
	if len(remaining) > 0 && !hasDefault {
		_, err = database.AddressCollection.UpdateOne(ctx,
			bson.M{"_id": remaining[0].ID},
			bson.M{"$set": bson.M{"default": true}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}
	}

	respondWithProfile(c, ctx, userID)
}

func demoteOtherDefaults(ctx context.Context, userID, keep primitive.ObjectID) error {
	_, err := database.AddressCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "_id": bson.M{"$ne": keep}},
		bson.M{"$set": bson.M{"default": false}},
	)
	return err
}

func respondWithProfile(c *gin.Context, ctx context.Context, userID primitive.ObjectID) {
	profile, err := profileWithAddresses(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
