package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopnest/models"
)

type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(coll *mongo.Collection) *MongoCartRepository {
	return &MongoCartRepository{coll: coll}
}

func (r *MongoCartRepository) LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *MongoCartRepository) UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"cartItems": items}},
		options.Update().SetUpsert(true),
	)
	return err
}

type MongoWishlistRepository struct {
	coll *mongo.Collection
}

func NewMongoWishlistRepository(coll *mongo.Collection) *MongoWishlistRepository {
	return &MongoWishlistRepository{coll: coll}
}

func (r *MongoWishlistRepository) LoadByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.coll.FindOne(ctx, bson.M{"userid": userID}).Decode(&wishlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *MongoWishlistRepository) UpsertByUser(ctx context.Context, userID primitive.ObjectID, items []models.WishlistItem) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"wishlistItems": items}},
		options.Update().SetUpsert(true),
	)
	return err
}
