package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"shopnest/config"
)

var Client *mongo.Client
var DB *mongo.Database

func ConnectMongo() {
	uri := config.AppConfig.MongoURI
	dbName := config.AppConfig.DBName

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Connected to MongoDB")
}

var UserCollection *mongo.Collection
var ProductCollection *mongo.Collection
var CartCollection *mongo.Collection
var WishlistCollection *mongo.Collection
var AddressCollection *mongo.Collection
var OrderCollection *mongo.Collection
var QueryCollection *mongo.Collection

func InitCollections() {
	UserCollection = DB.Collection("users")
	ProductCollection = DB.Collection("products")
	CartCollection = DB.Collection("carts")
	WishlistCollection = DB.Collection("wishlists")
	AddressCollection = DB.Collection("addresses")
	OrderCollection = DB.Collection("orders")
	QueryCollection = DB.Collection("queries")
}

// EnsureIndexes creates the uniqueness constraints the documents rely
// on: one cart and one wishlist per user, one account per email.
func EnsureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	for coll, key := range map[*mongo.Collection]string{
		CartCollection:     "userid",
		WishlistCollection: "userid",
		UserCollection:     "email",
	} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			log.Fatal("MongoDB index error:", err)
		}
	}
}
