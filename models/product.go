package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	StockIn  = "In-Stock"
	StockOut = "Out-Of-Stock"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Stock       string             `bson:"stock" json:"stock"`
	Image       string             `bson:"image" json:"image"`
	Images      []string           `bson:"images" json:"images"`
}
