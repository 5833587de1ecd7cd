package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Query is a customer support message submitted from the contact form.
type Query struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Phone  string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Query  string             `bson:"query" json:"query"`
	Status string             `bson:"status" json:"status"`
}
