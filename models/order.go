package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userid" json:"userid"`
	OrderID   string             `bson:"orderId" json:"orderId"`
	PaymentID string             `bson:"paymentId" json:"paymentId"`
	Signature string             `bson:"signature" json:"-"`
	Receipt   string             `bson:"receipt" json:"receipt"`
	Amount    float64            `bson:"amount" json:"amount"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
