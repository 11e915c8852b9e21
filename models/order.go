package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatuses is the closed set an order can move through. There is no
// transition graph: any status is reachable from any other.
var OrderStatuses = []string{"Not Process", "Processing", "Shipped", "Delivered", "Cancel"}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderProduct is a denormalized snapshot of a purchased product, copied
// from the submitted cart at verification time rather than referenced live.
type OrderProduct struct {
	ID    string `bson:"_id" json:"_id"`
	Name  string `bson:"name" json:"name"`
	Slug  string `bson:"slug,omitempty" json:"slug,omitempty"`
	Price int    `bson:"price" json:"price"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

type Payment struct {
	RazorpayOrderID   string `bson:"razorpay_order_id" json:"razorpay_order_id"`
	RazorpayPaymentID string `bson:"razorpay_payment_id" json:"razorpay_payment_id"`
	Success           bool   `bson:"success" json:"success"`
	Amount            int    `bson:"amount" json:"amount"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Products    []OrderProduct     `bson:"products" json:"products"`
	Payment     Payment            `bson:"payment" json:"payment"`
	Buyer       primitive.ObjectID `bson:"buyer" json:"buyer"`
	ShippedTo   string             `bson:"shippedTo" json:"shippedTo"`
	GiftMessage string             `bson:"giftMessage" json:"giftMessage"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
