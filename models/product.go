package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Slug          string             `bson:"slug" json:"slug"`
	Description   string             `bson:"description" json:"description"`
	Price         int                `bson:"price" json:"price"`
	Category      primitive.ObjectID `bson:"category" json:"category"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Image         string             `bson:"image" json:"image"`
	ImagePublicID string             `bson:"imagePublicId,omitempty" json:"imagePublicId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
