package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = 0
	RoleAdmin = 1
)

type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	Phone     string               `bson:"phone" json:"phone"`
	Address   string               `bson:"address" json:"address"`
	Role      int                  `bson:"role" json:"role"`
	Wishlist  []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
